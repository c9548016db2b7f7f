// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"io/fs"
)

// WorkspaceAdapter defines the secondary port for filesystem operations inside
// the target project. Relative paths are resolved against Root.
type WorkspaceAdapter interface {
	// Directory operations
	CreateDirectory(ctx context.Context, path string) error
	RemoveDirectory(ctx context.Context, path string) error
	DirectoryExists(ctx context.Context, path string) (bool, error)
	ListDirectories(ctx context.Context, path string) ([]string, error)

	// File operations
	FileExists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte, perm fs.FileMode) error
	Chmod(ctx context.Context, path string, perm fs.FileMode) error

	// Path resolution
	Root() string
	Resolve(path string) string
}
