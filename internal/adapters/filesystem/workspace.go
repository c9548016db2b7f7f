// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/example/sunsword/internal/ports/secondary"
)

// WorkspaceAdapter implements secondary.WorkspaceAdapter for a project directory.
type WorkspaceAdapter struct {
	root string
}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
// If root is empty, the current working directory is used.
func NewWorkspaceAdapter(root string) (*WorkspaceAdapter, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("project root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", abs)
	}

	return &WorkspaceAdapter{root: abs}, nil
}

// Root returns the absolute project root.
func (a *WorkspaceAdapter) Root() string {
	return a.root
}

// Resolve returns path joined to the project root unless it is already absolute.
func (a *WorkspaceAdapter) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.root, path)
}

// CreateDirectory creates a directory with all parent directories.
func (a *WorkspaceAdapter) CreateDirectory(ctx context.Context, path string) error {
	if err := os.MkdirAll(a.Resolve(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// RemoveDirectory removes a directory and all contents.
func (a *WorkspaceAdapter) RemoveDirectory(ctx context.Context, path string) error {
	if err := os.RemoveAll(a.Resolve(path)); err != nil {
		return fmt.Errorf("failed to remove directory: %w", err)
	}
	return nil
}

// DirectoryExists checks if a directory exists.
func (a *WorkspaceAdapter) DirectoryExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(a.Resolve(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}
	return info.IsDir(), nil
}

// ListDirectories returns the sorted names of the subdirectories of path.
// A missing path yields no entries.
func (a *WorkspaceAdapter) ListDirectories(ctx context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(a.Resolve(path))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// FileExists checks if a regular file exists.
func (a *WorkspaceAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(a.Resolve(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return !info.IsDir(), nil
}

// ReadFile reads a file.
func (a *WorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(a.Resolve(path))
}

// WriteFile writes content through a temp file in the same directory and
// renames it over path, so readers never observe a partial file.
func (a *WorkspaceAdapter) WriteFile(ctx context.Context, path string, content []byte, perm fs.FileMode) error {
	target := a.Resolve(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Keep the mode of an existing file.
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Chmod changes the mode of a file.
func (a *WorkspaceAdapter) Chmod(ctx context.Context, path string, perm fs.FileMode) error {
	if err := os.Chmod(a.Resolve(path), perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	return nil
}

// Ensure WorkspaceAdapter implements the interface
var _ secondary.WorkspaceAdapter = (*WorkspaceAdapter)(nil)
