package secondary

import "context"

// CommandRunner executes external tools (bun, bundle, rails) in the project root.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports the resolved path of an executable, or an error if absent.
	LookPath(name string) (string, error)
}
