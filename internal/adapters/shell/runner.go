// Package shell runs external tools in the project root.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/sunsword/internal/ports/secondary"
)

// Runner implements secondary.CommandRunner with os/exec.
type Runner struct {
	dir string
}

// NewRunner creates a Runner that executes commands in dir.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Run executes a command and returns its stdout.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%s %s: %w: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// LookPath resolves an executable on PATH.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var _ secondary.CommandRunner = (*Runner)(nil)
