package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/sunsword/internal/ports/primary"
)

// InitAdapter is a thin adapter that translates CLI operations to InitService calls.
type InitAdapter struct {
	service primary.InitService
	out     io.Writer
}

// NewInitAdapter creates a new InitAdapter with the given service.
func NewInitAdapter(service primary.InitService, out io.Writer) *InitAdapter {
	return &InitAdapter{
		service: service,
		out:     out,
	}
}

// Init writes the project configuration.
func (a *InitAdapter) Init(ctx context.Context, req primary.InitRequest) (*primary.InitResponse, error) {
	resp, err := a.service.Init(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	if len(resp.Skipped) > 0 {
		fmt.Fprintln(a.out, "\nExisting files were kept, use --force to overwrite them.")
	}
	return resp, nil
}
