package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/sunsword/internal/ports/primary"
)

// FrontendAdapter is a thin adapter that translates CLI operations to FrontendService calls.
type FrontendAdapter struct {
	service primary.FrontendService
	out     io.Writer
}

// NewFrontendAdapter creates a new FrontendAdapter with the given service.
func NewFrontendAdapter(service primary.FrontendService, out io.Writer) *FrontendAdapter {
	return &FrontendAdapter{
		service: service,
		out:     out,
	}
}

// Setup runs the frontend setup.
func (a *FrontendAdapter) Setup(ctx context.Context, req primary.FrontendRequest) (*primary.FrontendResponse, error) {
	resp, err := a.service.Setup(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.DryRun {
		fmt.Fprintf(a.out, "Dry run for %s with %s, nothing written.\n", resp.AppName, resp.PackageManager)
		fmt.Fprintf(a.out, "Steps: %s\n", strings.Join(resp.Steps, ", "))
		renderActions(a.out, resp.Actions)
		return resp, nil
	}

	fmt.Fprintf(a.out, "\n%s for %s\n", color.New(color.FgGreen).Sprint("✓ Frontend ready"), resp.AppName)
	fmt.Fprintln(a.out, "Start the app with bin/dev and open /tests/stimulus to check the setup.")
	return resp, nil
}
