package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/example/sunsword/internal/ports/primary"
)

// ProjectAdapter is a thin adapter that translates CLI operations to ProjectService calls.
type ProjectAdapter struct {
	service primary.ProjectService
	out     io.Writer
}

// NewProjectAdapter creates a new ProjectAdapter with the given service.
func NewProjectAdapter(service primary.ProjectService, out io.Writer) *ProjectAdapter {
	return &ProjectAdapter{
		service: service,
		out:     out,
	}
}

// ListEngines prints the engines found in the project.
func (a *ProjectAdapter) ListEngines(ctx context.Context) ([]primary.EngineInfo, error) {
	engines, err := a.service.ListEngines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list engines: %w", err)
	}

	if len(engines) == 0 {
		fmt.Fprintln(a.out, "No engines found.")
		fmt.Fprintln(a.out, "Engines are directories under engines/, components/ or gems/ with a <name>.gemspec.")
		return engines, nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(a.out)
	tw.AppendHeader(table.Row{"Engine", "Root", "Structures", "Routes"})
	for _, e := range engines {
		tw.AppendRow(table.Row{e.Name, e.Root, yesNo(e.HasStructures), yesNo(e.HasRoutes)})
	}
	tw.Render()
	return engines, nil
}

// Doctor prints the project checks. It returns an error when a check fails.
func (a *ProjectAdapter) Doctor(ctx context.Context, quiet bool) ([]primary.Check, error) {
	checks, err := a.service.Diagnose(ctx)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, c := range checks {
		if c.Status == primary.CheckFail {
			failed++
		}
	}

	if !quiet {
		tw := table.NewWriter()
		tw.SetOutputMirror(a.out)
		tw.AppendHeader(table.Row{"Check", "Status", "Details"})
		for _, c := range checks {
			tw.AppendRow(table.Row{c.Name, statusLabel(c.Status), c.Details})
		}
		tw.Render()
	}

	if failed > 0 {
		return checks, fmt.Errorf("%d check(s) failed", failed)
	}
	return checks, nil
}

func statusLabel(status string) string {
	switch status {
	case primary.CheckOK:
		return color.New(color.FgGreen).Sprint("✓")
	case primary.CheckWarn:
		return color.New(color.FgYellow).Sprint("⚠")
	default:
		return color.New(color.FgRed).Sprint("✗")
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
