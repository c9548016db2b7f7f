package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/example/sunsword/internal/ports/primary"
)

// ScaffoldAdapter is a thin adapter that translates CLI operations to ScaffoldService calls.
type ScaffoldAdapter struct {
	service primary.ScaffoldService
	out     io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter with the given service.
func NewScaffoldAdapter(service primary.ScaffoldService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		service: service,
		out:     out,
	}
}

// Scaffold generates a resource. Progress is printed by the executor; this
// prints the dry-run plan or the closing summary.
func (a *ScaffoldAdapter) Scaffold(ctx context.Context, req primary.ScaffoldRequest) (*primary.ScaffoldResponse, error) {
	resp, err := a.service.Scaffold(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.DryRun {
		fmt.Fprintf(a.out, "Dry run for %s (columns from %s), nothing written:\n", resp.ScopePath, resp.ColumnSource)
		renderActions(a.out, resp.Actions)
		for _, w := range resp.Warnings {
			fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("warning: "+w))
		}
		return resp, nil
	}

	target := "main app"
	if resp.Engine != "" {
		target = "engine " + resp.Engine
	}
	fmt.Fprintf(a.out, "\n%s %s in %s\n", color.New(color.FgGreen).Sprint("✓ Scaffolded"), resp.ScopePath, target)
	if len(resp.NextSteps) > 0 {
		fmt.Fprintln(a.out, "\nNext steps:")
		for i, step := range resp.NextSteps {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, step)
		}
	}
	return resp, nil
}

func renderActions(out io.Writer, actions []primary.PlannedAction) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"#", "Action", "Target"})
	for i, a := range actions {
		tw.AppendRow(table.Row{i + 1, a.Action, a.Target})
	}
	tw.Render()
}
