package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/wire"
)

// FrontendCmd returns the frontend command
func FrontendCmd() *cobra.Command {
	var req primary.FrontendRequest

	cmd := &cobra.Command{
		Use:   "frontend",
		Short: "Set up Vite, Stimulus and Turbo in the main app",
		Long: `Replace the asset pipeline with Vite and generate the default
frontend, test pages, components and layouts.

Examples:
  sunsword frontend --setup
  sunsword frontend --setup --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.FrontendAdapter().Setup(context.Background(), req)
			return err
		},
	}

	cmd.Flags().BoolVar(&req.Setup, "setup", false, "Run the frontend setup")
	cmd.Flags().StringVar(&req.Engine, "engine", "", "Not supported; frontend setup runs in the main app only")
	cmd.Flags().BoolVar(&req.DryRun, "dry-run", false, "Show planned actions without writing")

	return cmd
}
