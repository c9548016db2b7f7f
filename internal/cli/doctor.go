package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/sunsword/internal/wire"
)

// DoctorCmd returns the doctor command for project validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the Rails project for Sun Sword",
		Long: `Check the project layout, settings, column sources and the
tools the generators shell out to.

Examples:
  sunsword doctor              # Run full health check
  sunsword doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ProjectAdapter().Doctor(context.Background(), quiet)
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only return exit code (no output)")

	return cmd
}
