package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/sunsword/internal/version"
	"github.com/example/sunsword/internal/wire"
)

// RootCmd returns the sunsword root command with all subcommands attached.
func RootCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "sunsword",
		Short:   "Sun Sword - generators for Rails apps built on use cases",
		Version: version.String(),
		Long: `Sun Sword scaffolds controllers, views and routes from resource
structure files, and sets up a Vite + Stimulus + Turbo frontend.

Run commands from the root of a Rails application, or pass --root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetProjectRoot(root)
		},
	}

	cmd.PersistentFlags().StringVarP(&root, "root", "C", ".", "Rails application root")

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ScaffoldCmd())
	cmd.AddCommand(FrontendCmd())
	cmd.AddCommand(EnginesCmd())
	cmd.AddCommand(DoctorCmd())

	return cmd
}
