package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var req primary.InitRequest

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the Sun Sword initializer and settings",
		Long: `Create config/initializers/sun_sword.rb and config/sun_sword.yml.

Existing files are left untouched unless --force is given.

Examples:
  sunsword init
  sunsword init --scope-owner-column user_id --scope-owner current_user
  sunsword init --package-manager yarn --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.InitAdapter().Init(context.Background(), req)
			return err
		},
	}

	cmd.Flags().StringVar(&req.ScopeOwnerColumn, "scope-owner-column", "", "Column owning scoped records, e.g. user_id")
	cmd.Flags().StringVar(&req.ScopeOwner, "scope-owner", "", "Controller expression for the owner, e.g. current_user")
	cmd.Flags().StringVar(&req.PackageManager, "package-manager", "", "JavaScript package manager (bun or yarn)")
	cmd.Flags().BoolVar(&req.Force, "force", false, "Overwrite existing files")

	return cmd
}
