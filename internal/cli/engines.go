package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/sunsword/internal/wire"
)

// EnginesCmd returns the engines command
func EnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List engines under engines/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ProjectAdapter().ListEngines(context.Background())
			return err
		},
	}
}
