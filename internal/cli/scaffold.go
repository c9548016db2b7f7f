package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/wire"
)

const scopeArgPrefix = "scope:"

// ScaffoldCmd returns the scaffold command
func ScaffoldCmd() *cobra.Command {
	var (
		engine          string
		engineStructure string
		domain          string
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "scaffold <structure> [scope:<name>]",
		Short: "Generate controller, views and routes for a resource",
		Long: `Generate a controller, its spec, views and a sidebar link from
db/structures/<structure>_structure.yaml, then add the resource to
config/routes.rb.

Column types come from db/development.sqlite3 when present, otherwise
from db/schema.rb.

Examples:
  sunsword scaffold user
  sunsword scaffold user scope:admin
  sunsword scaffold user --engine admin
  sunsword scaffold user --engine admin --engine_structure core --domain core
  sunsword scaffold user --dry-run`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseScaffoldArgs(args)
			if err != nil {
				return err
			}
			req.Engine = engine
			req.EngineStructure = engineStructure
			req.Domain = domain
			req.DryRun = dryRun

			_, err = wire.ScaffoldAdapter().Scaffold(context.Background(), req)
			return err
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "", "Engine to generate into")
	cmd.Flags().StringVar(&engineStructure, "engine_structure", "", "Engine holding the structure file")
	cmd.Flags().StringVar(&domain, "domain", "", "Use case namespace (defaults to --engine_structure)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned actions without writing")

	return cmd
}

// parseScaffoldArgs splits positional arguments into the structure name and
// an optional scope:<name> route scope.
func parseScaffoldArgs(args []string) (primary.ScaffoldRequest, error) {
	var req primary.ScaffoldRequest
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, scopeArgPrefix):
			scope := strings.TrimPrefix(arg, scopeArgPrefix)
			if scope == "" {
				return req, fmt.Errorf("empty route scope in %q", arg)
			}
			if req.RouteScope != "" {
				return req, fmt.Errorf("route scope given twice")
			}
			req.RouteScope = scope
		case req.Structure == "":
			req.Structure = arg
		default:
			return req, fmt.Errorf("unexpected argument %q (expected scope:<name>)", arg)
		}
	}
	if req.Structure == "" {
		return req, fmt.Errorf("structure name is required")
	}
	return req, nil
}
