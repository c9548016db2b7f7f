package columns

import (
	"context"

	"github.com/example/sunsword/internal/adapters/schemarb"
	"github.com/example/sunsword/internal/adapters/sqlite"
	"github.com/example/sunsword/internal/config"
	"github.com/example/sunsword/internal/db"
	"github.com/example/sunsword/internal/ports/secondary"
)

// ForProject builds the default chain for a project: the development
// database when it exists, then db/schema.rb. The returned func closes the
// database and is never nil.
func ForProject(ctx context.Context, workspace secondary.WorkspaceAdapter, settings *config.Settings) (*Chain, func() error, error) {
	closer := func() error { return nil }

	var sources []secondary.ColumnSource
	if settings.DatabasePath != "" {
		exists, err := workspace.FileExists(ctx, settings.DatabasePath)
		if err != nil {
			return nil, closer, err
		}
		if exists {
			conn, err := db.Open(workspace.Resolve(settings.DatabasePath))
			if err != nil {
				return nil, closer, err
			}
			closer = conn.Close
			sources = append(sources, sqlite.NewColumnSource(conn))
		}
	}
	if settings.SchemaPath != "" {
		sources = append(sources, schemarb.NewColumnSource(workspace, settings.SchemaPath))
	}

	return NewChain(sources...), closer, nil
}
