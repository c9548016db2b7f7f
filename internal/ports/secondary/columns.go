package secondary

import (
	"context"

	"github.com/example/sunsword/internal/scaffold"
)

// ColumnSource reports the columns of a model table.
// An unknown table yields an empty slice and no error.
type ColumnSource interface {
	Columns(ctx context.Context, table string) ([]scaffold.Column, error)
	// Name identifies the source in warnings and doctor output.
	Name() string
}
