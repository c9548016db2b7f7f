// Package columns combines column sources.
package columns

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

// Chain asks each source in turn; the first one that knows the table wins.
type Chain struct {
	sources []secondary.ColumnSource
}

// NewChain creates a chain over sources, in priority order. Nil sources are dropped.
func NewChain(sources ...secondary.ColumnSource) *Chain {
	c := &Chain{}
	for _, s := range sources {
		if s != nil {
			c.sources = append(c.sources, s)
		}
	}
	return c
}

// Name lists the chained sources.
func (c *Chain) Name() string {
	name := "chain("
	for i, s := range c.sources {
		if i > 0 {
			name += ", "
		}
		name += s.Name()
	}
	return name + ")"
}

// Columns returns the first non-empty answer. Source errors are returned only
// when no source produced columns.
func (c *Chain) Columns(ctx context.Context, table string) ([]scaffold.Column, error) {
	var errs []error
	for _, s := range c.sources {
		cols, err := s.Columns(ctx, table)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		if len(cols) > 0 {
			return cols, nil
		}
	}
	return nil, errors.Join(errs...)
}

// Ensure Chain implements the interface
var _ secondary.ColumnSource = (*Chain)(nil)
