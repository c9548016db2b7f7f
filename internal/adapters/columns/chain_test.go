package columns

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sunsword/internal/scaffold"
)

type stubSource struct {
	name    string
	columns map[string][]scaffold.Column
	err     error
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Columns(ctx context.Context, table string) ([]scaffold.Column, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.columns[table], nil
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	first := &stubSource{name: "sqlite", columns: map[string][]scaffold.Column{}}
	second := &stubSource{name: "schema.rb", columns: map[string][]scaffold.Column{
		"users": {{Name: "id", Type: "integer"}},
	}}
	third := &stubSource{name: "never"}

	cols, err := NewChain(first, second, third).Columns(context.Background(), "users")
	require.NoError(t, err)

	assert.Equal(t, []scaffold.Column{{Name: "id", Type: "integer"}}, cols)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, third.calls)
}

func TestChain_ErrorsOnlyWhenNothingFound(t *testing.T) {
	broken := &stubSource{name: "sqlite", err: errors.New("database is locked")}
	good := &stubSource{name: "schema.rb", columns: map[string][]scaffold.Column{
		"users": {{Name: "name", Type: "string"}},
	}}

	cols, err := NewChain(broken, good).Columns(context.Background(), "users")
	require.NoError(t, err)
	assert.Len(t, cols, 1)

	cols, err = NewChain(broken, good).Columns(context.Background(), "ghosts")
	assert.Empty(t, cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite: database is locked")
}

func TestChain_Empty(t *testing.T) {
	c := NewChain(nil)
	cols, err := c.Columns(context.Background(), "users")
	assert.NoError(t, err)
	assert.Empty(t, cols)
	assert.Equal(t, "chain()", c.Name())
}
