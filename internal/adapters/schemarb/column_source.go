// Package schemarb reads model columns from a Rails db/schema.rb dump.
package schemarb

import (
	"bufio"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

var (
	createTableRe = regexp.MustCompile(`^\s*create_table\s+"([^"]+)"(.*)\bdo\s*\|\w+\|\s*$`)
	columnRe      = regexp.MustCompile(`^\s*t\.(\w+)\s+"([^"]+)"(.*)$`)
	idOptionRe    = regexp.MustCompile(`\bid:\s*(false|:(\w+))`)
	endRe         = regexp.MustCompile(`^\s*end\s*$`)
)

// Table is a parsed create_table block.
type Table struct {
	Name    string
	Columns []scaffold.Column
}

// Parse extracts every create_table block from schema.rb content.
func Parse(content string) ([]Table, error) {
	var (
		tables  []Table
		current *Table
	)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()

		if current == nil {
			m := createTableRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			current = &Table{Name: m[1]}
			if id := primaryKey(m[2]); id != "" {
				current.Columns = append(current.Columns, scaffold.Column{Name: "id", Type: id})
			}
			continue
		}

		if endRe.MatchString(line) {
			tables = append(tables, *current)
			current = nil
			continue
		}

		if strings.TrimSpace(line) == "t.timestamps" || strings.HasPrefix(strings.TrimSpace(line), "t.timestamps ") {
			current.Columns = append(current.Columns,
				scaffold.Column{Name: "created_at", Type: "datetime"},
				scaffold.Column{Name: "updated_at", Type: "datetime"},
			)
			continue
		}

		m := columnRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		kind, name := m[1], m[2]
		switch kind {
		case "index", "check_constraint":
			continue
		case "references", "belongs_to":
			current.Columns = append(current.Columns, scaffold.Column{Name: name + "_id", Type: "integer"})
		default:
			current.Columns = append(current.Columns, scaffold.Column{Name: name, Type: kind})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan schema: %w", err)
	}
	if current != nil {
		return nil, fmt.Errorf("create_table %q is not closed", current.Name)
	}

	return tables, nil
}

// primaryKey returns the implicit id column type for create_table options.
func primaryKey(options string) string {
	m := idOptionRe.FindStringSubmatch(options)
	switch {
	case m == nil:
		return "integer"
	case m[1] == "false":
		return ""
	default:
		return m[2]
	}
}

// ColumnSource implements secondary.ColumnSource over db/schema.rb.
type ColumnSource struct {
	workspace secondary.WorkspaceAdapter
	path      string
	tables    map[string][]scaffold.Column
}

// NewColumnSource creates a schema.rb column source. The file is read on first use.
func NewColumnSource(workspace secondary.WorkspaceAdapter, path string) *ColumnSource {
	return &ColumnSource{workspace: workspace, path: path}
}

// Name identifies the source.
func (s *ColumnSource) Name() string {
	return "schema.rb"
}

// Columns returns the columns of table. A missing schema file yields no columns.
func (s *ColumnSource) Columns(ctx context.Context, table string) ([]scaffold.Column, error) {
	if s.tables == nil {
		if err := s.load(ctx); err != nil {
			return nil, err
		}
	}
	return s.tables[table], nil
}

func (s *ColumnSource) load(ctx context.Context) error {
	s.tables = make(map[string][]scaffold.Column)

	exists, err := s.workspace.FileExists(ctx, s.path)
	if err != nil || !exists {
		return err
	}

	data, err := s.workspace.ReadFile(ctx, s.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	tables, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}
	for _, t := range tables {
		s.tables[t.Name] = t.Columns
	}
	return nil
}

// Ensure ColumnSource implements the interface
var _ secondary.ColumnSource = (*ColumnSource)(nil)
