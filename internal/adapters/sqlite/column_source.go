// Package sqlite contains the SQLite column source.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

// declaredTypes maps SQLite declared column types, as written by the Rails
// SQLite adapter, to Rails attribute types.
var declaredTypes = map[string]string{
	"varchar":   "string",
	"character": "string",
	"string":    "string",
	"text":      "text",
	"clob":      "text",
	"integer":   "integer",
	"int":       "integer",
	"bigint":    "integer",
	"smallint":  "integer",
	"float":     "float",
	"real":      "float",
	"double":    "float",
	"decimal":   "decimal",
	"numeric":   "decimal",
	"boolean":   "boolean",
	"date":      "date",
	"datetime":  "datetime",
	"timestamp": "datetime",
	"time":      "time",
	"json":      "json",
	"blob":      "binary",
	"binary":    "binary",
}

// MapDeclaredType converts a declared type such as "varchar(255)" or
// "datetime(6)" to a Rails type. Unknown types pass through lowercased.
func MapDeclaredType(declared string) string {
	t := strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if mapped, ok := declaredTypes[t]; ok {
		return mapped
	}
	if t == "" {
		return scaffold.DefaultFieldType
	}
	return t
}

// ColumnSource implements secondary.ColumnSource over a SQLite database.
type ColumnSource struct {
	db *sql.DB
}

// NewColumnSource creates a new SQLite column source.
func NewColumnSource(db *sql.DB) *ColumnSource {
	return &ColumnSource{db: db}
}

// Name identifies the source.
func (s *ColumnSource) Name() string {
	return "sqlite"
}

// Columns returns the columns of table in declaration order.
func (s *ColumnSource) Columns(ctx context.Context, table string) ([]scaffold.Column, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, type FROM pragma_table_info(?) ORDER BY cid",
		table,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []scaffold.Column
	for rows.Next() {
		var name, declared string
		if err := rows.Scan(&name, &declared); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, scaffold.Column{Name: name, Type: MapDeclaredType(declared)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	return columns, nil
}

// Ensure ColumnSource implements the interface
var _ secondary.ColumnSource = (*ColumnSource)(nil)
