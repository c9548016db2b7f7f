package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sunsword/internal/adapters/sqlite"
	"github.com/example/sunsword/internal/scaffold"
)

// Mirrors what ActiveRecord's SQLite adapter writes for a migration.
const testModelsTable = `
CREATE TABLE "test_models" (
	"id" integer PRIMARY KEY AUTOINCREMENT NOT NULL,
	"name" varchar,
	"email" varchar(255),
	"bio" text,
	"age" integer,
	"score" float,
	"price" decimal(10,2),
	"active" boolean DEFAULT 1,
	"born_on" date,
	"starts_at" time,
	"settings" json,
	"user_id" bigint NOT NULL,
	"created_at" datetime(6) NOT NULL,
	"updated_at" datetime(6) NOT NULL
)`

// setupTestDB creates an in-memory database with a Rails-shaped table.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open test db")

	_, err = testDB.Exec(testModelsTable)
	require.NoError(t, err, "failed to create schema")

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func TestColumnSource_Columns(t *testing.T) {
	source := sqlite.NewColumnSource(setupTestDB(t))

	columns, err := source.Columns(context.Background(), "test_models")
	require.NoError(t, err)

	assert.Equal(t, []scaffold.Column{
		{Name: "id", Type: "integer"},
		{Name: "name", Type: "string"},
		{Name: "email", Type: "string"},
		{Name: "bio", Type: "text"},
		{Name: "age", Type: "integer"},
		{Name: "score", Type: "float"},
		{Name: "price", Type: "decimal"},
		{Name: "active", Type: "boolean"},
		{Name: "born_on", Type: "date"},
		{Name: "starts_at", Type: "time"},
		{Name: "settings", Type: "json"},
		{Name: "user_id", Type: "integer"},
		{Name: "created_at", Type: "datetime"},
		{Name: "updated_at", Type: "datetime"},
	}, columns)
	assert.Equal(t, "sqlite", source.Name())
}

func TestColumnSource_UnknownTable(t *testing.T) {
	source := sqlite.NewColumnSource(setupTestDB(t))

	columns, err := source.Columns(context.Background(), "ghosts")
	require.NoError(t, err)
	assert.Empty(t, columns)
}

func TestMapDeclaredType(t *testing.T) {
	tests := []struct {
		declared string
		want     string
	}{
		{"VARCHAR(255)", "string"},
		{"datetime(6)", "datetime"},
		{"decimal(10, 2)", "decimal"},
		{"BLOB", "binary"},
		{"", "string"},
		{"uuid", "uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlite.MapDeclaredType(tt.declared))
		})
	}
}
