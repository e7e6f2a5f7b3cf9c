// Package testutil provides test utilities for database setup.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema mirrors the migrated history schema for in-memory tests that
// don't need a database file on disk.
const Schema = `
CREATE TABLE history (
	id TEXT PRIMARY KEY,
	path TEXT NOT NULL UNIQUE,
	open_count INTEGER NOT NULL DEFAULT 1,
	last_opened_at INTEGER NOT NULL
);

CREATE INDEX idx_history_last_opened_at ON history(last_opened_at DESC);
`

// NewTestDB creates an in-memory SQLite database with the history schema.
// The caller is responsible for closing the database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}
