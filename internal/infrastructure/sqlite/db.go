// Package sqlite provides the SQLite-backed persistence layer for
// viewer history. The database lives in the user's data directory and
// is migrated on open.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // registers the "sqlite3" database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // embeds the sqlite WASM build

	"github.com/zjrosen/glint/internal/history"
)

// DB wraps the SQLite connection and owns its lifecycle.
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if necessary) the database at path and applies
// pending migrations. When an existing database is found, a .bak copy
// is written before migrations run.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	if err := backupExisting(path); err != nil {
		return nil, fmt.Errorf("backup database: %w", err)
	}

	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)"

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// backupExisting copies the database file to path.bak before migrations
// touch it. A previous backup is overwritten.
func backupExisting(path string) error {
	src, err := os.Open(path) // #nosec G304 -- path comes from our own config
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(path+".bak", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600) // #nosec G304
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// HistoryStore returns the history repository backed by this database.
func (db *DB) HistoryStore() history.Store {
	return newHistoryRepository(db.conn)
}

// Connection returns the underlying *sql.DB for callers that need raw
// access.
func (db *DB) Connection() *sql.DB {
	return db.conn
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
