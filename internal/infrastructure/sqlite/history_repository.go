package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/glint/internal/history"
)

// historyColumns is the list of columns to select for history queries.
const historyColumns = `id, path, open_count, last_opened_at`

// historyRepository implements history.Store using SQLite.
type historyRepository struct {
	db *sql.DB

	// now is stubbed in tests to control timestamps.
	now func() time.Time
}

// newHistoryRepository creates a new historyRepository instance.
func newHistoryRepository(db *sql.DB) *historyRepository {
	return &historyRepository{db: db, now: time.Now}
}

// Ensure historyRepository implements history.Store.
var _ history.Store = (*historyRepository)(nil)

// scanHistory scans a row into a HistoryModel.
func scanHistory(scanner interface{ Scan(...any) error }) (*HistoryModel, error) {
	var model HistoryModel
	err := scanner.Scan(&model.ID, &model.Path, &model.OpenCount, &model.LastOpenedAt)
	return &model, err
}

// Record inserts a new history row for path, or bumps the open count
// and timestamp when the path was seen before.
func (r *historyRepository) Record(path string) error {
	_, err := r.db.Exec(
		`INSERT INTO history (id, path, open_count, last_opened_at) VALUES (?, ?, 1, ?)
		 ON CONFLICT(path) DO UPDATE SET open_count = open_count + 1, last_opened_at = excluded.last_opened_at`,
		uuid.NewString(), path, r.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently opened first.
func (r *historyRepository) Recent(limit int) ([]history.Entry, error) {
	rows, err := r.db.Query(
		`SELECT `+historyColumns+` FROM history ORDER BY last_opened_at DESC, path ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []history.Entry
	for rows.Next() {
		model, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, model.toEntry())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return entries, nil
}

// Prune keeps only the keep most recently opened entries and deletes
// the rest.
func (r *historyRepository) Prune(keep int) error {
	_, err := r.db.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY last_opened_at DESC, path ASC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}
