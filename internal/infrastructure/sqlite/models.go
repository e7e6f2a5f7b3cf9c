package sqlite

import (
	"time"

	"github.com/zjrosen/glint/internal/history"
)

// HistoryModel represents the database row for the history table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type HistoryModel struct {
	ID           string
	Path         string
	OpenCount    int
	LastOpenedAt int64 // Unix timestamp
}

// toEntry converts a database HistoryModel to a history Entry.
func (m *HistoryModel) toEntry() history.Entry {
	return history.Entry{
		ID:           m.ID,
		Path:         m.Path,
		OpenCount:    m.OpenCount,
		LastOpenedAt: time.Unix(m.LastOpenedAt, 0),
	}
}
