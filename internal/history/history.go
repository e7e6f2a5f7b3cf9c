// Package history records which files the viewer has opened so
// `glint recent` can list them. Failures here are never fatal; the
// viewer works without history.
package history

import "time"

// Entry is one viewed file in the history database.
type Entry struct {
	ID           string // uuid
	Path         string // absolute path
	OpenCount    int
	LastOpenedAt time.Time
}

// Store persists viewed-file history.
type Store interface {
	// Record inserts the path or bumps its open count and timestamp.
	Record(path string) error

	// Recent returns up to limit entries, most recently opened first.
	Recent(limit int) ([]Entry, error)

	// Prune keeps only the keep most recently opened entries.
	Prune(keep int) error
}
