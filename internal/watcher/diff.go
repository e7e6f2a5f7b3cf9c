package watcher

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// countLineChanges returns how many lines were added and removed
// between two versions of the file, for the reload toast.
func countLineChanges(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}

	dmp := diffmatchpatch.New()
	// Line-mode diff: map lines to runes, diff the rune strings, then
	// map back so each diff segment covers whole lines.
	c1, c2, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return added, removed
}

// countLines counts lines in a diff segment; a trailing fragment with
// no newline still counts as a line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
