package codeview

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/glint/internal/syntax"
	"github.com/zjrosen/glint/internal/ui/styles"
)

// SplitLines breaks a token stream into per-line slices. Tokens that
// span multiple lines (block comments, multi-line strings) are split at
// each newline so every resulting token belongs to exactly one display
// line. The newline characters themselves are dropped; a trailing
// newline at the end of the stream does not produce a phantom line.
func SplitLines(tokens []syntax.Token) [][]syntax.Token {
	lines := [][]syntax.Token{nil}

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			last := len(lines) - 1
			lines[last] = append(lines[last], tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], syntax.Token{Category: tok.Category, Text: part})
		}
	}

	// Files ending in a newline split into an empty final slice.
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// lineText reassembles the raw (unstyled) text of one display line.
func lineText(line []syntax.Token) string {
	var b strings.Builder
	for _, tok := range line {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// renderLine styles one line of tokens. Tabs are expanded to spaces
// against the running display column so indentation alignment survives
// per-token styling.
func renderLine(line []syntax.Token, tabWidth int) string {
	var b strings.Builder
	col := 0
	for _, tok := range line {
		expanded := expandTabs(tok.Text, &col, tabWidth)
		b.WriteString(styles.SyntaxStyle(tok.Category).Render(expanded))
	}
	return b.String()
}

// expandTabs replaces each tab with spaces up to the next tab stop.
// col tracks the display column across tokens of the same line and is
// advanced by grapheme cluster width for everything else, so wide runes
// and combined emoji count the columns a terminal actually uses.
func expandTabs(text string, col *int, tabWidth int) string {
	if !strings.Contains(text, "\t") {
		// Fast path, but the column still has to advance for later tokens.
		*col += runewidth.StringWidth(text)
		return text
	}

	var b strings.Builder
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if cluster == "\t" {
			n := tabWidth - *col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			*col += n
			continue
		}
		b.WriteString(cluster)
		*col += runewidth.StringWidth(cluster)
	}
	return b.String()
}
