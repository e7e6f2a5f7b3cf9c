package codeview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glint/internal/ui/styles"
)

// Scrollbar characters
const (
	scrollbarThumbChar = "█"
	scrollbarTrackChar = "░"
)

// thumbBounds returns the first row and the height of the scroll thumb
// for a track of viewportHeight rows.
// Thumb height is proportional to the visible/total ratio with a
// minimum of 1 so the thumb never vanishes on long files.
func thumbBounds(totalLines, viewportHeight, offset int) (start, height int) {
	if totalLines <= 0 || viewportHeight <= 0 {
		return 0, 0
	}

	if totalLines <= viewportHeight {
		return 0, viewportHeight
	}

	height = max(1, viewportHeight*viewportHeight/totalLines)

	maxOffset := totalLines - viewportHeight
	if maxOffset <= 0 {
		return 0, height
	}

	// Scrollable track area (total height minus thumb size)
	track := viewportHeight - height
	if track <= 0 {
		return 0, height
	}

	start = track * offset / maxOffset
	start = max(0, min(start, viewportHeight-height))

	return start, height
}

// renderScrollbar renders the scrollbar column, one character per row,
// joined by newlines. When the content fits the viewport the column is
// blank so the layout stays stable.
func renderScrollbar(totalLines, viewportHeight, offset int) string {
	if viewportHeight <= 0 || totalLines <= 0 {
		return ""
	}

	if totalLines <= viewportHeight {
		lines := make([]string, viewportHeight)
		for i := range lines {
			lines[i] = " "
		}
		return strings.Join(lines, "\n")
	}

	thumbStart, thumbHeight := thumbBounds(totalLines, viewportHeight, offset)

	trackStyle := lipgloss.NewStyle().Foreground(styles.ScrollbarTrackColor)
	thumbStyle := lipgloss.NewStyle().Foreground(styles.ScrollbarThumbColor)

	lines := make([]string, viewportHeight)
	for row := range viewportHeight {
		if row >= thumbStart && row < thumbStart+thumbHeight {
			lines[row] = thumbStyle.Render(scrollbarThumbChar)
		} else {
			lines[row] = trackStyle.Render(scrollbarTrackChar)
		}
	}

	return strings.Join(lines, "\n")
}
