package codeview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestThumbBounds_SmallFile(t *testing.T) {
	// 50 lines, 30 viewport: thumb should be large
	start, height := thumbBounds(50, 30, 0)

	// thumbHeight = max(1, 30*30/50) = 18
	require.Equal(t, 18, height)
	require.Equal(t, 0, start)
}

func TestThumbBounds_LargeFile(t *testing.T) {
	// 1000 lines, 30 viewport: thumb clamps to minimum height 1
	start, height := thumbBounds(1000, 30, 0)

	require.Equal(t, 1, height)
	require.Equal(t, 0, start)
}

func TestThumbBounds_ContentFitsViewport(t *testing.T) {
	start, height := thumbBounds(30, 30, 0)
	require.Equal(t, 30, height, "thumb should fill the track when content fits")
	require.Equal(t, 0, start)

	start, height = thumbBounds(20, 30, 0)
	require.Equal(t, 30, height)
	require.Equal(t, 0, start)
}

func TestThumbBounds_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name           string
		total, vp, off int
	}{
		{"zero total", 0, 30, 0},
		{"zero viewport", 100, 0, 0},
		{"negative total", -10, 30, 0},
		{"negative viewport", 100, -30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, height := thumbBounds(tt.total, tt.vp, tt.off)
			require.Equal(t, 0, start)
			require.Equal(t, 0, height)
		})
	}
}

func TestThumbBounds_ScrollAtEnd(t *testing.T) {
	// maxOffset = 100 - 30 = 70
	start, height := thumbBounds(100, 30, 70)

	// thumbHeight = max(1, 30*30/100) = 9, bottom start = 30 - 9 = 21
	require.Equal(t, 9, height)
	require.Equal(t, 21, start)
}

func TestThumbBounds_ScrollMiddle(t *testing.T) {
	start, height := thumbBounds(100, 30, 35)

	require.Equal(t, 9, height)
	require.True(t, start > 0 && start < 21, "thumb should sit mid-track, got %d", start)
}

func TestRenderScrollbar_InvalidConfig(t *testing.T) {
	require.Empty(t, renderScrollbar(100, 0, 0))
	require.Empty(t, renderScrollbar(0, 30, 0))
}

func TestRenderScrollbar_ContentFits_BlankColumn(t *testing.T) {
	result := renderScrollbar(20, 30, 0)

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 30)
	for _, line := range lines {
		require.Equal(t, " ", line)
	}
}

func TestRenderScrollbar_ContentExceedsViewport(t *testing.T) {
	result := renderScrollbar(100, 30, 0)

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 30)
	require.Contains(t, stripANSI(result), scrollbarThumbChar)
	require.Contains(t, stripANSI(result), scrollbarTrackChar)
}

func TestProperty_ThumbAlwaysWithinTrack(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(1, 10000).Draw(rt, "total")
		vp := rapid.IntRange(1, 100).Draw(rt, "viewport")
		off := rapid.IntRange(0, max(0, total-vp)).Draw(rt, "offset")

		start, height := thumbBounds(total, vp, off)

		require.GreaterOrEqual(t, start, 0)
		require.GreaterOrEqual(t, height, 1)
		require.LessOrEqual(t, start+height, vp,
			"thumb exceeds track: start=%d height=%d viewport=%d", start, height, vp)
	})
}

func TestProperty_RenderScrollbarLineCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(1, 1000).Draw(rt, "total")
		vp := rapid.IntRange(1, 50).Draw(rt, "viewport")
		off := rapid.IntRange(0, max(0, total-vp)).Draw(rt, "offset")

		result := renderScrollbar(total, vp, off)
		require.Len(t, strings.Split(result, "\n"), vp)
	})
}
