package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_ContainsSections(t *testing.T) {
	m := New().SetSize(100, 40)
	view := m.View()

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "Navigation")
	assert.Contains(t, view, "Actions")
	assert.Contains(t, view, "General")
	assert.Contains(t, view, "Highlighting")
}

func TestView_ContainsKeybindings(t *testing.T) {
	m := New().SetSize(100, 40)
	view := m.View()

	assert.Contains(t, view, "copy file")
	assert.Contains(t, view, "reload file")
	assert.Contains(t, view, "toggle line numbers")
	assert.Contains(t, view, "quit")
}

func TestView_ContainsLegendCategories(t *testing.T) {
	m := New().SetSize(100, 40)
	view := m.View()

	for _, name := range []string{"keyword", "string", "comment", "number", "constant"} {
		assert.Contains(t, view, name)
	}
}

func TestView_ContainsFooter(t *testing.T) {
	m := New().SetSize(100, 40)
	view := m.View()

	assert.Contains(t, view, "Press ? or Esc to close")
}

func TestOverlay_PlacesOnBackground(t *testing.T) {
	m := New().SetSize(120, 40)
	bg := strings.Repeat(strings.Repeat(".", 120)+"\n", 40)
	bg = strings.TrimSuffix(bg, "\n")

	result := m.Overlay(bg)

	require.Contains(t, result, "Keybindings")
	// Background still visible around the box
	assert.Contains(t, result, "...")
}

func TestView_HasBorder(t *testing.T) {
	m := New().SetSize(100, 40)
	view := m.View()

	assert.Contains(t, view, "╭")
	assert.Contains(t, view, "╰")
}
