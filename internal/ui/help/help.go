// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glint/internal/keys"
	"github.com/zjrosen/glint/internal/syntax"
	"github.com/zjrosen/glint/internal/ui/overlay"
	"github.com/zjrosen/glint/internal/ui/styles"
)

// Styles are built at render time so theme changes applied after
// package init are picked up.
func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(2)
}

func dividerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
}

func sectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		MarginTop(1)
}

func keyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Width(11)
}

func descStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor)
}

func contentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 2)
}

func footerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		MarginTop(1)
}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int
}

// New creates a new help view.
func New() Model {
	return Model{
		keys: keys.DefaultKeyMap(),
	}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

// renderContent builds the help box content.
func (m Model) renderContent() string {
	// Column style with right margin for spacing
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	// Navigation column
	var navCol strings.Builder
	navCol.WriteString(sectionStyle().Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(m.renderBinding(m.keys.Up))
	navCol.WriteString(m.renderBinding(m.keys.Down))
	navCol.WriteString(m.renderBinding(m.keys.PageUp))
	navCol.WriteString(m.renderBinding(m.keys.PageDown))
	navCol.WriteString(m.renderBinding(m.keys.HalfUp))
	navCol.WriteString(m.renderBinding(m.keys.HalfDown))
	navCol.WriteString(m.renderBinding(m.keys.GotoTop))
	navCol.WriteString(m.renderBinding(m.keys.GotoBottom))

	// Actions column
	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle().Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(m.renderBinding(m.keys.Yank))
	actionsCol.WriteString(m.renderBinding(m.keys.Reload))
	actionsCol.WriteString(m.renderBinding(m.keys.ToggleLineNumbers))
	actionsCol.WriteString(m.renderBinding(m.keys.ToggleStatusBar))

	// General column
	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle().Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(m.renderBinding(m.keys.Escape))
	generalCol.WriteString(m.renderBinding(m.keys.Quit))

	// Highlight legend column, each category in its own style
	var legendCol strings.Builder
	legendCol.WriteString(sectionStyle().Render("Highlighting"))
	legendCol.WriteString("\n")
	for _, cat := range syntax.Categories() {
		legendCol.WriteString(styles.SyntaxStyle(cat).Render(cat.String()))
		legendCol.WriteString("\n")
	}

	// Join columns horizontally, aligned at top
	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(actionsCol.String()),
		columnStyle.Render(generalCol.String()),
		legendCol.String(), // Last column doesn't need right margin
	)

	// Calculate box width based on columns content
	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4 // Add horizontal padding (2 each side)

	body := contentStyle().Render(columns + "\n" + footerStyle().Render("Press ? or Esc to close"))

	// Divider spans full box width
	divider := dividerStyle().Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle().Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle().Width(boxWidth).Render(content.String())
}

func (m Model) renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle().Render(key) + descStyle().Render(desc) + "\n"
}
