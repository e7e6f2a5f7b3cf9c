// Package codeview renders a tokenized source file in a scrollable
// viewport with syntax styling, an optional line number gutter, a
// scrollbar, and a clickable copy button.
package codeview

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/glint/internal/cache"
	"github.com/zjrosen/glint/internal/clipboard"
	"github.com/zjrosen/glint/internal/keys"
	"github.com/zjrosen/glint/internal/syntax"
	"github.com/zjrosen/glint/internal/ui/styles"
)

const (
	headerHeight = 1 // File name + copy button row
	scrollLines  = 3 // Lines to scroll per mouse wheel tick
	defaultTab   = 4
)

// CopiedMsg is returned when the file content has been handed to the
// clipboard. Err is set when the copy failed.
type CopiedMsg struct {
	Lines int
	Err   error
}

// Config configures a code view.
type Config struct {
	ShowLineNumbers bool
	TabWidth        int
	Clipboard       clipboard.Clipboard
}

// Model is the code view component state.
type Model struct {
	path   string
	tokens []syntax.Token
	lines  [][]syntax.Token
	raw    []string // unstyled text per line, used as cache key material

	viewport  viewport.Model
	keys      keys.KeyMap
	clipboard clipboard.Clipboard
	lineCache cache.Manager[string, string]

	showLineNumbers bool
	tabWidth        int

	width  int
	height int
}

// New creates a code view model.
func New(cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTab
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.SystemClipboard{}
	}

	return Model{
		viewport:        viewport.New(0, 0),
		keys:            keys.DefaultKeyMap(),
		clipboard:       cfg.Clipboard,
		lineCache:       cache.NewInMemory[string, string]("codeview-lines", cache.DefaultExpiration, cache.DefaultCleanupInterval),
		showLineNumbers: cfg.ShowLineNumbers,
		tabWidth:        cfg.TabWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTokens replaces the displayed token stream, preserving the scroll
// position when the new content is long enough.
func (m Model) SetTokens(path string, tokens []syntax.Token) Model {
	m.path = path
	m.tokens = tokens
	m.lines = SplitLines(tokens)
	m.raw = make([]string, len(m.lines))
	for i, line := range m.lines {
		m.raw[i] = lineText(line)
	}
	m.refreshContent()
	return m
}

// SetSize updates dimensions and re-renders visible content.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-1, 0) // Reserve one column for the scrollbar
	m.viewport.Height = max(height-headerHeight, 0)
	m.refreshContent()
	return m
}

// Path returns the displayed file path.
func (m Model) Path() string {
	return m.path
}

// TotalLines returns the number of display lines.
func (m Model) TotalLines() int {
	return len(m.lines)
}

// CurrentLine returns the 1-based number of the top visible line.
func (m Model) CurrentLine() int {
	if len(m.lines) == 0 {
		return 0
	}
	return m.viewport.YOffset + 1
}

// ScrollPercent returns the scroll position in [0, 1].
func (m Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// LineNumbersVisible reports whether the gutter is shown.
func (m Model) LineNumbersVisible() bool {
	return m.showLineNumbers
}

// Update handles messages for the code view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Yank):
		return m, m.copyCmd()
	case key.Matches(msg, m.keys.ToggleLineNumbers):
		m.showLineNumbers = !m.showLineNumbers
		m.refreshContent()
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.ScrollUp(scrollLines)
		return m, nil

	case tea.MouseButtonWheelDown:
		m.viewport.ScrollDown(scrollLines)
		return m, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if z := zone.Get(CopyButtonZoneID); z != nil && z.InBounds(msg) {
			return m, m.copyCmd()
		}
	}

	return m, nil
}

// copyCmd hands the reassembled source to the clipboard off the update
// loop. Token text concatenation reproduces the file byte for byte, so
// no separate source buffer is kept around.
func (m Model) copyCmd() tea.Cmd {
	src := syntax.Source(m.tokens)
	lines := len(m.lines)
	cb := m.clipboard
	return func() tea.Msg {
		return CopiedMsg{Lines: lines, Err: cb.Copy(src)}
	}
}

// View renders the code view: header row, then viewport content joined
// with the scrollbar column.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.renderHeader()
	body := m.joinWithScrollbar(m.viewport.View())

	return header + "\n" + body
}

// renderHeader builds the top row: file path on the left, zone-marked
// copy button on the right.
func (m Model) renderHeader() string {
	pathStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	buttonStyle := lipgloss.NewStyle().
		Foreground(styles.CopyButtonFgColor).
		Background(styles.CopyButtonBgColor).
		Padding(0, 1)

	button := zone.Mark(CopyButtonZoneID, buttonStyle.Render("⧉ copy"))
	buttonWidth := ansi.StringWidth(button)

	pathWidth := max(m.width-buttonWidth-2, 0)
	path := m.path
	if ansi.StringWidth(path) > pathWidth {
		path = ansi.TruncateLeft(path, ansi.StringWidth(path)-pathWidth+1, "…")
	}
	left := pathStyle.Render(path)

	padding := max(m.width-ansi.StringWidth(left)-buttonWidth-1, 1)
	return left + strings.Repeat(" ", padding) + button + " "
}

// joinWithScrollbar appends the scrollbar column to each content row,
// padding rows to a fixed width so the bar stays aligned.
func (m Model) joinWithScrollbar(content string) string {
	height := m.viewport.Height
	contentWidth := m.viewport.Width
	if height <= 0 {
		return content
	}

	bar := renderScrollbar(len(m.lines), height, m.viewport.YOffset)
	barLines := strings.Split(bar, "\n")
	contentLines := strings.Split(content, "\n")

	var b strings.Builder
	b.Grow(len(content) + height*2)
	for i := range height {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if w := ansi.StringWidth(line); w < contentWidth {
			line += strings.Repeat(" ", contentWidth-w)
		}
		b.WriteString(line)
		if i < len(barLines) {
			b.WriteString(barLines[i])
		}
	}
	return b.String()
}

// refreshContent rebuilds the viewport content from the token lines.
// Styled lines are memoized in the line cache keyed by raw text, so a
// resize or line-number toggle does not re-style unchanged content.
func (m *Model) refreshContent() {
	if len(m.lines) == 0 {
		m.viewport.SetContent("")
		return
	}

	gutterWidth := 0
	numberStyle := lipgloss.NewStyle().Foreground(styles.LineNumberColor)
	numberFormat := ""
	if m.showLineNumbers {
		digits := len(strconv.Itoa(len(m.lines)))
		gutterWidth = digits + 3 // digits + " │ "
		numberFormat = fmt.Sprintf("%%%dd │ ", digits)
	}
	contentWidth := max(m.viewport.Width-gutterWidth, 1)

	ctx := context.Background()
	rendered := make([]string, len(m.lines))
	for i, line := range m.lines {
		styled := m.styledLine(ctx, i, line)
		if ansi.StringWidth(styled) > contentWidth {
			styled = ansi.Truncate(styled, contentWidth-1, "…")
		}
		if m.showLineNumbers {
			styled = numberStyle.Render(fmt.Sprintf(numberFormat, i+1)) + styled
		}
		rendered[i] = styled
	}

	m.viewport.SetContent(strings.Join(rendered, "\n"))
}

// styledLine returns the styled rendering of one line, consulting the
// cache first. Identical lines share one entry.
func (m *Model) styledLine(ctx context.Context, i int, line []syntax.Token) string {
	key := strconv.Itoa(m.tabWidth) + ":" + m.raw[i]
	if cached, ok := m.lineCache.Get(ctx, key); ok {
		return cached
	}
	styled := renderLine(line, m.tabWidth)
	m.lineCache.Set(ctx, key, styled, cache.DefaultExpiration)
	return styled
}
