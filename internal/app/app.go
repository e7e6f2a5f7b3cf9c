// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/glint/internal/clipboard"
	"github.com/zjrosen/glint/internal/config"
	"github.com/zjrosen/glint/internal/keys"
	"github.com/zjrosen/glint/internal/log"
	"github.com/zjrosen/glint/internal/pubsub"
	"github.com/zjrosen/glint/internal/syntax"
	"github.com/zjrosen/glint/internal/ui/codeview"
	"github.com/zjrosen/glint/internal/ui/help"
	"github.com/zjrosen/glint/internal/ui/logoverlay"
	"github.com/zjrosen/glint/internal/ui/styles"
	"github.com/zjrosen/glint/internal/ui/toaster"
	"github.com/zjrosen/glint/internal/watcher"
)

const (
	statusBarHeight = 1
	toastDuration   = 3 * time.Second
)

// Config holds everything the root model needs to run.
type Config struct {
	// Path is the absolute path of the viewed file.
	Path string

	// Content is the file's initial content.
	Content string

	// Cfg is the loaded application configuration.
	Cfg config.Config

	// Clipboard overrides the system clipboard (tests). Nil uses the
	// real one.
	Clipboard clipboard.Clipboard

	// Watcher publishes live-reload events. Nil disables live reload.
	Watcher *watcher.Watcher

	// Tracer records load/tokenize spans. Nil disables tracing.
	Tracer trace.Tracer

	// DebugMode enables the log overlay (Ctrl+X toggle).
	DebugMode bool
}

// Model is the root application state.
type Model struct {
	path string
	keys keys.KeyMap

	codeview codeview.Model
	toaster  toaster.Model
	help     help.Model

	helpVisible   bool
	showStatusBar bool

	width  int
	height int

	tracer trace.Tracer

	debugMode    bool
	logOverlay   logoverlay.Model
	logListenCmd tea.Cmd

	// File watcher for live reload (pubsub-based)
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Reload]
}

// New creates the root model and tokenizes the initial content.
func New(cfg Config) Model {
	m := Model{
		path:          cfg.Path,
		keys:          keys.DefaultKeyMap(),
		toaster:       toaster.New(),
		help:          help.New(),
		showStatusBar: cfg.Cfg.UI.ShowStatusBar,
		tracer:        cfg.Tracer,
		debugMode:     cfg.DebugMode,
		logOverlay:    logoverlay.New(),
	}

	m.codeview = codeview.New(codeview.Config{
		ShowLineNumbers: cfg.Cfg.UI.ShowLineNumbers,
		TabWidth:        cfg.Cfg.UI.TabWidth,
		Clipboard:       cfg.Clipboard,
	})
	m.codeview = m.codeview.SetTokens(cfg.Path, m.tokenize(cfg.Content))

	if cfg.Watcher != nil {
		ctx, cancel := context.WithCancel(context.Background())
		m.watcherHandle = cfg.Watcher
		m.watcherCancel = cancel
		m.watcherListener = pubsub.NewContinuousListener(ctx, cfg.Watcher.Broker())
	}

	if cfg.DebugMode {
		m.logListenCmd = m.logOverlay.StartListening()
	}

	return m
}

// tokenize runs the tokenizer with an optional span around it.
func (m Model) tokenize(content string) []syntax.Token {
	if m.tracer == nil {
		return syntax.Tokenize(content)
	}

	_, span := m.tracer.Start(context.Background(), "tokenize",
		trace.WithAttributes(attribute.String("file.path", m.path)))
	tokens := syntax.Tokenize(content)
	span.SetAttributes(attribute.Int("token.count", len(tokens)))
	span.End()
	return tokens
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	if m.logListenCmd != nil {
		cmds = append(cmds, m.logListenCmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.codeview = m.codeview.SetSize(msg.Width, m.codeviewHeight())
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		m.help = m.help.SetSize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)

		return m, nil

	case log.LogEvent:
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
		if m.helpVisible {
			return m, nil
		}
		var cmd tea.Cmd
		m.codeview, cmd = m.codeview.Update(msg)
		return m, cmd

	case codeview.CopiedMsg:
		if msg.Err != nil {
			log.ErrorErr(log.CatClipboard, "Copy failed", msg.Err, "path", m.path)
			m.toaster = m.toaster.Show("Copy failed: "+msg.Err.Error(), toaster.StyleError)
		} else {
			log.Info(log.CatClipboard, "Copied file to clipboard", "path", m.path, "lines", msg.Lines)
			m.toaster = m.toaster.Show(fmt.Sprintf("Copied %d lines", msg.Lines), toaster.StyleSuccess)
		}
		return m, toaster.ScheduleDismiss(toastDuration)

	case pubsub.Event[watcher.Reload]:
		return m.handleReloadEvent(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.codeview, cmd = m.codeview.Update(msg)
	return m, cmd
}

// handleKeyMsg routes key presses by overlay precedence: log overlay,
// help overlay, then the code view.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.debugMode && msg.String() == "ctrl+x" {
		m.logOverlay.Toggle()
		return m, nil
	}

	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if m.helpVisible {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.helpVisible = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.toaster.Visible() {
			m.toaster = m.toaster.Hide()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleStatusBar):
		m.showStatusBar = !m.showStatusBar
		m.codeview = m.codeview.SetSize(m.width, m.codeviewHeight())
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	var cmd tea.Cmd
	m.codeview, cmd = m.codeview.Update(msg)
	return m, cmd
}

// reload re-reads the viewed file on demand.
func (m Model) reload() (tea.Model, tea.Cmd) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		log.ErrorErr(log.CatUI, "Manual reload failed", err, "path", m.path)
		m.toaster = m.toaster.Show("Reload failed: "+err.Error(), toaster.StyleError)
		return m, toaster.ScheduleDismiss(toastDuration)
	}

	m.codeview = m.codeview.SetTokens(m.path, m.tokenize(string(data)))
	m.toaster = m.toaster.Show("Reloaded", toaster.StyleInfo)
	return m, toaster.ScheduleDismiss(toastDuration)
}

// handleReloadEvent applies a watcher change and keeps listening.
func (m Model) handleReloadEvent(msg pubsub.Event[watcher.Reload]) (tea.Model, tea.Cmd) {
	reload := msg.Payload
	m.codeview = m.codeview.SetTokens(reload.Path, m.tokenize(reload.Content))
	m.toaster = m.toaster.Show(
		fmt.Sprintf("File changed: +%d −%d lines", reload.Added, reload.Removed),
		toaster.StyleInfo,
	)

	cmds := []tea.Cmd{toaster.ScheduleDismiss(toastDuration)}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	return m, tea.Batch(cmds...)
}

// codeviewHeight returns the height left for the code view after the
// status bar.
func (m Model) codeviewHeight() int {
	h := m.height
	if m.showStatusBar {
		h -= statusBarHeight
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.codeview.View()
	if m.showStatusBar {
		view += "\n" + m.renderStatusBar()
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	if m.helpVisible {
		view = m.help.Overlay(view)
	}

	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}

	// Scan registers mouse zones; must wrap the final composed frame.
	return zone.Scan(view)
}

// renderStatusBar shows the file position on the right and key hints on
// the left.
func (m Model) renderStatusBar() string {
	barStyle := lipgloss.NewStyle().
		Foreground(styles.StatusBarFgColor).
		Background(styles.StatusBarBgColor)

	left := " y copy · n numbers · ? help · q quit"
	right := fmt.Sprintf("%d/%d  %3.0f%% ",
		m.codeview.CurrentLine(),
		m.codeview.TotalLines(),
		m.codeview.ScrollPercent()*100,
	)

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return barStyle.Width(m.width).Render(right)
	}

	return barStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.logOverlay.StopListening()

	// Cancel watcher subscription context (stops listener)
	if m.watcherCancel != nil {
		m.watcherCancel()
	}

	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}

	return nil
}
