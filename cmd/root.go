package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/glint/internal/app"
	"github.com/zjrosen/glint/internal/clipboard"
	"github.com/zjrosen/glint/internal/config"
	"github.com/zjrosen/glint/internal/infrastructure/sqlite"
	"github.com/zjrosen/glint/internal/log"
	"github.com/zjrosen/glint/internal/tracing"
	"github.com/zjrosen/glint/internal/ui/styles"
	"github.com/zjrosen/glint/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	cfgErr  error
)

var rootCmd = &cobra.Command{
	Use:     "glint FILE",
	Short:   "A terminal viewer for Dart source files",
	Long:    `Displays a Dart source file with syntax highlighting in a scrollable, themeable viewport with copy-to-clipboard and live reload.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runViewer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .glint/config.yaml, then ~/.config/glint/config.yaml)")
	rootCmd.Flags().StringP("theme", "t", "",
		"theme preset (overrides config; run 'glint themes' to list)")
	rootCmd.Flags().String("mode", "",
		"force light or dark rendering instead of terminal detection")
	rootCmd.Flags().Bool("no-watch", false,
		"disable live reload when the file changes on disk")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log and enable the in-app log overlay (Ctrl+X)")
	rootCmd.Flags().Bool("trace", false,
		"enable tracing regardless of config")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.FindConfigFile()
		if dir := config.UserConfigDir(); path == "" && dir != "" {
			// First run: write a commented default config, then load it
			defaultPath := filepath.Join(dir, "config.yaml")
			if err := config.WriteDefaultConfig(defaultPath); err == nil {
				path = defaultPath
			}
		}
	}
	cfg, cfgErr = config.LoadFrom(path)
}

// applyFlagOverrides layers command-line flags over the loaded config.
func applyFlagOverrides(cfg config.Config, cmd *cobra.Command) config.Config {
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		cfg.Theme.Preset = theme
	}
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		cfg.Theme.Mode = mode
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Watch.Enabled = false
	}
	if traceOn, _ := cmd.Flags().GetBool("trace"); traceOn {
		cfg.Tracing.Enabled = true
	}
	return cfg
}

// themeConfigFrom maps the config section to the styles package's own
// config, flattening the nested YAML color map to dot-notation keys.
func themeConfigFrom(tc config.ThemeConfig) styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: tc.Preset,
		Mode:   tc.Mode,
		Colors: tc.FlattenedColors(),
	}
}

// tracingConfigFrom maps the config section to the tracing subsystem's
// own config, filling in the default trace file path.
func tracingConfigFrom(tc config.TracingConfig) tracing.Config {
	filePath := tc.FilePath
	if filePath == "" {
		filePath = config.DefaultTracesFilePath()
	}
	return tracing.Config{
		Enabled:      tc.Enabled,
		Exporter:     tc.Exporter,
		FilePath:     filePath,
		OTLPEndpoint: tc.OTLPEndpoint,
		SampleRate:   tc.SampleRate,
	}
}

// debugEnabled honors both the --debug flag and the GLINT_DEBUG
// environment variable.
func debugEnabled(cmd *cobra.Command) bool {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return true
	}
	return os.Getenv("GLINT_DEBUG") != ""
}

// recordHistory stores the opened file in the recent-files database.
// Failures are logged and swallowed; the viewer works without history.
func recordHistory(hc config.HistoryConfig, path string) {
	if !hc.Enabled || hc.Path == "" {
		return
	}

	db, err := sqlite.NewDB(hc.Path)
	if err != nil {
		log.ErrorErr(log.CatHistory, "Failed to open history database", err, "path", hc.Path)
		return
	}
	defer func() { _ = db.Close() }()

	store := db.HistoryStore()
	if err := store.Record(path); err != nil {
		log.ErrorErr(log.CatHistory, "Failed to record history entry", err, "file", path)
		return
	}
	if err := store.Prune(hc.MaxEntries); err != nil {
		log.ErrorErr(log.CatHistory, "Failed to prune history", err)
	}
}

func runViewer(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	cfg = applyFlagOverrides(cfg, cmd)

	debugMode := debugEnabled(cmd)
	if debugMode {
		if err := os.MkdirAll(config.UserConfigDir(), 0o750); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		logPath := filepath.Join(config.UserConfigDir(), "debug.log")
		cleanup, err := log.InitWithTeaLog(logPath, "glint")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	// User presets layer under the theme; a broken themes dir is not fatal
	if err := styles.LoadUserPresets(config.ThemesDir()); err != nil {
		log.Warn(log.CatConfig, "Failed to load user theme presets", "error", err)
	}
	if err := styles.ApplyTheme(themeConfigFrom(cfg.Theme)); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	provider, err := tracing.NewProvider(tracingConfigFrom(cfg.Tracing))
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = provider.Shutdown(ctx)
		cancel()
	}()

	var tracer trace.Tracer
	if provider.Enabled() {
		tracer = provider.Tracer()
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path %s: %w", args[0], err)
	}
	content, err := loadFile(tracer, path)
	if err != nil {
		return err
	}

	recordHistory(cfg.History, path)

	var w *watcher.Watcher
	if cfg.Watch.Enabled {
		wcfg := watcher.Config{
			Path:        path,
			DebounceDur: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		}
		if created, werr := watcher.New(wcfg, content); werr == nil {
			if werr := created.Start(); werr == nil {
				w = created
			} else {
				_ = created.Stop()
				log.ErrorErr(log.CatWatcher, "Failed to start watcher", werr, "path", path)
			}
		} else {
			log.ErrorErr(log.CatWatcher, "Failed to create watcher", werr, "path", path)
		}
		// The viewer works fine without live reload
	}

	zone.NewGlobal()

	model := app.New(app.Config{
		Path:      path,
		Content:   content,
		Cfg:       cfg,
		Clipboard: clipboard.SystemClipboard{},
		Watcher:   w,
		Tracer:    tracer,
		DebugMode: debugMode,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadFile reads the viewed file with an optional span around the read.
func loadFile(tracer trace.Tracer, path string) (string, error) {
	var span trace.Span
	if tracer != nil {
		_, span = tracer.Start(context.Background(), "load-file",
			trace.WithAttributes(attribute.String("file.path", path)))
		defer span.End()
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's positional argument
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if span != nil {
		span.SetAttributes(attribute.Int("file.bytes", len(data)))
	}
	return string(data), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
