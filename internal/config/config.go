// Package config provides configuration types and defaults for glint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/glint/internal/log"
)

// Config holds all configuration options for glint.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Watch   WatchConfig   `mapstructure:"watch"`
	History HistoryConfig `mapstructure:"history"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	ShowStatusBar   bool `mapstructure:"show_status_bar"`
	TabWidth        int  `mapstructure:"tab_width"` // Spaces per tab when rendering (1-16)
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast", or a user preset name.
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     syntax:
	//       keyword: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "syntax.keyword": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// WatchConfig holds live-reload configuration.
type WatchConfig struct {
	// Enabled controls whether the viewed file is watched for changes.
	// Default: true
	Enabled bool `mapstructure:"enabled"`

	// DebounceMS is the quiet period after the last write event before
	// the file is reloaded. Default: 200
	DebounceMS int `mapstructure:"debounce_ms"`
}

// HistoryConfig holds recent-files storage configuration.
type HistoryConfig struct {
	// Enabled controls whether opened files are recorded.
	// Default: true
	Enabled bool `mapstructure:"enabled"`

	// Path is the SQLite database location.
	// Default: ~/.config/glint/glint.db
	Path string `mapstructure:"path"`

	// MaxEntries caps how many files `glint recent` lists.
	// Default: 20
	MaxEntries int `mapstructure:"max_entries"`
}

// TracingConfig holds trace export configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/glint/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// UserConfigDir returns ~/.config/glint, or "" if the home directory
// is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "glint")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// DefaultHistoryDBPath returns the default path for the recent-files
// database.
func DefaultHistoryDBPath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "glint.db")
}

// ThemesDir returns the directory scanned for user theme presets.
func ThemesDir() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.TabWidth < 1 || ui.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", ui.TabWidth)
	}
	return nil
}

// ValidateTheme checks theme configuration for errors that can be
// caught before styles.ApplyTheme does full token/color validation.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", theme.Mode)
	}
	return nil
}

// ValidateWatch checks watch configuration for errors.
func ValidateWatch(watch WatchConfig) error {
	if watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", watch.DebounceMS)
	}
	return nil
}

// ValidateHistory checks history configuration for errors.
func ValidateHistory(history HistoryConfig) error {
	if history.MaxEntries < 1 {
		return fmt.Errorf("history.max_entries must be at least 1, got %d", history.MaxEntries)
	}
	if history.Path != "" && !filepath.IsAbs(history.Path) {
		return fmt.Errorf("history.path must be an absolute path, got %q", history.Path)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration for errors.
func (c Config) Validate() error {
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ValidateWatch(c.Watch); err != nil {
		return err
	}
	if err := ValidateHistory(c.History); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
			TabWidth:        4,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMS: 200,
		},
		History: HistoryConfig{
			Enabled:    true,
			Path:       DefaultHistoryDBPath(),
			MaxEntries: 20,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Glint Configuration

# UI settings
ui:
  show_line_numbers: true  # Show a line number gutter
  show_status_bar: true    # Show status bar at bottom
  tab_width: 4             # Spaces per tab when rendering (1-16)

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'glint themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default glint theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # User presets are loaded from ~/.config/glint/themes/*.yaml
  #
  # Force light or dark rendering instead of terminal detection:
  # mode: dark
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   syntax.keyword: "#CBA6F7"
  #   syntax.string: "#A6E3A1"
  #   text.primary: "#FFFFFF"
  #
  # See all available color tokens with 'glint themes --tokens'

# Live reload of the viewed file
watch:
  enabled: true
  debounce_ms: 200  # Quiet period after the last write before reloading

# Recent files history
history:
  enabled: true
  max_entries: 20
  # path: /home/me/.config/glint/glint.db

# Tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/glint/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
