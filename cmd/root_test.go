package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/glint/internal/config"
	"github.com/zjrosen/glint/internal/ui/styles"
)

// newFlagCommand mirrors the root command's viewer flags for testing
// the override logic without touching global state.
func newFlagCommand() *cobra.Command {
	c := &cobra.Command{}
	c.Flags().StringP("theme", "t", "", "")
	c.Flags().String("mode", "", "")
	c.Flags().Bool("no-watch", false, "")
	c.Flags().Bool("debug", false, "")
	c.Flags().Bool("trace", false, "")
	return c
}

func TestApplyFlagOverrides_NoFlagsKeepsConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Theme.Preset = "nord"

	out := applyFlagOverrides(cfg, newFlagCommand())

	assert.Equal(t, "nord", out.Theme.Preset)
	assert.True(t, out.Watch.Enabled)
	assert.False(t, out.Tracing.Enabled)
}

func TestApplyFlagOverrides_ThemeAndMode(t *testing.T) {
	c := newFlagCommand()
	require.NoError(t, c.Flags().Set("theme", "dracula"))
	require.NoError(t, c.Flags().Set("mode", "light"))

	out := applyFlagOverrides(config.Defaults(), c)

	assert.Equal(t, "dracula", out.Theme.Preset)
	assert.Equal(t, "light", out.Theme.Mode)
}

func TestApplyFlagOverrides_NoWatchAndTrace(t *testing.T) {
	c := newFlagCommand()
	require.NoError(t, c.Flags().Set("no-watch", "true"))
	require.NoError(t, c.Flags().Set("trace", "true"))

	out := applyFlagOverrides(config.Defaults(), c)

	assert.False(t, out.Watch.Enabled)
	assert.True(t, out.Tracing.Enabled)
}

func TestDebugEnabled_EnvVariable(t *testing.T) {
	c := newFlagCommand()

	assert.False(t, debugEnabled(c))

	t.Setenv("GLINT_DEBUG", "1")
	assert.True(t, debugEnabled(c))
}

func TestThemeConfigFrom_FlattensNestedColors(t *testing.T) {
	tc := config.ThemeConfig{
		Preset: "dracula",
		Mode:   "dark",
		Colors: map[string]any{
			"syntax": map[string]any{"keyword": "#FF0000"},
		},
	}

	out := themeConfigFrom(tc)

	assert.Equal(t, "dracula", out.Preset)
	assert.Equal(t, "dark", out.Mode)
	assert.Equal(t, map[string]string{"syntax.keyword": "#FF0000"}, out.Colors)
}

func TestApplyTheme_FromLoadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `theme:
  mode: dark
  colors:
    syntax:
      keyword: "#123456"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	require.NoError(t, styles.ApplyTheme(themeConfigFrom(cfg.Theme)))
	assert.Equal(t, "#123456", styles.SyntaxKeywordColor.Dark)
}

func TestTracingConfigFrom_MapsFields(t *testing.T) {
	tc := config.TracingConfig{
		Enabled:      true,
		Exporter:     "otlp",
		OTLPEndpoint: "collector:4317",
		SampleRate:   0.5,
	}

	out := tracingConfigFrom(tc)

	assert.True(t, out.Enabled)
	assert.Equal(t, "otlp", out.Exporter)
	assert.Equal(t, "collector:4317", out.OTLPEndpoint)
	assert.InDelta(t, 0.5, out.SampleRate, 0.001)
}

func TestTracingConfigFrom_DefaultsFilePath(t *testing.T) {
	out := tracingConfigFrom(config.TracingConfig{Exporter: "file"})
	assert.NotEmpty(t, out.FilePath, "empty file_path should fall back to the default location")
}

func TestLoadFile_ReadsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.dart")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}\n"), 0600))

	content, err := loadFile(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\n", content)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := loadFile(nil, filepath.Join(t.TempDir(), "nope.dart"))
	assert.Error(t, err)
}

func TestLoadFile_DirectoryRejected(t *testing.T) {
	_, err := loadFile(nil, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestThemesMarkdown_ListsBuiltinPresets(t *testing.T) {
	md := themesMarkdown()

	for _, name := range []string{"default", "catppuccin-mocha", "dracula", "nord", "high-contrast"} {
		assert.Contains(t, md, name)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeTime(tt.t, now))
		})
	}
}

func TestOpenCountLabel(t *testing.T) {
	assert.Equal(t, "1 open", openCountLabel(1))
	assert.Equal(t, "7 opens", openCountLabel(7))
}
