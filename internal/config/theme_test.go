package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/glint/internal/ui/styles"
)

// applyTheme bridges config.ThemeConfig to the styles package the same
// way the CLI does.
func applyTheme(t *testing.T, theme ThemeConfig) error {
	t.Helper()
	return styles.ApplyTheme(styles.ThemeConfig{
		Preset: theme.Preset,
		Mode:   theme.Mode,
		Colors: theme.FlattenedColors(),
	})
}

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, styles.ApplyTheme(styles.ThemeConfig{Preset: "default", Mode: "dark"}))
	})
}

// TestThemeConfig_WithPreset tests loading a config file with a preset.
func TestThemeConfig_WithPreset(t *testing.T) {
	resetTheme(t)
	configYAML := `
theme:
  preset: catppuccin-mocha
  mode: dark
`
	cfg := loadConfigFromYAML(t, configYAML)

	require.Equal(t, "catppuccin-mocha", cfg.Theme.Preset)

	require.NoError(t, applyTheme(t, cfg.Theme))

	// Catppuccin Mocha uses #CBA6F7 (mauve) for keywords
	require.Equal(t, "#CBA6F7", styles.SyntaxKeywordColor.Dark)
}

// TestThemeConfig_WithColorOverridesFromYAML tests that dotted color tokens
// in YAML config files are correctly parsed when using custom viper key delimiter.
func TestThemeConfig_WithColorOverridesFromYAML(t *testing.T) {
	resetTheme(t)
	configYAML := `
theme:
  mode: dark
  colors:
    syntax.keyword: "#FF0000"
    syntax.string: "#00FF00"
    text.primary: "#0000FF"
`
	cfg := loadConfigFromYAML(t, configYAML)

	flat := cfg.Theme.FlattenedColors()
	require.Equal(t, "#FF0000", flat["syntax.keyword"])
	require.Equal(t, "#00FF00", flat["syntax.string"])
	require.Equal(t, "#0000FF", flat["text.primary"])

	require.NoError(t, applyTheme(t, cfg.Theme))

	require.Equal(t, "#FF0000", styles.SyntaxKeywordColor.Dark)
	require.Equal(t, "#00FF00", styles.SyntaxStringColor.Dark)
	require.Equal(t, "#0000FF", styles.TextPrimaryColor.Dark)
}

// TestThemeConfig_NestedColorOverrides tests nested YAML color structure.
func TestThemeConfig_NestedColorOverrides(t *testing.T) {
	resetTheme(t)
	configYAML := `
theme:
  mode: dark
  colors:
    syntax:
      comment: "#ABCDEF"
`
	cfg := loadConfigFromYAML(t, configYAML)

	require.NoError(t, applyTheme(t, cfg.Theme))
	require.Equal(t, "#ABCDEF", styles.SyntaxCommentColor.Dark)
}

// TestThemeConfig_PresetWithOverrides tests that color overrides take precedence over preset.
func TestThemeConfig_PresetWithOverrides(t *testing.T) {
	resetTheme(t)
	cfg := Config{
		Theme: ThemeConfig{
			Preset: "dracula",
			Mode:   "dark",
			Colors: map[string]any{
				"syntax.keyword": "#123456",
			},
		},
	}

	require.NoError(t, applyTheme(t, cfg.Theme))

	// Override should take precedence
	require.Equal(t, "#123456", styles.SyntaxKeywordColor.Dark)
	// Dracula's string color should still be applied
	require.Equal(t, styles.DraculaPreset.Colors[styles.TokenSyntaxString], styles.SyntaxStringColor.Dark)
}

// TestThemeConfig_InvalidPreset tests that invalid preset returns error.
func TestThemeConfig_InvalidPreset(t *testing.T) {
	configYAML := `
theme:
  preset: nonexistent-theme
`
	cfg := loadConfigFromYAML(t, configYAML)

	err := applyTheme(t, cfg.Theme)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")
}

// TestThemeConfig_InvalidColorToken tests that invalid color token returns error.
func TestThemeConfig_InvalidColorToken(t *testing.T) {
	cfg := Config{
		Theme: ThemeConfig{
			Colors: map[string]any{
				"invalid.token.name": "#FF0000",
			},
		},
	}

	err := applyTheme(t, cfg.Theme)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

// TestThemeConfig_InvalidHexColor tests that invalid hex color returns error.
func TestThemeConfig_InvalidHexColor(t *testing.T) {
	cfg := Config{
		Theme: ThemeConfig{
			Colors: map[string]any{
				"syntax.keyword": "not-a-color",
			},
		},
	}

	err := applyTheme(t, cfg.Theme)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex color")
}

// TestThemeConfig_EmptyConfig tests that empty theme config applies defaults.
func TestThemeConfig_EmptyConfig(t *testing.T) {
	resetTheme(t)
	configYAML := `
ui:
  tab_width: 4
`
	cfg := loadConfigFromYAML(t, configYAML)

	require.Empty(t, cfg.Theme.Preset)
	require.Nil(t, cfg.Theme.Colors)

	cfg.Theme.Mode = "dark"
	require.NoError(t, applyTheme(t, cfg.Theme))

	// Default keyword color should be applied
	require.Equal(t, styles.DefaultPreset.Colors[styles.TokenSyntaxKeyword], styles.SyntaxKeywordColor.Dark)
}

// TestThemeConfig_AllPresets tests that all built-in presets load correctly.
func TestThemeConfig_AllPresets(t *testing.T) {
	resetTheme(t)
	presets := []string{
		"default",
		"catppuccin-mocha",
		"catppuccin-latte",
		"dracula",
		"nord",
		"high-contrast",
	}

	for _, preset := range presets {
		t.Run(preset, func(t *testing.T) {
			configYAML := `
theme:
  preset: ` + preset + `
  mode: dark
`
			cfg := loadConfigFromYAML(t, configYAML)

			err := applyTheme(t, cfg.Theme)
			require.NoError(t, err, "preset %s should apply without error", preset)
		})
	}
}
