package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPresets_CoverAllTokens verifies that every built-in preset
// defines every color token, so switching presets never leaves a
// stale color from the previous theme.
func TestPresets_CoverAllTokens(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			for _, token := range AllTokens() {
				_, ok := preset.Colors[token]
				require.True(t, ok, "preset %s missing token %s", name, token)
			}
			require.Len(t, preset.Colors, len(AllTokens()),
				"preset %s defines unknown tokens", name)
		})
	}
}

func TestPresets_ValidHexColors(t *testing.T) {
	for name, preset := range Presets {
		for token, color := range preset.Colors {
			require.True(t, isValidHexColor(color),
				"preset %s token %s has invalid color %q", name, token, color)
		}
	}
}

func TestPresets_NamesMatchKeys(t *testing.T) {
	for key, preset := range Presets {
		require.Equal(t, key, preset.Name)
	}
}

func TestPresets_ApplyEachWithoutError(t *testing.T) {
	for name := range Presets {
		require.NoError(t, ApplyTheme(ThemeConfig{Preset: name, Mode: "dark"}))
	}
	// Restore the default theme for other tests.
	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "default", Mode: "dark"}))
}
