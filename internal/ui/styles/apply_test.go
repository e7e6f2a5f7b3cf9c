package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Preset(t *testing.T) {
	Presets["test"] = Preset{
		Name:        "test",
		Description: "Test preset",
		Colors: map[ColorToken]string{
			TokenSyntaxKeyword: "#FF0000",
		},
	}
	defer delete(Presets, "test")

	err := ApplyTheme(ThemeConfig{Preset: "test", Mode: "dark"})
	require.NoError(t, err)
	require.Equal(t, "#FF0000", SyntaxKeywordColor.Dark)
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Mode: "dark",
		Colors: map[string]string{
			"syntax.string": "#00FF00",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", SyntaxStringColor.Dark)
}

func TestApplyTheme_OverrideWinsOverPreset(t *testing.T) {
	Presets["test2"] = Preset{
		Name:        "test2",
		Description: "Test preset 2",
		Colors: map[ColorToken]string{
			TokenSyntaxKeyword: "#FF0000",
			TokenSyntaxComment: "#0000FF",
		},
	}
	defer delete(Presets, "test2")

	err := ApplyTheme(ThemeConfig{
		Preset: "test2",
		Mode:   "dark",
		Colors: map[string]string{
			"syntax.keyword": "#00FF00",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", SyntaxKeywordColor.Dark) // Overridden
	require.Equal(t, "#0000FF", SyntaxCommentColor.Dark) // From preset
}

func TestApplyTheme_InvalidPreset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "nonexistent", Mode: "dark"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")
}

func TestApplyTheme_InvalidToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Mode:   "dark",
		Colors: map[string]string{"syntax.bogus": "#112233"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestApplyTheme_InvalidHexColor(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Mode:   "dark",
		Colors: map[string]string{"syntax.keyword": "red"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex color")
}

func TestApplyTheme_InvalidMode(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Mode: "sepia"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme mode")
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FFFFFF", true},
		{"#fff", true},
		{"#AbC123", true},
		{"FFFFFF", false},
		{"#FFFF", false},
		{"#GGGGGG", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.valid, isValidHexColor(tt.input), tt.input)
	}
}
