// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme. Presets are pure data:
// a name mapped to a full color table, nothing more.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the glint color scheme, matching the dark values of
// the built-in AdaptiveColor defaults.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default glint theme",
	Colors: map[ColorToken]string{
		TokenSyntaxPlain:    "#CDD6F4",
		TokenSyntaxType:     "#F9E2AF",
		TokenSyntaxComment:  "#6C7086",
		TokenSyntaxString:   "#A6E3A1",
		TokenSyntaxNumber:   "#FAB387",
		TokenSyntaxKeyword:  "#CBA6F7",
		TokenSyntaxPunct:    "#89B4FA",
		TokenSyntaxConstant: "#F38BA8",

		TokenTextPrimary: "#CCCCCC",
		TokenTextMuted:   "#696969",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenLineNumber:     "#585B70",
		TokenScrollbarThumb: "#6C7086",
		TokenScrollbarTrack: "#313244",

		TokenStatusBarFg: "#CDD6F4",
		TokenStatusBarBg: "#313244",

		TokenCopyButtonFg: "#1E1E2E",
		TokenCopyButtonBg: "#89B4FA",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenSyntaxPlain:    "#CDD6F4", // text
		TokenSyntaxType:     "#F9E2AF", // yellow
		TokenSyntaxComment:  "#6C7086", // overlay0
		TokenSyntaxString:   "#A6E3A1", // green
		TokenSyntaxNumber:   "#FAB387", // peach
		TokenSyntaxKeyword:  "#CBA6F7", // mauve
		TokenSyntaxPunct:    "#89B4FA", // blue
		TokenSyntaxConstant: "#F38BA8", // red

		TokenTextPrimary: "#CDD6F4", // text
		TokenTextMuted:   "#6C7086", // overlay0

		TokenBorderDefault: "#6C7086", // overlay0
		TokenBorderFocus:   "#CDD6F4", // text

		TokenLineNumber:     "#585B70", // surface2
		TokenScrollbarThumb: "#6C7086", // overlay0
		TokenScrollbarTrack: "#313244", // surface0

		TokenStatusBarFg: "#CDD6F4", // text
		TokenStatusBarBg: "#313244", // surface0

		TokenCopyButtonFg: "#1E1E2E", // base
		TokenCopyButtonBg: "#89B4FA", // blue

		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - light counterpart to Mocha",
	Colors: map[ColorToken]string{
		TokenSyntaxPlain:    "#4C4F69", // text
		TokenSyntaxType:     "#DF8E1D", // yellow
		TokenSyntaxComment:  "#9CA0B0", // overlay0
		TokenSyntaxString:   "#40A02B", // green
		TokenSyntaxNumber:   "#FE640B", // peach
		TokenSyntaxKeyword:  "#8839EF", // mauve
		TokenSyntaxPunct:    "#1E66F5", // blue
		TokenSyntaxConstant: "#D20F39", // red

		TokenTextPrimary: "#4C4F69", // text
		TokenTextMuted:   "#9CA0B0", // overlay0

		TokenBorderDefault: "#9CA0B0", // overlay0
		TokenBorderFocus:   "#4C4F69", // text

		TokenLineNumber:     "#ACB0BE", // surface2
		TokenScrollbarThumb: "#8C8FA1", // overlay1
		TokenScrollbarTrack: "#DCE0E8", // crust

		TokenStatusBarFg: "#4C4F69", // text
		TokenStatusBarBg: "#DCE0E8", // crust

		TokenCopyButtonFg: "#EFF1F5", // base
		TokenCopyButtonBg: "#1E66F5", // blue

		TokenOverlayTitle:  "#4C4F69", // text
		TokenOverlayBorder: "#9CA0B0", // overlay0

		TokenToastSuccess: "#40A02B", // green
		TokenToastError:   "#D20F39", // red
		TokenToastInfo:    "#1E66F5", // blue
	},
}

// DraculaPreset is the Dracula dark theme.
// Colors from: https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vivid colors",
	Colors: map[ColorToken]string{
		TokenSyntaxPlain:    "#F8F8F2", // foreground
		TokenSyntaxType:     "#8BE9FD", // cyan
		TokenSyntaxComment:  "#6272A4", // comment
		TokenSyntaxString:   "#F1FA8C", // yellow
		TokenSyntaxNumber:   "#BD93F9", // purple
		TokenSyntaxKeyword:  "#FF79C6", // pink
		TokenSyntaxPunct:    "#F8F8F2", // foreground
		TokenSyntaxConstant: "#BD93F9", // purple

		TokenTextPrimary: "#F8F8F2",
		TokenTextMuted:   "#6272A4",

		TokenBorderDefault: "#6272A4",
		TokenBorderFocus:   "#F8F8F2",

		TokenLineNumber:     "#6272A4",
		TokenScrollbarThumb: "#44475A",
		TokenScrollbarTrack: "#282A36",

		TokenStatusBarFg: "#F8F8F2",
		TokenStatusBarBg: "#44475A",

		TokenCopyButtonFg: "#282A36",
		TokenCopyButtonBg: "#BD93F9",

		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#6272A4",

		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
	},
}

// NordPreset is the Nord arctic theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, bluish theme",
	Colors: map[ColorToken]string{
		TokenSyntaxPlain:    "#D8DEE9", // snow storm
		TokenSyntaxType:     "#8FBCBB", // frost
		TokenSyntaxComment:  "#616E88", // comment (brightened nord3)
		TokenSyntaxString:   "#A3BE8C", // green
		TokenSyntaxNumber:   "#B48EAD", // purple
		TokenSyntaxKeyword:  "#81A1C1", // frost blue
		TokenSyntaxPunct:    "#ECEFF4", // snow storm bright
		TokenSyntaxConstant: "#D08770", // orange

		TokenTextPrimary: "#D8DEE9",
		TokenTextMuted:   "#616E88",

		TokenBorderDefault: "#4C566A",
		TokenBorderFocus:   "#ECEFF4",

		TokenLineNumber:     "#4C566A",
		TokenScrollbarThumb: "#4C566A",
		TokenScrollbarTrack: "#2E3440",

		TokenStatusBarFg: "#D8DEE9",
		TokenStatusBarBg: "#3B4252",

		TokenCopyButtonFg: "#2E3440",
		TokenCopyButtonBg: "#88C0D0",

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",

		TokenToastSuccess: "#A3BE8C",
		TokenToastError:   "#BF616A",
		TokenToastInfo:    "#88C0D0",
	},
}

// HighContrastPreset maximizes legibility for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast theme for accessibility",
	Colors: map[ColorToken]string{
		TokenSyntaxPlain:    "#FFFFFF",
		TokenSyntaxType:     "#FF00FF",
		TokenSyntaxComment:  "#808080",
		TokenSyntaxString:   "#00FF00",
		TokenSyntaxNumber:   "#00FFFF",
		TokenSyntaxKeyword:  "#FFFF00",
		TokenSyntaxPunct:    "#FFFFFF",
		TokenSyntaxConstant: "#FFA500",

		TokenTextPrimary: "#FFFFFF",
		TokenTextMuted:   "#AAAAAA",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenLineNumber:     "#AAAAAA",
		TokenScrollbarThumb: "#FFFFFF",
		TokenScrollbarTrack: "#000000",

		TokenStatusBarFg: "#000000",
		TokenStatusBarBg: "#FFFFFF",

		TokenCopyButtonFg: "#000000",
		TokenCopyButtonBg: "#FFFF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
	},
}
