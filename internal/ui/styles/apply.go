// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import the UI components,
// but they can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after
// ApplyTheme updates colors. Use this to rebuild styles in packages
// that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme resolves the layered theme configuration once:
// 1. Brightness-aware built-in defaults (mode forced or detected)
// 2. Named preset, if any
// 3. Individual per-token overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	switch cfg.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "":
		// Pin the detected value so later renders don't re-query the
		// terminal while Bubble Tea owns the input stream.
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	default:
		return fmt.Errorf("unknown theme mode: %s (use \"light\" or \"dark\")", cfg.Mode)
	}

	colors := map[ColorToken]string{}

	if cfg.Preset != "" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both modes: an explicit preset or override wins
	// over brightness adaptation.
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	// Syntax slots
	if c, ok := colors[TokenSyntaxPlain]; ok {
		SyntaxPlainColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxType]; ok {
		SyntaxTypeColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxComment]; ok {
		SyntaxCommentColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxString]; ok {
		SyntaxStringColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxNumber]; ok {
		SyntaxNumberColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxKeyword]; ok {
		SyntaxKeywordColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxPunct]; ok {
		SyntaxPunctColor = makeColor(c)
	}
	if c, ok := colors[TokenSyntaxConstant]; ok {
		SyntaxConstantColor = makeColor(c)
	}

	// Text
	if c, ok := colors[TokenTextPrimary]; ok {
		TextPrimaryColor = makeColor(c)
	}
	if c, ok := colors[TokenTextMuted]; ok {
		TextMutedColor = makeColor(c)
	}

	// Borders
	if c, ok := colors[TokenBorderDefault]; ok {
		BorderDefaultColor = makeColor(c)
	}
	if c, ok := colors[TokenBorderFocus]; ok {
		BorderFocusColor = makeColor(c)
	}

	// Gutter and scrolling
	if c, ok := colors[TokenLineNumber]; ok {
		LineNumberColor = makeColor(c)
	}
	if c, ok := colors[TokenScrollbarThumb]; ok {
		ScrollbarThumbColor = makeColor(c)
	}
	if c, ok := colors[TokenScrollbarTrack]; ok {
		ScrollbarTrackColor = makeColor(c)
	}

	// Status bar
	if c, ok := colors[TokenStatusBarFg]; ok {
		StatusBarFgColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusBarBg]; ok {
		StatusBarBgColor = makeColor(c)
	}

	// Copy button
	if c, ok := colors[TokenCopyButtonFg]; ok {
		CopyButtonFgColor = makeColor(c)
	}
	if c, ok := colors[TokenCopyButtonBg]; ok {
		CopyButtonBgColor = makeColor(c)
	}

	// Overlays
	if c, ok := colors[TokenOverlayTitle]; ok {
		OverlayTitleColor = makeColor(c)
	}
	if c, ok := colors[TokenOverlayBorder]; ok {
		OverlayBorderColor = makeColor(c)
	}

	// Toasts
	if c, ok := colors[TokenToastSuccess]; ok {
		ToastBorderSuccessColor = makeColor(c)
	}
	if c, ok := colors[TokenToastError]; ok {
		ToastBorderErrorColor = makeColor(c)
	}
	if c, ok := colors[TokenToastInfo]; ok {
		ToastBorderInfoColor = makeColor(c)
	}
}

func isValidToken(token ColorToken) bool {
	for _, t := range AllTokens() {
		if t == token {
			return true
		}
	}
	return false
}

// isValidHexColor accepts #RGB and #RRGGBB.
func isValidHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		valid := (c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'f') ||
			(c >= 'A' && c <= 'F')
		if !valid {
			return false
		}
	}
	return true
}
