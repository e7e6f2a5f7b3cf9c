// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// Color variables. AdaptiveColor carries the brightness-aware built-in
// default: the Light value is used on light terminal backgrounds and
// the Dark value on dark ones. ApplyTheme overwrites these when a
// preset or per-token override is configured.
var (
	// Syntax highlighting colors (Catppuccin Latte for light, Mocha for dark)
	SyntaxPlainColor    = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"}
	SyntaxTypeColor     = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // yellow
	SyntaxCommentColor  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // overlay0
	SyntaxStringColor   = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	SyntaxNumberColor   = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	SyntaxKeywordColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	SyntaxPunctColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	SyntaxConstantColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red

	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#FFFFFF"}

	// Gutter and scrolling
	LineNumberColor     = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#585B70"}
	ScrollbarThumbColor = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#6C7086"}
	ScrollbarTrackColor = lipgloss.AdaptiveColor{Light: "#DCE0E8", Dark: "#313244"}

	// Status bar
	StatusBarFgColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"}
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#DCE0E8", Dark: "#313244"}

	// Copy button
	CopyButtonFgColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
	CopyButtonBgColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}

	// Overlays
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#8C8C8C"}

	// Toast notifications
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
)

// Style variables rebuilt by rebuildStyles after theme changes.
var (
	LineNumberStyle = lipgloss.NewStyle().Foreground(LineNumberColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarFgColor).
			Background(StatusBarBgColor).
			Padding(0, 1)

	StatusBarMutedStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor).
				Background(StatusBarBgColor)

	CopyButtonStyle = lipgloss.NewStyle().
			Foreground(CopyButtonFgColor).
			Background(CopyButtonBgColor).
			Padding(0, 1).
			Bold(true)

	HelpTextStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// rebuildStyles recreates the Style variables from the current color
// variables, then notifies registered rebuilders in other packages.
func rebuildStyles() {
	LineNumberStyle = lipgloss.NewStyle().Foreground(LineNumberColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(StatusBarFgColor).
		Background(StatusBarBgColor).
		Padding(0, 1)

	StatusBarMutedStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Background(StatusBarBgColor)

	CopyButtonStyle = lipgloss.NewStyle().
		Foreground(CopyButtonFgColor).
		Background(CopyButtonBgColor).
		Padding(0, 1).
		Bold(true)

	HelpTextStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	rebuildSyntaxStyles()

	for _, fn := range styleRebuilders {
		fn()
	}
}
