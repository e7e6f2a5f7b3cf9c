// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Syntax highlighting: the eight category slots consumed by the
	// code view. One slot per syntax.Category, no more, no less.
	TokenSyntaxPlain    ColorToken = "syntax.plain"
	TokenSyntaxType     ColorToken = "syntax.type"
	TokenSyntaxComment  ColorToken = "syntax.comment"
	TokenSyntaxString   ColorToken = "syntax.string"
	TokenSyntaxNumber   ColorToken = "syntax.number"
	TokenSyntaxKeyword  ColorToken = "syntax.keyword" //nolint:gosec // UI color token, not credentials
	TokenSyntaxPunct    ColorToken = "syntax.punct"
	TokenSyntaxConstant ColorToken = "syntax.constant"

	// Text hierarchy
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Gutter and scrolling
	TokenLineNumber     ColorToken = "gutter.linenumber"
	TokenScrollbarThumb ColorToken = "scrollbar.thumb"
	TokenScrollbarTrack ColorToken = "scrollbar.track"

	// Status bar
	TokenStatusBarFg ColorToken = "statusbar.fg"
	TokenStatusBarBg ColorToken = "statusbar.bg"

	// Copy button
	TokenCopyButtonFg ColorToken = "button.copy.fg"
	TokenCopyButtonBg ColorToken = "button.copy.bg"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenSyntaxPlain,
		TokenSyntaxType,
		TokenSyntaxComment,
		TokenSyntaxString,
		TokenSyntaxNumber,
		TokenSyntaxKeyword,
		TokenSyntaxPunct,
		TokenSyntaxConstant,
		TokenTextPrimary,
		TokenTextMuted,
		TokenBorderDefault,
		TokenBorderFocus,
		TokenLineNumber,
		TokenScrollbarThumb,
		TokenScrollbarTrack,
		TokenStatusBarFg,
		TokenStatusBarBg,
		TokenCopyButtonFg,
		TokenCopyButtonBg,
		TokenOverlayTitle,
		TokenOverlayBorder,
		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
	}
}
