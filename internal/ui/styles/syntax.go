package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glint/internal/syntax"
)

// syntaxStyles maps each tokenizer category to its display style.
// This is the stable eight-slot contract between the tokenizer and the
// renderer: every category resolves to exactly one slot.
var syntaxStyles = buildSyntaxStyles()

func buildSyntaxStyles() map[syntax.Category]lipgloss.Style {
	return map[syntax.Category]lipgloss.Style{
		syntax.CatPlain:    lipgloss.NewStyle().Foreground(SyntaxPlainColor),
		syntax.CatType:     lipgloss.NewStyle().Foreground(SyntaxTypeColor),
		syntax.CatComment:  lipgloss.NewStyle().Foreground(SyntaxCommentColor).Italic(true),
		syntax.CatString:   lipgloss.NewStyle().Foreground(SyntaxStringColor),
		syntax.CatNumber:   lipgloss.NewStyle().Foreground(SyntaxNumberColor),
		syntax.CatKeyword:  lipgloss.NewStyle().Foreground(SyntaxKeywordColor).Bold(true),
		syntax.CatPunct:    lipgloss.NewStyle().Foreground(SyntaxPunctColor),
		syntax.CatConstant: lipgloss.NewStyle().Foreground(SyntaxConstantColor),
	}
}

func rebuildSyntaxStyles() {
	syntaxStyles = buildSyntaxStyles()
}

// SyntaxStyle returns the style for a tokenizer category.
func SyntaxStyle(cat syntax.Category) lipgloss.Style {
	if s, ok := syntaxStyles[cat]; ok {
		return s
	}
	return syntaxStyles[syntax.CatPlain]
}
