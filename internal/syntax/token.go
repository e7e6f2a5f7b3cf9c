// Package syntax tokenizes Dart source text for highlighting.
package syntax

// Category identifies the lexical class of a token. The renderer maps
// each category to exactly one theme style slot, so the set is closed:
// adding or removing a value changes the contract with the renderer.
type Category int

const (
	CatPlain Category = iota // whitespace, plain identifiers, anything unrecognized
	CatType                  // identifiers starting with an upper-case letter
	CatComment
	CatString
	CatNumber
	CatKeyword
	CatPunct    // operator and delimiter characters
	CatConstant // SCREAMING_CAPS identifiers
)

// String returns the category name for debugging and logs.
func (c Category) String() string {
	switch c {
	case CatPlain:
		return "plain"
	case CatType:
		return "type"
	case CatComment:
		return "comment"
	case CatString:
		return "string"
	case CatNumber:
		return "number"
	case CatKeyword:
		return "keyword"
	case CatPunct:
		return "punct"
	case CatConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Categories returns all categories in declaration order.
// Used by the styles package to validate theme coverage.
func Categories() []Category {
	return []Category{
		CatPlain, CatType, CatComment, CatString,
		CatNumber, CatKeyword, CatPunct, CatConstant,
	}
}

// Token is one classified segment of source text. Text is the exact
// source substring including delimiters, so concatenating the Text of
// every token in a stream reproduces the input byte for byte.
type Token struct {
	Category Category
	Text     string
}

// Source reassembles the original input from a token stream.
// The shell uses this for copy-to-clipboard instead of keeping a
// reference to the source buffer.
func Source(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range tokens {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
