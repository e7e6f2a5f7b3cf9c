package syntax

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize partitions src into an ordered stream of classified tokens.
// It is total: any input, including empty strings, arbitrary Unicode,
// and syntactically invalid Dart, produces a token stream with no gaps
// and no overlaps. Unterminated strings and comments consume the rest
// of the input instead of failing.
//
// Recognizers are tried in fixed precedence order at each position:
// whitespace, block comment, line comment, string literal, number,
// identifier, punctuation, single-rune fallback. Every recognizer
// consumes at least one byte, so a single pass terminates in time
// linear in len(src).
func Tokenize(src string) []Token {
	if src == "" {
		return nil
	}

	s := &scanner{src: src}
	var tokens []Token
	for s.pos < len(s.src) {
		start := s.pos
		cat := s.next()
		text := src[start:s.pos]
		if cat == CatPlain && len(tokens) > 0 && tokens[len(tokens)-1].Category == CatPlain {
			// Merge adjacent plain segments (whitespace runs, plain
			// identifiers, fallback runes) into one token.
			tokens[len(tokens)-1].Text += text
			continue
		}
		tokens = append(tokens, Token{Category: cat, Text: text})
	}
	return tokens
}

// scanner walks the input left to right. pos is a byte offset.
type scanner struct {
	src string
	pos int
}

// next consumes one token's worth of input and returns its category.
func (s *scanner) next() Category {
	c := s.src[s.pos]

	switch {
	case isSpace(c):
		s.whitespace()
		return CatPlain

	case c == '/' && s.peek(1) == '*':
		s.blockComment()
		return CatComment

	case c == '/' && s.peek(1) == '/':
		s.lineComment()
		return CatComment

	case c == '\'' || c == '"':
		s.stringLit(false)
		return CatString

	case c == 'r' && (s.peek(1) == '\'' || s.peek(1) == '"'):
		s.pos++ // raw marker
		s.stringLit(true)
		return CatString

	case isDigit(c):
		s.number()
		return CatNumber

	case isIdentStart(c):
		return classify(s.identifier())

	case c < utf8.RuneSelf:
		// Unicode identifier starts are handled below; every other
		// ASCII byte at this point is an operator or delimiter.
		s.pos++
		return CatPunct

	default:
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsLetter(r) {
			return classify(s.identifier())
		}
		s.pos += size
		return CatPlain
	}
}

// peek returns the byte at offset n from the cursor, or 0 past the end.
func (s *scanner) peek(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) whitespace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// blockComment consumes a /* ... */ comment. Dart block comments nest,
// so the scan tracks depth. Unterminated comments consume to the end
// of the input.
func (s *scanner) blockComment() {
	s.pos += 2
	depth := 1
	for s.pos < len(s.src) && depth > 0 {
		switch {
		case s.src[s.pos] == '/' && s.peek(1) == '*':
			depth++
			s.pos += 2
		case s.src[s.pos] == '*' && s.peek(1) == '/':
			depth--
			s.pos += 2
		default:
			s.pos++
		}
	}
}

// lineComment consumes // up to, but not including, the next newline.
func (s *scanner) lineComment() {
	s.pos += 2
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// stringLit consumes a string literal starting at the opening quote.
// Handles single-line ('...', "..."), multi-line ('''...''', """...""")
// and, when raw is true, variants where backslash has no meaning.
// The closing delimiter must match the opening one; an escaped quote
// does not terminate a non-raw literal. Unterminated literals consume
// to the end of the input.
func (s *scanner) stringLit(raw bool) {
	quote := s.src[s.pos]

	if s.peek(1) == quote && s.peek(2) == quote {
		s.pos += 3
		s.stringBody(quote, 3, raw)
		return
	}

	s.pos++
	s.stringBody(quote, 1, raw)
}

// stringBody scans until count consecutive quote bytes or end of input.
func (s *scanner) stringBody(quote byte, count int, raw bool) {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		if c == '\\' && !raw {
			// Escape: the next byte, whatever it is, cannot close the
			// literal. A lone backslash at end of input consumes only
			// itself, so the cursor never passes the end.
			if s.pos+2 > len(s.src) {
				s.pos = len(s.src)
			} else {
				s.pos += 2
			}
			continue
		}

		if c == quote {
			if count == 1 {
				s.pos++
				return
			}
			if s.peek(1) == quote && s.peek(2) == quote {
				s.pos += 3
				return
			}
		}

		s.pos++
	}
}

// number consumes the longest numeric literal at the cursor: a hex
// literal, or decimal digits with an optional fraction and exponent.
// The dot and exponent marker are only consumed when digits follow,
// so "1.toString" lexes as number, punct, identifier.
func (s *scanner) number() {
	if s.src[s.pos] == '0' && (s.peek(1) == 'x' || s.peek(1) == 'X') && isHexDigit(s.peek(2)) {
		s.pos += 2
		for s.pos < len(s.src) && isHexDigit(s.src[s.pos]) {
			s.pos++
		}
		return
	}

	s.digits()

	if s.pos < len(s.src) && s.src[s.pos] == '.' && isDigit(s.peek(1)) {
		s.pos++
		s.digits()
	}

	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		after := 1
		if s.peek(1) == '+' || s.peek(1) == '-' {
			after = 2
		}
		if isDigit(s.peek(after)) {
			s.pos += after
			s.digits()
		}
	}
}

func (s *scanner) digits() {
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
}

// identifier consumes an identifier and returns its text.
func (s *scanner) identifier() string {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) {
			s.pos++
			continue
		}
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				s.pos += size
				continue
			}
		}
		break
	}
	return s.src[start:s.pos]
}

// classify assigns a category to a complete identifier. The decision
// order is fixed: keyword, then SCREAMING_CAPS constant, then
// upper-case-initial type name, then plain. Membership in the keyword
// table is exact, so "forE" stays plain while "for" is a keyword.
func classify(word string) Category {
	if IsKeyword(word) {
		return CatKeyword
	}
	if isScreamingCaps(word) {
		return CatConstant
	}
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) {
		return CatType
	}
	return CatPlain
}

// isScreamingCaps reports whether word follows the compile-time
// constant naming convention: upper-case letters, digits, and
// underscores only, with at least one letter.
func isScreamingCaps(word string) bool {
	hasLetter := false
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return hasLetter
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
