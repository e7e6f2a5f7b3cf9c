package syntax

// keywords is the Dart reserved-word and built-in identifier set.
// Taken from the Dart language specification's lexical grammar;
// membership is tested on the whole identifier, never on a prefix.
var keywords = map[string]struct{}{
	"abstract":   {},
	"as":         {},
	"assert":     {},
	"async":      {},
	"await":      {},
	"base":       {},
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"covariant":  {},
	"default":    {},
	"deferred":   {},
	"do":         {},
	"dynamic":    {},
	"else":       {},
	"enum":       {},
	"export":     {},
	"extends":    {},
	"extension":  {},
	"external":   {},
	"factory":    {},
	"false":      {},
	"final":      {},
	"finally":    {},
	"for":        {},
	"Function":   {},
	"get":        {},
	"hide":       {},
	"if":         {},
	"implements": {},
	"import":     {},
	"in":         {},
	"interface":  {},
	"is":         {},
	"late":       {},
	"library":    {},
	"mixin":      {},
	"new":        {},
	"null":       {},
	"of":         {},
	"on":         {},
	"operator":   {},
	"part":       {},
	"required":   {},
	"rethrow":    {},
	"return":     {},
	"sealed":     {},
	"set":        {},
	"show":       {},
	"static":     {},
	"super":      {},
	"switch":     {},
	"sync":       {},
	"this":       {},
	"throw":      {},
	"true":       {},
	"try":        {},
	"typedef":    {},
	"var":        {},
	"void":       {},
	"when":       {},
	"while":      {},
	"with":       {},
	"yield":      {},
}

// IsKeyword reports whether word is exactly a Dart keyword.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
