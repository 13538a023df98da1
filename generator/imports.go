package generator

import (
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/predicate/is"
	"github.com/m4gshm/gollections/slice"
)

func badSymbol(ch rune) bool {
	return !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' ||
		ch == '_' || ch >= utf8.RuneSelf && (unicode.IsLetter(ch) || unicode.IsDigit(ch)))
}

// packagePathToName makes an identifier from the last import path element, go-json becomes gojson.
func packagePathToName(pathElement string) string {
	name := slice.Filter([]rune(pathElement), is.Not(badSymbol))
	for len(name) > 0 && unicode.IsDigit(name[0]) {
		name = name[1:]
	}
	return string(name)
}
