package tree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeAnimal trims surrounding whitespace and lowercases the name, so
// the game never asks "Is it An octopus?".
func NormalizeAnimal(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeQuestion trims the text, capitalizes the first rune, and
// guarantees exactly one trailing question mark. "does it have stripes"
// becomes "Does it have stripes?"; "Does it fly?" is unchanged.
func NormalizeQuestion(s string) string {
	s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "?"))
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:] + "?"
}
