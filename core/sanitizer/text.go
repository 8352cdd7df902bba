package sanitizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode converts the string to Unicode NFC so visually identical
// input compares equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// ToTitle capitalizes the first letter of every word using language-neutral rules.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}
