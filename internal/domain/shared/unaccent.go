package shared

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Unaccent strips diacritics from a string. It backs the unaccented mirror
// columns used for accent-insensitive search; when the transform fails the
// input is returned unchanged.
func Unaccent(s string) string {
	out, _, err := transform.String(unaccenter, s)
	if err != nil {
		return s
	}
	return out
}
