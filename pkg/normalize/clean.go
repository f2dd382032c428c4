package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean lower-cases token and removes every character that is not an ASCII
// word character (a-z, 0-9, underscore).
func Clean(token string) string {
	return strings.Map(keepWordChar, strings.ToLower(token))
}

// CleanFolded is Clean with accents stripped first, so "Café" keeps its e.
func CleanFolded(token string) string {
	// A chain keeps buffers, so each call gets its own.
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(stripAccents, token)
	return Clean(folded)
}

func keepWordChar(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		return r
	}
	return -1
}
