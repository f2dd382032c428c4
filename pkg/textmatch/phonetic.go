// Package textmatch wraps the phonetic, stemming and subsequence primitives the
// normalizer is built on. Every function is pure and safe for concurrent use.
package textmatch

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// PhoneticCode returns the Soundex code of word. Non-letters are dropped
// before encoding; a word without letters has an empty code.
func PhoneticCode(word string) string {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, word)
	if letters == "" {
		return ""
	}
	return matchr.Soundex(letters)
}
