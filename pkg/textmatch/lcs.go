package textmatch

import (
	"unicode/utf8"

	"github.com/cubicdaiya/gonp"
)

// LCS returns one longest common subsequence of a and b, compared rune by rune.
func LCS(a, b string) string {
	if a == "" || b == "" {
		return ""
	}
	diff := gonp.New([]rune(a), []rune(b))
	diff.Compose()
	return string(diff.Lcs())
}

// LCSLength returns the rune length of LCS(a, b).
func LCSLength(a, b string) int {
	return utf8.RuneCountInString(LCS(a, b))
}
