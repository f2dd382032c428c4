package textmatch

import "github.com/kljensen/snowball/english"

// Stem reduces an English word to its Porter2 root. Stop words are stemmed
// like any other word.
func Stem(word string) string {
	if word == "" {
		return ""
	}
	return english.Stem(word, true)
}
