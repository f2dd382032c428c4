package normalize

import "unicode/utf8"

// minRun is the shortest repetition treated as emphasis. Two identical
// characters are ordinary spelling ("hello") and never reported.
const minRun = 3

// Run is a maximal repetition of one character, at least minRun long.
type Run struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}

// Clamp returns the first n characters of the run.
func (r Run) Clamp(n int) string {
	i := 0
	for pos := range r.Text {
		if i == n {
			return r.Text[:pos]
		}
		i++
	}
	return r.Text
}

// FindRuns scans s left to right and returns its non-overlapping maximal runs
// of three or more identical characters, in order of appearance. Start is a
// byte offset into s.
func FindRuns(s string) []Run {
	var runs []Run
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		j, n := i+size, 1
		for j < len(s) {
			next, nsize := utf8.DecodeRuneInString(s[j:])
			if next != c {
				break
			}
			j += nsize
			n++
		}
		if n >= minRun {
			runs = append(runs, Run{Text: s[i:j], Start: i})
		}
		i = j
	}
	return runs
}
