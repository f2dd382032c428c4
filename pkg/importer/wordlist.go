package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/hazyhaar/unemph/pkg/doubles"
)

// wordsPerLine is how many words each data.txt line holds.
const wordsPerLine = 16

// SelectDoubleLetterWords reads one word per line and keeps the lower-cased
// words made only of a-z that contain a doubled (or tripled) letter and no
// run of four or more. The result is deduplicated and sorted.
func SelectDoubleLetterWords(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if hasLegitDouble(word) {
			seen[word] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	slices.Sort(words)
	return words, nil
}

// hasLegitDouble reports whether word is all a-z with a run of 2 or 3
// identical letters and none longer.
func hasLegitDouble(word string) bool {
	if word == "" {
		return false
	}
	found := false
	run := 1
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		if i > 0 && c == word[i-1] {
			run++
		} else {
			run = 1
		}
		switch {
		case run >= 4:
			return false
		case run >= 2:
			found = true
		}
	}
	return found
}

// selectFromFiles merges SelectDoubleLetterWords over several files.
func selectFromFiles(paths []string) ([]string, error) {
	var all []string
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		words, err := SelectDoubleLetterWords(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, words...)
	}
	slices.Sort(all)
	return slices.Compact(all), nil
}

// wordLines groups words into delimiter-joined data.txt lines.
func wordLines(words []string) []string {
	var lines []string
	for chunk := range slices.Chunk(words, wordsPerLine) {
		lines = append(lines, strings.Join(chunk, doubles.DefaultDelimiter))
	}
	return lines
}

// writeWordList writes lines to path, one per line.
func writeWordList(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create word list: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write word list: %w", err)
	}
	return f.Close()
}
