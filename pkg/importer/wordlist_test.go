package importer

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestHasLegitDouble(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"hello", true},
		{"coffee", true},
		{"bookkeeper", true},
		{"cat", false},
		{"", false},
		{"aaa", true},
		{"brrrr", false},
		{"zzzz", false},
		{"don't", false},
		{"Hello", false}, // callers lower-case first
		{"naïve", false},
		{"co-op", false},
	}
	for _, tt := range tests {
		if got := hasLegitDouble(tt.word); got != tt.want {
			t.Errorf("hasLegitDouble(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestSelectDoubleLetterWords(t *testing.T) {
	input := "Hello\r\ncat\ncoffee\nhello\n  balloon  \nbrrrr\n\nwe'll\n"
	got, err := SelectDoubleLetterWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("SelectDoubleLetterWords: %v", err)
	}
	want := []string{"balloon", "coffee", "hello"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectFromFiles_Merges(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	os.WriteFile(a, []byte("hello\ncoffee\n"), 0o644)
	os.WriteFile(b, []byte("coffee\napple\n"), 0o644)

	got, err := selectFromFiles([]string{a, b})
	if err != nil {
		t.Fatalf("selectFromFiles: %v", err)
	}
	if want := []string{"apple", "coffee", "hello"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWordLines(t *testing.T) {
	words := make([]string, wordsPerLine+3)
	for i := range words {
		words[i] = "ee"
	}
	lines := wordLines(words)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if got := strings.Count(lines[1], ", "); got != 2 {
		t.Errorf("last line holds %d delimiters, want 2: %q", got, lines[1])
	}
	if wordLines(nil) != nil {
		t.Error("no words must give no lines")
	}
}
