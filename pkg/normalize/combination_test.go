package normalize

import (
	"slices"
	"testing"
)

func TestCombinations(t *testing.T) {
	tests := []struct {
		token string
		stem  bool
		want  []string
	}{
		{"occcurrrring", false, []string{"occuring", "occurring", "ocuring", "ocurring"}},
		{"occcurrrring", true, []string{"occur", "ocur"}},
		{"coool", false, []string{"col", "cool"}},
		{"heeeellloooo", false, []string{"heello", "heelloo", "heelo", "heeloo", "hello", "helloo", "heloo"}},
		{"Hello", false, []string{"Hello"}},
		{"Cats!", true, []string{"cat"}},
		{"", false, []string{""}},
	}
	for _, tt := range tests {
		got := Combinations(tt.token, tt.stem)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Combinations(%q, %v) = %v, want %v", tt.token, tt.stem, got, tt.want)
		}
	}
}

func TestCombinations_ContainsTwoLetterForm(t *testing.T) {
	for _, token := range []string{"heeeellloooo", "aaabaaaa", "zzzzxq"} {
		got := Combinations(token, false)
		n := NewNormalizer(nil, Options{})
		unbiased := n.Explain(token, false).Unbiased
		if !slices.Contains(got, unbiased) {
			t.Errorf("Combinations(%q) = %v, missing %q", token, got, unbiased)
		}
	}
}

func TestNormalizer_CombinationsFoldAccents(t *testing.T) {
	n := NewNormalizer(nil, Options{FoldAccents: true})
	got := n.Combinations("Crèèème", false)
	want := []string{"creeme", "creme"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
