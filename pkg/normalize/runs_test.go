package normalize

import (
	"slices"
	"testing"
)

func TestFindRuns(t *testing.T) {
	tests := []struct {
		in   string
		want []Run
	}{
		{"heeeellloooo", []Run{{"eeee", 1}, {"lll", 5}, {"oooo", 8}}},
		{"hello", nil},
		{"", nil},
		{"aaa", []Run{{"aaa", 0}}},
		{"aa", nil},
		{"occcurrrring", []Run{{"ccc", 1}, {"rrrr", 5}}},
		{"aaabaaaa", []Run{{"aaa", 0}, {"aaaa", 4}}},
		{"x___y", []Run{{"___", 1}}},
		{"1000000", []Run{{"000000", 1}}},
		{"xéééy", []Run{{"ééé", 1}}},
	}
	for _, tt := range tests {
		got := FindRuns(tt.in)
		if !slices.Equal(got, tt.want) {
			t.Errorf("FindRuns(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRun_Clamp(t *testing.T) {
	tests := []struct {
		run  Run
		n    int
		want string
	}{
		{Run{Text: "eeee"}, 1, "e"},
		{Run{Text: "eeee"}, 2, "ee"},
		{Run{Text: "eeee"}, 3, "eee"},
		{Run{Text: "eee"}, 3, "eee"},
		{Run{Text: "eee"}, 5, "eee"},
		{Run{Text: "ééé"}, 2, "éé"},
	}
	for _, tt := range tests {
		if got := tt.run.Clamp(tt.n); got != tt.want {
			t.Errorf("%q.Clamp(%d) = %q, want %q", tt.run.Text, tt.n, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "helloworld"},
		{"HEEEELLO", "heeeello"},
		{"snake_case_42", "snake_case_42"},
		{"Café", "caf"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanFolded(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"Crèèème Brûlée!", "creeemebrulee"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		if got := CleanFolded(tt.in); got != tt.want {
			t.Errorf("CleanFolded(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
