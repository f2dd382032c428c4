package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hazyhaar/unemph/pkg/importer"
)

func TestWriteFreshness(t *testing.T) {
	var out bytes.Buffer
	writeFreshness(&out, []importer.Freshness{
		{AdapterID: "dwyl-words-en", DictID: "words-en", Status: 200, Installed: true},
		{AdapterID: "enable-en", DictID: "enable-en", Status: 200, Installed: true, Stale: true},
		{AdapterID: "google-10000-en", DictID: "common-en", Status: 200},
		{AdapterID: "mirror", DictID: "words-en", Err: errors.New("refused")},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{"up to date", "stale", "not installed", "unreachable"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
}
