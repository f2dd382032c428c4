package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/hazyhaar/unemph/pkg/doubles"
)

func TestRegisteredAdapters(t *testing.T) {
	want := []string{"dwyl-words-en", "enable-en", "google-10000-en"}
	var got []string
	for _, a := range All() {
		got = append(got, a.ID())
		if a.DefaultURL() == "" || a.DictID() == "" || a.License() == "" {
			t.Errorf("adapter %s has incomplete metadata", a.ID())
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope) should fail")
	}
}

func TestWordListAdapter_Import(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello\ncat\nCoffee\nbrrrr\nballoon\nhall\n"))
	}))
	defer ts.Close()

	a := &wordListAdapter{
		id: "test-words", dictID: "test-en", description: "test",
		url: ts.URL, license: "CC0", source: "unit test",
	}
	out := t.TempDir()
	if err := a.Import(context.Background(), ts.URL, out); err != nil {
		t.Fatalf("Import: %v", err)
	}

	dictDir := filepath.Join(out, "test-en")
	for _, name := range []string{"data.txt", "data.gob", "manifest.yaml"} {
		if _, err := os.Stat(filepath.Join(dictDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "_download")); !os.IsNotExist(err) {
		t.Error("download dir must be removed")
	}

	d, err := doubles.LoadDictionary(dictDir)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if d.Words() != 4 {
		t.Errorf("words = %d, want 4", d.Words())
	}
	if d.Manifest.SourceURL != ts.URL || d.Manifest.License != "CC0" {
		t.Errorf("manifest = %+v", d.Manifest)
	}
	bucket, _ := d.Lookup("H400")
	if !slices.Equal(bucket, []string{"hall", "hello"}) {
		t.Errorf("Lookup(H400) = %v, want [hall hello]", bucket)
	}
}

func TestWordListAdapter_ImportNoWords(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cat\ndog\n"))
	}))
	defer ts.Close()

	a := &wordListAdapter{id: "x", dictID: "x"}
	if err := a.Import(context.Background(), ts.URL, t.TempDir()); err == nil {
		t.Fatal("expected error for list without double-letter words")
	}
}
