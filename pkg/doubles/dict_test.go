package doubles

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
	"testing/iotest"

	"github.com/hazyhaar/unemph/pkg/textmatch"
)

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader("hello, hallo\ncool\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Words() != 3 {
		t.Errorf("words = %d, want 3", d.Words())
	}
	if d.Codes() != 2 {
		t.Errorf("codes = %d, want 2", d.Codes())
	}

	got, ok := d.Lookup("H400")
	if !ok {
		t.Fatal("expected bucket H400")
	}
	if want := []string{"hello", "hallo"}; !slices.Equal(got, want) {
		t.Errorf("Lookup(H400) = %v, want %v", got, want)
	}
}

func TestLoad_KeyedByOwnCode(t *testing.T) {
	d := FromLines([]string{"hello, cool, essence, apple, toolbar"})
	for _, word := range []string{"hello", "cool", "essence", "apple", "toolbar"} {
		bucket, ok := d.Lookup(textmatch.PhoneticCode(word))
		if !ok || !slices.Contains(bucket, word) {
			t.Errorf("%q not found under its own code %q", word, textmatch.PhoneticCode(word))
		}
	}
}

func TestLoad_DuplicatesAppended(t *testing.T) {
	d := FromLines([]string{"hello, hello", "hello"})
	got, _ := d.Lookup("H400")
	if want := []string{"hello", "hello", "hello"}; !slices.Equal(got, want) {
		t.Errorf("Lookup(H400) = %v, want %v", got, want)
	}
	if d.Words() != 3 {
		t.Errorf("words = %d, want 3", d.Words())
	}
}

func TestLoad_SkipsEmptyWords(t *testing.T) {
	d, err := Load(strings.NewReader("hello, , cool\n\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Words() != 2 {
		t.Errorf("words = %d, want 2", d.Words())
	}
	if _, ok := d.Lookup(""); ok {
		t.Error("empty words must not create a bucket")
	}
}

func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("boom")
	d, err := Load(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if d != nil {
		t.Error("no partial dictionary on read error")
	}
}

func TestLookup_Unknown(t *testing.T) {
	d := FromLines([]string{"hello"})
	got, ok := d.Lookup("Z999")
	if ok || got != nil {
		t.Errorf("Lookup(Z999) = %v, %v, want nil, false", got, ok)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	d := FromLines([]string{"hello, hallo"})
	got, _ := d.Lookup("H400")
	got[0] = "mutated"
	again, _ := d.Lookup("H400")
	if again[0] != "hello" {
		t.Errorf("bucket mutated through Lookup result: %v", again)
	}
}

func TestFromLines_GroupingIndependent(t *testing.T) {
	a := FromLines([]string{"hello, cool, apple", "hall, essence, hill"})
	b := FromLines([]string{"essence", "hill, hall, apple", "cool, hello"})

	if a.Codes() != b.Codes() || a.Words() != b.Words() {
		t.Fatalf("sizes differ: %d/%d vs %d/%d", a.Codes(), a.Words(), b.Codes(), b.Words())
	}
	for code, bucket := range a.byCode {
		other, ok := b.Lookup(code)
		if !ok {
			t.Errorf("code %q missing after regrouping", code)
			continue
		}
		x, y := slices.Clone(bucket), slices.Clone(other)
		slices.Sort(x)
		slices.Sort(y)
		if !slices.Equal(x, y) {
			t.Errorf("bucket %q = %v, want same words as %v", code, other, bucket)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mywords.txt")
	os.WriteFile(path, []byte("hello, cool\napple\n"), 0o644)

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if d.Manifest.ID != "mywords" {
		t.Errorf("ID = %q, want mywords", d.Manifest.ID)
	}
	if d.Words() != 3 {
		t.Errorf("words = %d, want 3", d.Words())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadFS_MissingResource(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "words.txt")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("err = %v, want ErrResourceNotFound", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{"lists/words.txt": {Data: []byte("cool, pool\n")}}
	d, err := LoadFS(fsys, "lists/words.txt")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if d.Manifest.ID != "words" {
		t.Errorf("ID = %q, want words", d.Manifest.ID)
	}
	if d.Words() != 2 {
		t.Errorf("words = %d, want 2", d.Words())
	}
}

func TestLoadDefault(t *testing.T) {
	d, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if d.Manifest.ID != DefaultID {
		t.Errorf("ID = %q, want %q", d.Manifest.ID, DefaultID)
	}
	if d.Words() < 500 {
		t.Errorf("words = %d, want a full bundled list", d.Words())
	}

	bucket, ok := d.Lookup("H400")
	if !ok || bucket[0] != "hello" {
		t.Errorf("Lookup(H400) = %v, want hello first", bucket)
	}
	for _, word := range []string{"cool", "apple", "essence", "toolbar", "occur"} {
		bucket, _ := d.Lookup(textmatch.PhoneticCode(word))
		if !slices.Contains(bucket, word) {
			t.Errorf("bundled list missing %q", word)
		}
	}
}
