package doubles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_DefaultOnly(t *testing.T) {
	reg := NewRegistry("")
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.DictCount() != 1 {
		t.Errorf("DictCount = %d, want 1", reg.DictCount())
	}
	d, ok := reg.Get("")
	if !ok || d.Manifest.ID != DefaultID {
		t.Fatalf("Get(\"\") = %v, %v, want bundled dictionary", d, ok)
	}
	if reg.TotalWords() != d.Words() {
		t.Errorf("TotalWords = %d, want %d", reg.TotalWords(), d.Words())
	}
}

func TestRegistry_MissingDirServesDefault(t *testing.T) {
	reg := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := reg.Get(DefaultID); !ok {
		t.Error("bundled dictionary must be served without a dicts dir")
	}
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writeTestDict(t, dir, "zeta", "", []byte("hello\n"))
	writeTestDict(t, dir, "alpha", "", []byte("cool, coal\n"))
	os.MkdirAll(filepath.Join(dir, "not-a-dict"), 0o755)
	os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0o644)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	infos := reg.ListDicts()
	if len(infos) != 3 {
		t.Fatalf("ListDicts = %d entries, want 3", len(infos))
	}
	for i, want := range []string{"alpha", "default", "zeta"} {
		if infos[i].ID != want {
			t.Errorf("infos[%d].ID = %q, want %q", i, infos[i].ID, want)
		}
	}
	if infos[0].Words != 2 || infos[0].Codes != 1 {
		t.Errorf("alpha = %d words / %d codes, want 2 / 1", infos[0].Words, infos[0].Codes)
	}

	if _, ok := reg.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
}

func TestRegistry_FailedReloadKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	writeTestDict(t, dir, "good", "", []byte("hello\n"))

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	broken := filepath.Join(dir, "broken")
	os.MkdirAll(broken, 0o755)
	os.WriteFile(filepath.Join(broken, "manifest.yaml"), []byte("version: \"1\"\n"), 0o644)

	if err := reg.Reload(); err == nil {
		t.Fatal("expected reload error for manifest without id")
	}
	if _, ok := reg.Get("good"); !ok {
		t.Error("previous dictionaries must survive a failed reload")
	}
}
