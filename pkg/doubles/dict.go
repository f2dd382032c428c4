// Package doubles loads dictionaries of words that legitimately contain doubled
// letters ("hello", "cool", "essence") and indexes them by phonetic code.
package doubles

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/hazyhaar/unemph/pkg/textmatch"
)

// DefaultID is the ID under which the bundled word list is registered.
const DefaultID = "default"

const defaultResource = "data/words_with_doubles.txt"

//go:embed data/words_with_doubles.txt
var bundled embed.FS

// ErrResourceNotFound is returned when a named word list resource is absent.
var ErrResourceNotFound = errors.New("word list resource not found")

// Dictionary maps phonetic codes to the known words sharing that code.
// Buckets keep insertion order and duplicates. A Dictionary is never mutated
// after construction and may be shared between goroutines.
type Dictionary struct {
	Manifest *Manifest `json:"manifest"`
	byCode   map[string][]string
	words    int
}

func newDictionary(m *Manifest) *Dictionary {
	return &Dictionary{Manifest: m, byCode: make(map[string][]string)}
}

// Load builds a dictionary from comma-space separated lines read from r.
func Load(r io.Reader) (*Dictionary, error) {
	d := newDictionary(&Manifest{ID: "reader", Language: "en"})
	if err := d.read(r); err != nil {
		return nil, err
	}
	return d, nil
}

// FromLines builds a dictionary from in-memory lines.
func FromLines(lines []string) *Dictionary {
	d := newDictionary(&Manifest{ID: "lines", Language: "en"})
	for _, line := range lines {
		d.addLine(line, DefaultDelimiter)
	}
	return d
}

// LoadFile builds a dictionary from the word list at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	d := newDictionary(&Manifest{
		ID:       strings.TrimSuffix(base, filepath.Ext(base)),
		Language: "en",
		Source:   path,
		DataFile: base,
	})
	if err := d.read(f); err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return d, nil
}

// LoadFS builds a dictionary from the named resource of fsys.
func LoadFS(fsys fs.FS, name string) (*Dictionary, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("open resource %s: %w", name, err)
	}
	defer f.Close()

	d := newDictionary(&Manifest{
		ID:       strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
		Language: "en",
		Source:   "resource",
		DataFile: name,
	})
	if err := d.read(f); err != nil {
		return nil, fmt.Errorf("resource %s: %w", name, err)
	}
	return d, nil
}

// LoadDefault builds a dictionary from the bundled word list.
func LoadDefault() (*Dictionary, error) {
	d, err := LoadFS(bundled, defaultResource)
	if err != nil {
		return nil, err
	}
	d.Manifest = &Manifest{
		ID:       DefaultID,
		Version:  "1",
		Language: "en",
		Source:   "bundled double-letter word list",
		License:  "CC0",
		DataFile: defaultResource,
	}
	return d, nil
}

// LoadDictionary reads dir/manifest.yaml and loads the word list it
// describes. A data.gob snapshot takes priority over the text data file.
func LoadDictionary(dir string) (*Dictionary, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}
	d := newDictionary(manifest)

	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		if err := d.loadGob(gobPath); err != nil {
			return nil, fmt.Errorf("dict %s: %w", manifest.ID, err)
		}
		return d, nil
	}

	if err := d.loadText(filepath.Join(dir, manifest.DataFile)); err != nil {
		return nil, fmt.Errorf("dict %s: %w", manifest.ID, err)
	}
	return d, nil
}

func (d *Dictionary) loadText(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the manifest.
	var reader io.Reader = f
	if enc := d.Manifest.Format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}
	return d.read(reader)
}

func (d *Dictionary) read(r io.Reader) error {
	delim := d.Manifest.delimiter()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		d.addLine(sc.Text(), delim)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read word list: %w", err)
	}
	return nil
}

func (d *Dictionary) addLine(line, delim string) {
	for _, word := range strings.Split(line, delim) {
		if word == "" {
			continue
		}
		code := textmatch.PhoneticCode(word)
		if bucket, exists := d.byCode[code]; exists {
			slog.Debug("repeated phonetic code", "code", code, "bucket", bucket, "word", word)
		}
		d.byCode[code] = append(d.byCode[code], word)
		d.words++
	}
}

// Lookup returns a copy of the words sharing the phonetic code, in load order.
func (d *Dictionary) Lookup(code string) ([]string, bool) {
	bucket, ok := d.byCode[code]
	if !ok {
		return nil, false
	}
	return slices.Clone(bucket), true
}

// Codes returns the number of distinct phonetic codes.
func (d *Dictionary) Codes() int {
	return len(d.byCode)
}

// Words returns the number of words loaded, duplicates included.
func (d *Dictionary) Words() int {
	return d.words
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
