package doubles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds the bundled dictionary and every dictionary found under a
// directory, keyed by manifest ID.
type Registry struct {
	mu       sync.RWMutex
	dicts    map[string]*Dictionary
	dictsDir string
}

// NewRegistry creates a new empty registry for the given directory.
// An empty dictsDir serves the bundled dictionary only.
func NewRegistry(dictsDir string) *Registry {
	return &Registry{
		dicts:    make(map[string]*Dictionary),
		dictsDir: dictsDir,
	}
}

// Load registers the bundled dictionary, then scans the dicts directory.
// On error the previously loaded set stays active.
func (r *Registry) Load() error {
	def, err := LoadDefault()
	if err != nil {
		return fmt.Errorf("load bundled dictionary: %w", err)
	}
	newDicts := map[string]*Dictionary{DefaultID: def}

	if r.dictsDir != "" {
		entries, err := os.ReadDir(r.dictsDir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read dicts dir %s: %w", r.dictsDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(r.dictsDir, entry.Name())
			if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
				continue
			}
			d, err := LoadDictionary(dir)
			if err != nil {
				return fmt.Errorf("load dictionary %s: %w", entry.Name(), err)
			}
			newDicts[d.Manifest.ID] = d
		}
	}

	r.mu.Lock()
	r.dicts = newDicts
	r.mu.Unlock()
	return nil
}

// Reload reloads all dictionaries from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// Get returns the dictionary with the given ID. An empty ID selects the
// bundled dictionary.
func (r *Registry) Get(id string) (*Dictionary, bool) {
	if id == "" {
		id = DefaultID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.dicts[id]
	return d, ok
}

// DictInfo is the public metadata for a loaded dictionary.
type DictInfo struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Language  string `json:"language"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
	License   string `json:"license"`
	Codes     int    `json:"codes"`
	Words     int    `json:"words"`
}

// ListDicts returns metadata for all loaded dictionaries, sorted by ID.
func (r *Registry) ListDicts() []DictInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]DictInfo, 0, len(r.dicts))
	for _, d := range r.dicts {
		infos = append(infos, DictInfo{
			ID:        d.Manifest.ID,
			Version:   d.Manifest.Version,
			Language:  d.Manifest.Language,
			Source:    d.Manifest.Source,
			SourceURL: d.Manifest.SourceURL,
			License:   d.Manifest.License,
			Codes:     d.Codes(),
			Words:     d.Words(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// DictCount returns the number of loaded dictionaries.
func (r *Registry) DictCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dicts)
}

// TotalWords returns the total number of words across all dictionaries.
func (r *Registry) TotalWords() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, d := range r.dicts {
		total += d.Words()
	}
	return total
}
