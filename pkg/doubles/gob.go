package doubles

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadGob deserializes the phonetic buckets from a gob-encoded file.
func (d *Dictionary) loadGob(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	byCode := make(map[string][]string)
	if err := gob.NewDecoder(f).Decode(&byCode); err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	d.byCode = byCode
	d.words = 0
	for _, bucket := range byCode {
		d.words += len(bucket)
	}
	return nil
}

// SaveGob serializes the phonetic buckets to a gob-encoded file at path.
func (d *Dictionary) SaveGob(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}

	if err := gob.NewEncoder(f).Encode(d.byCode); err != nil {
		f.Close()
		return fmt.Errorf("encode gob: %w", err)
	}
	return f.Close()
}
