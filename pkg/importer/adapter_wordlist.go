package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/unemph/pkg/doubles"
)

// wordListAdapter imports a newline-separated English word list.
type wordListAdapter struct {
	id          string
	dictID      string
	description string
	url         string
	license     string
	source      string
}

func (a *wordListAdapter) ID() string          { return a.id }
func (a *wordListAdapter) DictID() string      { return a.dictID }
func (a *wordListAdapter) Description() string { return a.description }
func (a *wordListAdapter) DefaultURL() string  { return a.url }
func (a *wordListAdapter) License() string     { return a.license }

func (a *wordListAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	rawPath := filepath.Join(dlDir, a.id+".raw")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, rawPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	files, err := wordFiles(rawPath, dlDir)
	if err != nil {
		return err
	}
	words, err := selectFromFiles(files)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("no double-letter words in %s", sourceURL)
	}
	fmt.Printf("  %d double-letter words\n", len(words))

	dictDir := filepath.Join(outputDir, a.DictID())
	if err := ensureDir(dictDir); err != nil {
		return err
	}

	lines := wordLines(words)
	if err := writeWordList(filepath.Join(dictDir, "data.txt"), lines); err != nil {
		return err
	}
	if err := doubles.FromLines(lines).SaveGob(filepath.Join(dictDir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}

	return writeManifest(dictDir, &doubles.Manifest{
		ID:        a.DictID(),
		Version:   time.Now().UTC().Format("2006-01"),
		Language:  "en",
		Source:    a.source,
		SourceURL: sourceURL,
		License:   a.license,
		DataFile:  "data.txt",
	})
}
