package doubles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDelimiter separates words on a line of a word list.
const DefaultDelimiter = ", "

// Manifest describes a double-letter word list: its source and how to read it.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Version   string     `yaml:"version" json:"version"`
	Language  string     `yaml:"language" json:"language"`
	Source    string     `yaml:"source" json:"source"`
	SourceURL string     `yaml:"source_url,omitempty" json:"source_url,omitempty"`
	License   string     `yaml:"license" json:"license"`
	DataFile  string     `yaml:"data_file" json:"data_file"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes the word list layout.
type FormatSpec struct {
	Delimiter string `yaml:"delimiter,omitempty"`
	Encoding  string `yaml:"encoding,omitempty"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" {
		m.DataFile = "data.txt"
	}
	if m.Language == "" {
		m.Language = "en"
	}
	return &m, nil
}

// delimiter returns the configured word delimiter, or DefaultDelimiter.
func (m *Manifest) delimiter() string {
	if m == nil || m.Format.Delimiter == "" {
		return DefaultDelimiter
	}
	return m.Format.Delimiter
}
