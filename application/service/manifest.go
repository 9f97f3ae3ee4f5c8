package service

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyManifest indicates a manifest with no file entries.
var ErrEmptyManifest = errors.New("manifest has no files")

// FileViolations names a source file and the flagged lines to excerpt,
// as a line spec understood by ParseLineSpec.
type FileViolations struct {
	Path  string `yaml:"path"`
	Lines string `yaml:"lines"`
}

// Manifest is the report input: an ordered list of files with flagged lines.
//
//	files:
//	  - path: src/app.py
//	    lines: "12,40-45"
type Manifest struct {
	Files []FileViolations `yaml:"files"`
}

// ParseManifest parses and validates a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}

	if len(m.Files) == 0 {
		return Manifest{}, ErrEmptyManifest
	}
	for i, f := range m.Files {
		if f.Path == "" {
			return Manifest{}, fmt.Errorf("manifest entry %d: missing path", i+1)
		}
		if _, err := ParseLineSpec(f.Lines); err != nil {
			return Manifest{}, fmt.Errorf("manifest entry %s: %w", f.Path, err)
		}
	}
	return m, nil
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}
