// Package source loads source files for snippet extraction.
package source

import (
	"fmt"
	"os"

	"github.com/covreport/covreport/domain/snippet"
)

// Reader reads whole-file source text from the local filesystem.
//
// Read failures (missing file, permissions, unreadable content) are returned
// to the caller as-is: this layer cannot tell transient from permanent
// failures, so it never retries and never substitutes fallback content.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() Reader { return Reader{} }

// Load returns the full text of the file at path.
func (Reader) Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(content), nil
}

// Snippets loads the file at path and extracts excerpts around the flagged
// lines. A failed load yields no snippets and the I/O error.
func (r Reader) Snippets(path string, flagged snippet.LineSet) ([]snippet.Snippet, error) {
	content, err := r.Load(path)
	if err != nil {
		return nil, err
	}
	return snippet.Extract(content, path, flagged), nil
}
