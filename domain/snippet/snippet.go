package snippet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStartLine indicates a snippet constructed with a start line below 1.
// This is a caller bug, not a recoverable condition.
var ErrStartLine = errors.New("snippet start line must be >= 1")

// Snippet is a source excerpt sliced around flagged lines.
// Immutable value object; created by Extract, consumed by rendering.
type Snippet struct {
	text      string
	path      string
	startLine int
	flagged   LineSet
}

// New creates a Snippet.
//
// path identifies the source file and doubles as the language hint for
// rendering. startLine is the 1-based file line number of the first line of
// text. flagged is the full flagged-line set for the file; lines outside this
// snippet are tolerated and ignored when remapping.
func New(text, path string, startLine int, flagged LineSet) (Snippet, error) {
	if startLine < 1 {
		return Snippet{}, fmt.Errorf("%w: got %d", ErrStartLine, startLine)
	}
	return Snippet{
		text:      text,
		path:      path,
		startLine: startLine,
		flagged:   flagged,
	}, nil
}

// Text returns the sliced excerpt text.
func (s Snippet) Text() string { return s.text }

// Path returns the source file identifier.
func (s Snippet) Path() string { return s.path }

// StartLine returns the 1-based file line number of the excerpt's first line.
func (s Snippet) StartLine() int { return s.startLine }

// Flagged returns the flagged-line set the snippet was extracted for.
func (s Snippet) Flagged() LineSet {
	result := make(LineSet, len(s.flagged))
	for n := range s.flagged {
		result[n] = struct{}{}
	}
	return result
}

// LineSpan returns the absolute (start, end) file lines the excerpt covers,
// computed from the stored text so it always reflects the sliced content.
func (s Snippet) LineSpan() (int, int) {
	lines := strings.Count(s.text, "\n") + 1
	return s.startLine, s.startLine + lines - 1
}

// RelativeFlagged returns the flagged lines remapped to excerpt-relative
// numbering, sorted ascending. See ShiftLines.
func (s Snippet) RelativeFlagged() []int {
	return ShiftLines(s.flagged.Lines(), s.startLine)
}

// ShiftLines remaps absolute line numbers so that start becomes 1. Values
// below start belong to an earlier excerpt and are dropped silently.
func ShiftLines(lines []int, start int) []int {
	result := make([]int, 0, len(lines))
	for _, n := range lines {
		if n >= start {
			result = append(result, n-start+1)
		}
	}
	return result
}

// Extract slices src into one Snippet per range produced by ComputeRanges.
//
// src is split on '\n'; a trailing newline therefore contributes a final
// empty line to the count, and excerpt text is joined back with '\n'.
// An empty src or an empty flagged set yields no snippets.
func Extract(src, path string, flagged LineSet) []Snippet {
	if src == "" {
		return nil
	}

	lines := strings.Split(src, "\n")
	ranges := ComputeRanges(len(lines), flagged)
	if len(ranges) == 0 {
		return nil
	}

	result := make([]Snippet, 0, len(ranges))
	for _, r := range ranges {
		// Range bounds are already clamped to [1, len(lines)].
		text := strings.Join(lines[r.StartLine()-1:r.EndLine()], "\n")
		result = append(result, Snippet{
			text:      text,
			path:      path,
			startLine: r.StartLine(),
			flagged:   flagged,
		})
	}
	return result
}
