// Package snippet extracts context-padded source excerpts around flagged lines.
package snippet

import "sort"

const (
	// ContextLines is the number of extra lines included before and after
	// each excerpt to give readers surrounding code.
	ContextLines = 4

	// MaxGap is the largest run of consecutive clean lines tolerated inside
	// an excerpt. Violations further apart split into separate excerpts.
	MaxGap = 4
)

// LineSet is a membership-only set of 1-based line numbers. Duplicates and
// out-of-range values are tolerated; they never trigger range creation.
type LineSet map[int]struct{}

// NewLineSet creates a LineSet from the given line numbers.
func NewLineSet(lines ...int) LineSet {
	s := make(LineSet, len(lines))
	for _, n := range lines {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether the line number is in the set.
func (s LineSet) Contains(line int) bool {
	_, ok := s[line]
	return ok
}

// Len returns the number of distinct lines in the set.
func (s LineSet) Len() int { return len(s) }

// Lines returns the set's members sorted ascending.
func (s LineSet) Lines() []int {
	result := make([]int, 0, len(s))
	for n := range s {
		result = append(result, n)
	}
	sort.Ints(result)
	return result
}

// LineRange is a 1-based inclusive span of source lines. Immutable value object.
type LineRange struct {
	start int
	end   int
}

// NewLineRange creates a LineRange.
func NewLineRange(start, end int) LineRange {
	return LineRange{start: start, end: end}
}

// StartLine returns the 1-based first line.
func (r LineRange) StartLine() int { return r.start }

// EndLine returns the 1-based last line.
func (r LineRange) EndLine() int { return r.end }

// Lines returns the number of lines the range covers.
func (r LineRange) Lines() int { return r.end - r.start + 1 }

// sweepState tracks the range-merging sweep. The sweep is either idle
// (no excerpt open) or collecting (an excerpt is open and its end is not
// yet fixed).
type sweepState int

const (
	sweepIdle sweepState = iota
	sweepCollecting
)

// ComputeRanges merges the flagged lines of a totalLines-long source into an
// ordered list of disjoint line ranges, each padded with ContextLines of
// surrounding code. Flagged lines whose padded spans would run together, or
// that sit within MaxGap clean lines of each other, share a range.
//
// Flagged lines outside [1, totalLines] are inert. The function is pure and
// total: no input produces an error.
func ComputeRanges(totalLines int, flagged LineSet) []LineRange {
	var (
		result      []LineRange
		state       = sweepIdle
		start       int // provisional start, set while collecting
		lastFlagged int // last flagged line seen, set while collecting
	)

	for line := 1; line <= totalLines; line++ {
		switch state {
		case sweepIdle:
			if flagged.Contains(line) {
				start = max(1, line-ContextLines)
				// A fresh range never reaches back into the one
				// before it.
				if n := len(result); n > 0 {
					start = max(start, result[n-1].end+1)
				}
				lastFlagged = line
				state = sweepCollecting
			}

		case sweepCollecting:
			if flagged.Contains(line) {
				lastFlagged = line
			} else if line-lastFlagged > MaxGap {
				end := min(totalLines, lastFlagged+ContextLines)
				result = append(result, LineRange{start: start, end: end})
				state = sweepIdle
			}
		}
	}

	// Trailing flagged lines near end-of-file leave the final range open.
	if state == sweepCollecting {
		result = append(result, LineRange{start: start, end: totalLines})
	}

	return result
}
