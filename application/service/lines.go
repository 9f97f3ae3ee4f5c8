// Package service orchestrates snippet extraction and report assembly.
package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/covreport/covreport/domain/snippet"
)

// ParseLineSpec parses a flagged-line specification into a LineSet.
// Supports comma-separated line numbers and inclusive ranges, with an
// optional "L" prefix: "12,40-45", "L17-L26,L55".
func ParseLineSpec(spec string) (snippet.LineSet, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty line spec")
	}

	set := snippet.NewLineSet()
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		start, end, err := parseLinePart(part)
		if err != nil {
			return nil, fmt.Errorf("invalid line range %q: %w", part, err)
		}
		for n := start; n <= end; n++ {
			set[n] = struct{}{}
		}
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("empty line spec")
	}
	return set, nil
}

func parseLinePart(s string) (int, int, error) {
	if startStr, endStr, ok := strings.Cut(s, "-"); ok {
		start, err := parseLineNumber(startStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid start line: %w", err)
		}
		end, err := parseLineNumber(endStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid end line: %w", err)
		}
		if end < start {
			return 0, 0, fmt.Errorf("end line %d before start line %d", end, start)
		}
		return start, end, nil
	}

	n, err := parseLineNumber(s)
	if err != nil {
		return 0, 0, err
	}
	return n, n, nil
}

func parseLineNumber(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "L")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("line number must be >= 1, got %d", n)
	}
	return n, nil
}
