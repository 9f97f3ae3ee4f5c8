package snippet

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// numberedSource builds a source text of n lines, each reading "line N".
func numberedSource(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestNew_RejectsStartLineBelowOne(t *testing.T) {
	for _, start := range []int{0, -1, -5, -100} {
		_, err := New("text", "main.go", start, NewLineSet(1))
		if err == nil {
			t.Errorf("New with start %d: want error, got nil", start)
			continue
		}
		if !errors.Is(err, ErrStartLine) {
			t.Errorf("New with start %d: error %v, want ErrStartLine", start, err)
		}
	}
}

func TestNew_AcceptsStartLineOne(t *testing.T) {
	s, err := New("text", "main.go", 1, NewLineSet(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.StartLine() != 1 {
		t.Errorf("StartLine() = %d, want 1", s.StartLine())
	}
}

func TestShiftLines(t *testing.T) {
	tests := []struct {
		lines []int
		start int
		want  []int
	}{
		{[]int{5, 8, 9}, 3, []int{3, 6, 7}},
		{[]int{1, 2}, 3, []int{}},
		{[]int{3}, 3, []int{1}},
		{[]int{2, 3, 4}, 3, []int{1, 2}},
		{[]int{}, 1, []int{}},
	}

	for _, tt := range tests {
		got := ShiftLines(tt.lines, tt.start)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ShiftLines(%v, %d) = %v, want %v", tt.lines, tt.start, got, tt.want)
		}
	}
}

func TestSnippet_RelativeFlagged(t *testing.T) {
	s, err := New("a\nb\nc", "main.go", 10, NewLineSet(12, 3, 10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Line 3 belongs to an earlier excerpt and is dropped.
	want := []int{1, 3}
	if got := s.RelativeFlagged(); !reflect.DeepEqual(got, want) {
		t.Errorf("RelativeFlagged() = %v, want %v", got, want)
	}
}

func TestSnippet_LineSpan(t *testing.T) {
	s, err := New("a\nb\nc", "main.go", 10, NewLineSet(11))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	start, end := s.LineSpan()
	if start != 10 || end != 12 {
		t.Errorf("LineSpan() = (%d, %d), want (10, 12)", start, end)
	}
}

func TestSnippet_LineSpan_SingleLine(t *testing.T) {
	s, err := New("only line", "main.go", 7, NewLineSet(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	start, end := s.LineSpan()
	if start != 7 || end != 7 {
		t.Errorf("LineSpan() = (%d, %d), want (7, 7)", start, end)
	}
}

func TestSnippet_FlaggedReturnsCopy(t *testing.T) {
	flagged := NewLineSet(5)
	s, err := New("text", "main.go", 1, flagged)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := s.Flagged()
	got[99] = struct{}{}

	if s.Flagged().Contains(99) {
		t.Error("Flagged() should return a copy")
	}
}

func TestExtract_EmptySource(t *testing.T) {
	if got := Extract("", "main.go", NewLineSet(1)); len(got) != 0 {
		t.Errorf("Extract(empty source) = %v, want no snippets", got)
	}
}

func TestExtract_EmptyFlaggedSet(t *testing.T) {
	if got := Extract(numberedSource(20), "main.go", NewLineSet()); len(got) != 0 {
		t.Errorf("Extract with no flagged lines = %v, want no snippets", got)
	}
}

func TestExtract_SingleFlaggedLine(t *testing.T) {
	got := Extract(numberedSource(20), "main.go", NewLineSet(10))
	if len(got) != 1 {
		t.Fatalf("got %d snippets, want 1", len(got))
	}

	s := got[0]
	if s.StartLine() != 6 {
		t.Errorf("StartLine() = %d, want 6", s.StartLine())
	}
	wantText := "line 6\nline 7\nline 8\nline 9\nline 10\nline 11\nline 12\nline 13\nline 14"
	if s.Text() != wantText {
		t.Errorf("Text() = %q, want %q", s.Text(), wantText)
	}
	if start, end := s.LineSpan(); start != 6 || end != 14 {
		t.Errorf("LineSpan() = (%d, %d), want (6, 14)", start, end)
	}
	if s.Path() != "main.go" {
		t.Errorf("Path() = %q, want %q", s.Path(), "main.go")
	}
}

func TestExtract_GapMergingProducesTwoSnippets(t *testing.T) {
	flagged := NewLineSet(30, 31, 32, 35, 36, 60, 62)
	got := Extract(numberedSource(100), "app.py", flagged)
	if len(got) != 2 {
		t.Fatalf("got %d snippets, want 2", len(got))
	}

	if start, end := got[0].LineSpan(); start != 26 || end != 40 {
		t.Errorf("first LineSpan() = (%d, %d), want (26, 40)", start, end)
	}
	if start, end := got[1].LineSpan(); start != 56 || end != 66 {
		t.Errorf("second LineSpan() = (%d, %d), want (56, 66)", start, end)
	}

	// Both snippets carry the full flagged set; remapping scopes it.
	wantFirst := []int{5, 6, 7, 10, 11, 35, 37}
	if rel := got[0].RelativeFlagged(); !reflect.DeepEqual(rel, wantFirst) {
		t.Errorf("first RelativeFlagged() = %v, want %v", rel, wantFirst)
	}
	wantSecond := []int{5, 7}
	if rel := got[1].RelativeFlagged(); !reflect.DeepEqual(rel, wantSecond) {
		t.Errorf("second RelativeFlagged() = %v, want %v", rel, wantSecond)
	}
}

func TestExtract_TrailingNewlineCountsAsLine(t *testing.T) {
	// "a\nb\n" splits into three segments; the trailing empty one clamps
	// the excerpt end.
	got := Extract("a\nb\n", "main.go", NewLineSet(2))
	if len(got) != 1 {
		t.Fatalf("got %d snippets, want 1", len(got))
	}
	if got[0].Text() != "a\nb\n" {
		t.Errorf("Text() = %q, want %q", got[0].Text(), "a\nb\n")
	}
	if start, end := got[0].LineSpan(); start != 1 || end != 3 {
		t.Errorf("LineSpan() = (%d, %d), want (1, 3)", start, end)
	}
}

func TestExtract_OutOfRangeFlaggedLinesIgnored(t *testing.T) {
	got := Extract(numberedSource(10), "main.go", NewLineSet(5, 40, -1))
	if len(got) != 1 {
		t.Fatalf("got %d snippets, want 1", len(got))
	}
	if start, end := got[0].LineSpan(); start != 1 || end != 9 {
		t.Errorf("LineSpan() = (%d, %d), want (1, 9)", start, end)
	}
}

func TestExtract_WholeFileFlagged(t *testing.T) {
	got := Extract(numberedSource(5), "main.go", NewLineSet(1, 2, 3, 4, 5))
	if len(got) != 1 {
		t.Fatalf("got %d snippets, want 1", len(got))
	}
	if got[0].Text() != numberedSource(5) {
		t.Errorf("Text() = %q, want whole source", got[0].Text())
	}
}
