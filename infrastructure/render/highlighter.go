// Package render turns extracted snippets into styled HTML for reports.
package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/covreport/covreport/domain/snippet"
)

// Rendering defaults.
const (
	// DefaultViolationColor is the background colour used to emphasise
	// flagged lines.
	DefaultViolationColor = "#ffcccc"

	// DefaultStyleName is the chroma style snippets are rendered with.
	DefaultStyleName = "github"

	// cssClass wraps every rendered snippet so reports can scope styling.
	cssClass = "snippet"
)

// Params configures a Highlighter.
type Params struct {
	// StyleName selects the chroma style. Unknown names fall back to the
	// library's default style.
	StyleName string

	// ViolationColor is the flagged-line background colour.
	ViolationColor string
}

// DefaultParams returns the default rendering configuration.
func DefaultParams() Params {
	return Params{
		StyleName:      DefaultStyleName,
		ViolationColor: DefaultViolationColor,
	}
}

// Highlighter renders snippets as HTML with line numbers and emphasised
// flagged lines. The zero value is not usable; use NewHighlighter.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a Highlighter with the flagged-line colour baked
// into its style.
func NewHighlighter(params Params) (*Highlighter, error) {
	if params.StyleName == "" {
		params.StyleName = DefaultStyleName
	}
	if params.ViolationColor == "" {
		params.ViolationColor = DefaultViolationColor
	}

	builder := styles.Get(params.StyleName).Builder()
	builder.Add(chroma.LineHighlight, "bg:"+params.ViolationColor)
	style, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build highlight style: %w", err)
	}

	return &Highlighter{style: style}, nil
}

// HTML renders the snippet as an HTML table with file line numbers starting
// at the snippet's start line and the flagged rows emphasised. The output is
// opaque markup; callers embed it next to the CSS from StyleDefs.
func (h *Highlighter) HTML(s snippet.Snippet) (string, error) {
	lexer := chroma.Coalesce(lexerFor(s.Path(), s.Text()))

	iterator, err := lexer.Tokenise(nil, s.Text())
	if err != nil {
		return "", fmt.Errorf("tokenise snippet: %w", err)
	}

	// The formatter matches highlight ranges against displayed numbers,
	// which start at the snippet's file start line.
	formatter := html.New(
		html.WithClasses(true),
		html.WithLineNumbers(true),
		html.LineNumbersInTable(true),
		html.BaseLineNumber(s.StartLine()),
		html.HighlightLines(highlightRanges(s)),
		html.WithLinkableLineNumbers(true, anchorPrefix(s.Path())),
	)

	var buf strings.Builder
	fmt.Fprintf(&buf, "<div class=%q>\n", cssClass)
	if err := formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("format snippet: %w", err)
	}
	buf.WriteString("</div>\n")
	return buf.String(), nil
}

// StyleDefs returns the CSS definitions rendered snippets rely on. It is
// independent of any particular snippet and belongs once per report.
func (h *Highlighter) StyleDefs() (string, error) {
	var buf strings.Builder
	fmt.Fprintf(&buf, ".%s table { border: 1px solid #bdbdbd; }\n", cssClass)

	formatter := html.New(
		html.WithClasses(true),
		html.WithLineNumbers(true),
		html.LineNumbersInTable(true),
	)
	if err := formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("write style definitions: %w", err)
	}
	return buf.String(), nil
}

// lexerFor picks a lexer for the snippet: by filename first, then by content
// analysis, then the plain-text fallback. Unrecognised sources are rendered
// as plain text, never an error.
func lexerFor(path, text string) chroma.Lexer {
	if lexer := lexers.Match(path); lexer != nil {
		return lexer
	}
	if lexer := lexers.Analyse(text); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}

// highlightRanges converts the snippet's remapped flagged lines into the
// displayed-number ranges the formatter expects.
func highlightRanges(s snippet.Snippet) [][2]int {
	relative := s.RelativeFlagged()
	ranges := make([][2]int, 0, len(relative))
	for _, line := range relative {
		displayed := line + s.StartLine() - 1
		ranges = append(ranges, [2]int{displayed, displayed})
	}
	return ranges
}

// anchorPrefix derives a stable id prefix for linkable line numbers from the
// source path.
func anchorPrefix(path string) string {
	var b strings.Builder
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
