package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/covreport/covreport/infrastructure/render"
	"github.com/covreport/covreport/infrastructure/source"
)

// DefaultConcurrency bounds how many files are rendered in parallel.
const DefaultConcurrency = 4

// ReportParams configures the Report service.
type ReportParams struct {
	// Concurrency is the number of files rendered in parallel.
	// Zero or negative means DefaultConcurrency.
	Concurrency int
}

// FileSection holds the rendered snippets for one manifest entry.
type FileSection struct {
	path     string
	snippets []string
}

// Path returns the source file the section covers.
func (s FileSection) Path() string { return s.path }

// Snippets returns the rendered HTML, one entry per excerpt.
func (s FileSection) Snippets() []string {
	result := make([]string, len(s.snippets))
	copy(result, s.snippets)
	return result
}

// Report renders manifest entries into an HTML report of highlighted source
// excerpts. Files are processed concurrently; output order follows the
// manifest. A file that cannot be read fails the whole report rather than
// degrading into an empty section.
type Report struct {
	reader      source.Reader
	highlighter *render.Highlighter
	logger      *slog.Logger
	concurrency int
}

// NewReport creates a Report service.
func NewReport(reader source.Reader, highlighter *render.Highlighter, logger *slog.Logger, params ReportParams) *Report {
	concurrency := params.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Report{
		reader:      reader,
		highlighter: highlighter,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Sections extracts and renders snippets for every manifest entry.
func (r *Report) Sections(ctx context.Context, m Manifest) ([]FileSection, error) {
	if len(m.Files) == 0 {
		return nil, ErrEmptyManifest
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	sections := make([]FileSection, len(m.Files))
	for i, f := range m.Files {
		i, f := i, f
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			flagged, err := ParseLineSpec(f.Lines)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}

			snippets, err := r.reader.Snippets(f.Path, flagged)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}

			rendered := make([]string, 0, len(snippets))
			for _, s := range snippets {
				markup, err := r.highlighter.HTML(s)
				if err != nil {
					return fmt.Errorf("%s: %w", f.Path, err)
				}
				rendered = append(rendered, markup)
			}

			r.logger.Debug("rendered file section",
				slog.String("path", f.Path),
				slog.Int("flagged_lines", flagged.Len()),
				slog.Int("snippets", len(rendered)),
			)

			sections[i] = FileSection{path: f.Path, snippets: rendered}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("rendered report sections", slog.Int("files", len(sections)))
	return sections, nil
}

// GenerateHTML renders the manifest into a standalone HTML document: the
// style definitions once, then one section per file in manifest order.
func (r *Report) GenerateHTML(ctx context.Context, m Manifest) (string, error) {
	sections, err := r.Sections(ctx, m)
	if err != nil {
		return "", err
	}

	css, err := r.highlighter.StyleDefs()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	buf.WriteString("<title>Source snippets</title>\n<style>\n")
	buf.WriteString(css)
	buf.WriteString("</style>\n</head>\n<body>\n")

	for _, section := range sections {
		fmt.Fprintf(&buf, "<h2>%s</h2>\n", html.EscapeString(section.path))
		if len(section.snippets) == 0 {
			buf.WriteString("<p>No flagged lines within this file.</p>\n")
			continue
		}
		for _, markup := range section.snippets {
			buf.WriteString(markup)
		}
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.String(), nil
}
