// Package covreport extracts and renders highlighted source excerpts around
// flagged lines, for embedding in coverage and lint reports.
//
// Basic usage:
//
//	client, err := covreport.New(
//	    covreport.WithStyle("monokai"),
//	    covreport.WithViolationColor("#ffcccc"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	markup, err := client.SnippetsHTML("src/app.py", "12,40-45")
//	for _, m := range markup {
//	    fmt.Println(m)
//	}
package covreport

import (
	"context"
	"io"
	"log/slog"

	"github.com/covreport/covreport/application/service"
	"github.com/covreport/covreport/domain/snippet"
	"github.com/covreport/covreport/infrastructure/render"
	"github.com/covreport/covreport/infrastructure/source"
	"github.com/covreport/covreport/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	styleName      string
	violationColor string
	concurrency    int
	logger         *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		styleName:      config.DefaultStyleName,
		violationColor: config.DefaultViolationColor,
		concurrency:    config.DefaultConcurrency,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithStyle selects the syntax-highlighting style.
func WithStyle(name string) Option {
	return func(c *clientConfig) { c.styleName = name }
}

// WithViolationColor sets the flagged-line background colour.
func WithViolationColor(colour string) Option {
	return func(c *clientConfig) { c.violationColor = colour }
}

// WithConcurrency bounds how many files a report renders in parallel.
func WithConcurrency(n int) Option {
	return func(c *clientConfig) { c.concurrency = n }
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// Client is the high-level entry point: it loads source files, extracts
// context-padded excerpts around flagged lines, and renders them as HTML.
type Client struct {
	reader      source.Reader
	highlighter *render.Highlighter
	report      *service.Report
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	highlighter, err := render.NewHighlighter(render.Params{
		StyleName:      cfg.styleName,
		ViolationColor: cfg.violationColor,
	})
	if err != nil {
		return nil, err
	}

	reader := source.NewReader()
	report := service.NewReport(reader, highlighter, cfg.logger, service.ReportParams{
		Concurrency: cfg.concurrency,
	})

	return &Client{
		reader:      reader,
		highlighter: highlighter,
		report:      report,
	}, nil
}

// Snippets loads the file at path and extracts excerpts around the flagged
// lines, without rendering.
func (c *Client) Snippets(path string, flagged snippet.LineSet) ([]snippet.Snippet, error) {
	return c.reader.Snippets(path, flagged)
}

// SnippetsHTML loads the file at path and renders one HTML block per excerpt
// around the lines named by lineSpec (see service.ParseLineSpec).
func (c *Client) SnippetsHTML(path, lineSpec string) ([]string, error) {
	flagged, err := service.ParseLineSpec(lineSpec)
	if err != nil {
		return nil, err
	}

	snippets, err := c.reader.Snippets(path, flagged)
	if err != nil {
		return nil, err
	}

	markup := make([]string, 0, len(snippets))
	for _, s := range snippets {
		m, err := c.highlighter.HTML(s)
		if err != nil {
			return nil, err
		}
		markup = append(markup, m)
	}
	return markup, nil
}

// StyleDefs returns the CSS definitions rendered snippets rely on, needed
// once per report.
func (c *Client) StyleDefs() (string, error) {
	return c.highlighter.StyleDefs()
}

// GenerateHTML renders a full manifest into a standalone HTML document.
func (c *Client) GenerateHTML(ctx context.Context, m service.Manifest) (string, error) {
	return c.report.GenerateHTML(ctx, m)
}
