package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/covreport/covreport/application/service"
	"github.com/covreport/covreport/infrastructure/render"
	"github.com/covreport/covreport/infrastructure/source"
	"github.com/covreport/covreport/internal/log"
)

func renderCmd() *cobra.Command {
	var (
		envFile  string
		lines    string
		manifest string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render [source file]",
		Short: "Render flagged-line snippets as an HTML report",
		Long: `Render flagged-line snippets as an HTML report.

Flagged lines come either from --lines for a single source file:

  covreport render --lines "12,40-45" src/app.py

or from a YAML manifest covering several files:

  covreport render --manifest violations.yaml

Environment variables (optionally via --env-file):
  COVREPORT_LOG_LEVEL         DEBUG, INFO, WARN, ERROR (default: INFO)
  COVREPORT_LOG_FORMAT        pretty, json (default: pretty)
  COVREPORT_STYLE             Highlighting style name (default: github)
  COVREPORT_VIOLATION_COLOR   Flagged-line colour (default: #ffcccc)
  COVREPORT_CONCURRENCY       Files rendered in parallel (default: 4)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifestFromFlags(args, lines, manifest)
			if err != nil {
				return err
			}
			return runRender(cmd, envFile, output, m)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "path to .env file")
	cmd.Flags().StringVar(&lines, "lines", "", `flagged lines for a single file, e.g. "12,40-45"`)
	cmd.Flags().StringVar(&manifest, "manifest", "", "YAML manifest of files and flagged lines")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to this file instead of stdout")

	return cmd
}

func manifestFromFlags(args []string, lines, manifestPath string) (service.Manifest, error) {
	switch {
	case manifestPath != "" && (lines != "" || len(args) > 0):
		return service.Manifest{}, fmt.Errorf("--manifest cannot be combined with --lines or a source file argument")
	case manifestPath != "":
		return service.LoadManifest(manifestPath)
	case len(args) == 1 && lines != "":
		return service.Manifest{Files: []service.FileViolations{{Path: args[0], Lines: lines}}}, nil
	default:
		return service.Manifest{}, fmt.Errorf("either --manifest, or a source file with --lines, is required")
	}
}

func runRender(cmd *cobra.Command, envFile, output string, m service.Manifest) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	logger := log.Configure(cfg)

	highlighter, err := render.NewHighlighter(render.Params{
		StyleName:      cfg.StyleName(),
		ViolationColor: cfg.ViolationColor(),
	})
	if err != nil {
		return err
	}

	report := service.NewReport(source.NewReader(), highlighter, logger, service.ReportParams{
		Concurrency: cfg.Concurrency(),
	})

	doc, err := report.GenerateHTML(cmd.Context(), m)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	}

	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("report written", slog.String("path", output), slog.Int("files", len(m.Files)))
	return nil
}
