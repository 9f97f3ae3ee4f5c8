// Package main is the entry point for the covreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/covreport/covreport/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covreport",
		Short: "Render highlighted source snippets for coverage and lint reports",
		Long: `Covreport extracts context-padded excerpts of source code around
flagged lines and renders them as syntax-highlighted HTML for embedding
in coverage and lint reports.`,
	}

	cmd.AddCommand(renderCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from a .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
