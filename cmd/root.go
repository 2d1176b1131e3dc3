// Package cmd implements the CLI commands for newspipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/newspipe/config"
)

const flagConfig = "config"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "newspipe",
		Short: "Extract news articles into a resumable dataset",
		Long: `newspipe fetches article pages from supported Nepali English-language news
sites, extracts category, title, body and publish date, and appends them to
a CSV or SQLite dataset. Re-running over the same URL list skips everything
already stored.

Usage:
  newspipe ingest --input urls.txt --output news.csv
  newspipe preview <url>
  newspipe sources`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String(flagConfig, "", "YAML config file")

	root.AddCommand(newIngestCmd(), newPreviewCmd(), newSourcesCmd())
	return root
}

// loadConfig layers the --config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
