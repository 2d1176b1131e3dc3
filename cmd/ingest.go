package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/newspipe/config"
	"github.com/gaurav-prasanna/newspipe/core/dataset"
	"github.com/gaurav-prasanna/newspipe/core/fetch"
	"github.com/gaurav-prasanna/newspipe/core/pipeline"
	"github.com/gaurav-prasanna/newspipe/core/urls"
)

func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Append articles from a URL list to the dataset",
		Long: `Ingest reads article URLs one per line, extracts each supported page and
appends it to the dataset. URLs already in the dataset are skipped, so an
interrupted run can simply be started again.

Examples:
  newspipe ingest --input urls.txt
  newspipe ingest --input urls.txt --output news.db --start-line 100 --end-line 199
  newspipe ingest --config newspipe.yaml`,
		Args: cobra.NoArgs,
		RunE: runIngest,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log := cfg.Logger(cmd.ErrOrStderr())

	list, err := urls.ReadFile(cfg.Input, cfg.Range())
	if err != nil {
		return err
	}

	store, err := dataset.Open(cfg.Output)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := pipeline.New(fetch.New(cfg.FetchOptions()), store,
		pipeline.WithThrottle(cfg.PipelineThrottle()),
		pipeline.WithLogger(log.With("output", cfg.Output)),
	)
	sum, err := runner.Run(ctx, list)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s → %s\n", sum, cfg.Output)

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("run interrupted after %d of %d URLs", sum.Total(), len(list))
	}
	return err
}
