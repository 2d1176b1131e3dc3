package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/newspipe/core/extract"
	"github.com/gaurav-prasanna/newspipe/core/fetch"
	"github.com/gaurav-prasanna/newspipe/core/normalize"
)

func newPreviewCmd() *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "preview <url>",
		Short: "Extract one URL and print the record without saving it",
		Long: `Preview fetches a single article, runs the matching extractor and prints the
resulting record as JSON. With --markdown it also prints the page's content
container as Markdown, which helps when a site changes its layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], markdown)
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Also print the content container as Markdown")
	return cmd
}

func runPreview(cmd *cobra.Command, rawURL string, markdown bool) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://kathmandupost.com/...)", rawURL)
	}

	src, err := extract.DefaultRouter().Route(rawURL)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	result, err := fetch.New(cfg.FetchOptions()).Fetch(cmd.Context(), rawURL)
	if err != nil {
		return err
	}

	art, err := extract.ExtractArticle(src, result.HTML, rawURL)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, string(data))

	if !markdown {
		return nil
	}
	doc, err := extract.Parse(result.HTML)
	if err != nil {
		return err
	}
	html, err := src.Content(doc).Html()
	if err != nil {
		return fmt.Errorf("rendering content container: %w", err)
	}
	md, err := normalize.Markdown(html)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n--- %s content ---\n%s\n", src.Name(), md)
	return nil
}
