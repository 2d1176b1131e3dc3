package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/newspipe/core/extract"
)

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List supported news sources in routing order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SOURCE\tDOMAIN")
			for _, s := range extract.DefaultRouter().Sources() {
				fmt.Fprintf(w, "%s\t%s\n", s.Name(), s.Domain())
			}
			return w.Flush()
		},
	}
}
