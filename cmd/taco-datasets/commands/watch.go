package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacofoundation/taco-datasets/pkg/catalog"
)

func watchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-validate the catalog whenever the listing changes",
		Args:  cobra.NoArgs,
		Example: `  # Keep validating while editing the listing
  taco-datasets watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			c, err := catalog.Load(opts.CatalogPath)
			if err != nil {
				return err
			}
			report(ctx, out, c)

			updates, err := catalog.Watch(ctx, opts.CatalogPath)
			if err != nil {
				return err
			}
			for c := range updates {
				fmt.Fprintln(out, "catalog reloaded")
				report(ctx, out, c)
			}
			return nil
		},
	}
}

func report(ctx context.Context, w io.Writer, c *catalog.Catalog) {
	if err := c.ValidateAll(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintf(w, "validated %d dataset(s)\n", c.Len())
}
