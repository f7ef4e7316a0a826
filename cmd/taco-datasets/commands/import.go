package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tacofoundation/taco-datasets/pkg/catalog"
)

func importCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <url|file>",
		Short: "Merge another listing into the catalog",
		Long: `Fetch a dataset listing from a URL or local file and append its entries to
the catalog. Imported entries keep their relative paths; an id that is
already registered fails the import.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Import from URL
  taco-datasets import https://example.com/partner-datasets.yaml

  # Import from a local file
  taco-datasets import ./partner-datasets.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := catalog.Load(opts.CatalogPath)
			if err != nil {
				return err
			}

			merged, err := catalog.ReadFrom(cmd.Context(), filepath.Dir(opts.CatalogPath), opts.CatalogPath, args[0])
			if err != nil {
				return err
			}
			if err := merged.Save(opts.CatalogPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d dataset(s) from %s\n", merged.Len()-before.Len(), args[0])
			return nil
		},
	}
}
