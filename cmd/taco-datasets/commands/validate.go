package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tacofoundation/taco-datasets/pkg/catalog"
)

func validateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [id...]",
		Short: "Check that dataset build projects have the expected layout",
		Long: `Check that each dataset's path points at an existing build project with a
taco.yaml descriptor matching the catalog id. With no arguments, every
registered dataset is checked.`,
		Example: `  # Validate the whole catalog
  taco-datasets validate

  # Validate one dataset
  taco-datasets validate 3dclouds`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(opts.CatalogPath)
			if err != nil {
				return err
			}
			return runValidate(cmd.Context(), cmd.OutOrStdout(), c, args)
		},
	}
}

func runValidate(ctx context.Context, w io.Writer, c *catalog.Catalog, ids []string) error {
	if len(ids) == 0 {
		if err := c.ValidateAll(ctx); err != nil {
			return err
		}
		fmt.Fprintf(w, "validated %d dataset(s)\n", c.Len())
		return nil
	}

	var failures []error
	for _, id := range ids {
		if err := c.Validate(ctx, id); err != nil {
			failures = append(failures, err)
			continue
		}
		fmt.Fprintf(w, "%s: ok\n", id)
	}
	return errors.Join(failures...)
}
