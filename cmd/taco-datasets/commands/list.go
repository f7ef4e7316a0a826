package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacofoundation/taco-datasets/pkg/catalog"
)

func listCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		JSON bool
	}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the datasets in the catalog",
		Long:    `List every registered dataset with its description, in the order the listing declares them.`,
		Args:    cobra.NoArgs,
		Example: `  # List all datasets
  taco-datasets list

  # List datasets in JSON format
  taco-datasets list --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Load(opts.CatalogPath)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), c, flags.JSON)
		},
	}
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print as JSON.")
	return cmd
}

func runList(w io.Writer, c *catalog.Catalog, outputJSON bool) error {
	if outputJSON {
		data, err := json.Marshal(c.List())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if c.Len() == 0 {
		fmt.Fprintln(w, "No datasets registered.")
		return nil
	}
	for d := range c.Datasets() {
		fmt.Fprintf(w, "%s: %s\n", d.ID, strings.TrimSpace(d.Description))
	}
	return nil
}
