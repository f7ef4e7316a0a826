package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tacofoundation/taco-datasets/pkg/catalog"
	"github.com/tacofoundation/taco-datasets/pkg/project"
	"github.com/tacofoundation/taco-datasets/pkg/tui"
)

func newCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		Description string
		Title       string
	}
	cmd := &cobra.Command{
		Use:   "new <id>",
		Short: "Scaffold a new dataset build project",
		Long: `Create the minimal layout of a new dataset build project next to the catalog
listing and print the stanza to add to it. The listing itself is not edited;
registration stays a reviewed change.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Scaffold a new build project
  taco-datasets new seafloor --description "Global seafloor imagery patches"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(opts.CatalogPath)
			if err != nil {
				return err
			}

			id := args[0]
			if _, err := c.Get(id); err == nil {
				return fmt.Errorf("dataset %q is already registered", id)
			}

			description := flags.Description
			if description == "" {
				description, err = tui.ReadUserInput(cmd.OutOrStdout(), os.Stdin, "Please provide a description for the dataset: ")
				if err != nil {
					return fmt.Errorf("failed to read user input: %w", err)
				}
			}

			dir := filepath.Join(c.Root(), id)
			if err := project.Scaffold(dir, project.Descriptor{
				ID:          id,
				Version:     "0.1.0",
				Title:       flags.Title,
				Description: description,
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created project %s\n\n", dir)
			fmt.Fprintf(out, "Add it to %s:\n\n", opts.CatalogPath)
			fmt.Fprintf(out, "  - id: %s\n    description: %s\n    path: ./%s/\n", id, description, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Description, "description", "", "Human-readable summary of the dataset.")
	cmd.Flags().StringVar(&flags.Title, "title", "", "Collection title for the descriptor.")
	return cmd
}
