package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tacofoundation/taco-datasets/pkg/catalog"
)

// Format selects the output encoding of `show`.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var supportedFormats = []Format{JSON, YAML}

func (e *Format) String() string {
	return string(*e)
}

func (e *Format) Set(v string) error {
	actual := Format(v)
	for _, allowed := range supportedFormats {
		if allowed == actual {
			*e = actual
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", supportedFormatList())
}

// Type is only used in help text
func (e *Format) Type() string {
	return "format"
}

func supportedFormatList() string {
	var quoted []string
	for _, v := range supportedFormats {
		quoted = append(quoted, "\""+string(v)+"\"")
	}
	return strings.Join(quoted, ", ")
}

func showCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		Format Format
	}
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display one dataset entry",
		Args:  cobra.ExactArgs(1),
		Example: `  # Show a dataset
  taco-datasets show 3dclouds

  # Show it in JSON format
  taco-datasets show 3dclouds --format=json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(opts.CatalogPath)
			if err != nil {
				return err
			}
			return runShow(cmd.OutOrStdout(), c, args[0], flags.Format)
		},
	}
	cmd.Flags().Var(&flags.Format, "format", fmt.Sprintf("Supported: %s.", supportedFormatList()))
	return cmd
}

func runShow(w io.Writer, c *catalog.Catalog, id string, format Format) error {
	d, err := c.Get(id)
	if err != nil {
		return err
	}

	switch format {
	case JSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case YAML:
		data, err := yaml.Marshal(d)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	default:
		fmt.Fprintf(w, "id: %s\npath: %s\ndescription: %s\n", d.ID, d.Path, strings.TrimSpace(d.Description))
	}
	return nil
}
