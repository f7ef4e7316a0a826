package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacofoundation/taco-datasets/cmd/taco-datasets/version"
	"github.com/tacofoundation/taco-datasets/pkg/catalog"
)

// Note: We use a custom help template to make it more brief.
const helpTemplate = `TACO datasets - Manage the registry of dataset build projects.
{{if .UseLine}}
Usage: {{.UseLine}}
{{end}}{{if .HasAvailableLocalFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableSubCommands}}
Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand)}}  {{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}
`

type rootOptions struct {
	CatalogPath string
}

// Root returns the root command of the taco-datasets CLI.
func Root(ctx context.Context) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:              "taco-datasets [OPTIONS]",
		Short:            "Manage the TACO dataset catalog",
		TraverseChildren: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(ctx)
		},
		Version: version.Version,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpTemplate(helpTemplate)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.CatalogPath, "catalog", catalog.DefaultListingFilename, "Path to the catalog listing.")

	cmd.AddCommand(listCommand(opts))
	cmd.AddCommand(showCommand(opts))
	cmd.AddCommand(validateCommand(opts))
	cmd.AddCommand(newCommand(opts))
	cmd.AddCommand(importCommand(opts))
	cmd.AddCommand(watchCommand(opts))
	cmd.AddCommand(versionCommand())

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Short: "Show the version information",
		Use:   "version",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		},
	}
}
