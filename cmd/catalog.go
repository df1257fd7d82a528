package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/projscope/pkg/configs"
	"github.com/yeisme/projscope/pkg/project"
)

var (
	catalogOptions project.CatalogOptions

	catalogCmd = &cobra.Command{
		Use:   "catalog [query]",
		Short: "List the configuration and entry-point file names projscope recognizes",
		Long: strings.TrimSpace(`
projscope catalog prints the table of configuration files the analyzer reports,
optionally together with the entry-point candidates, fuzzy filtered by a query.

Examples:
  projscope catalog
  projscope catalog docker
  projscope catalog main --entry-points
  projscope catalog -i
  projscope catalog --json`),
		Aliases: []string{"cat", "known"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := configs.GetOutputFormatFromFlags(cmd, configs.FormatPretty)
			if err != nil {
				return err
			}
			opts := catalogOptions
			opts.Format = format
			if len(args) > 0 {
				opts.Query = args[0]
			}
			return project.ExecuteCatalogCommand(opts, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&catalogOptions.EntryPoints, "entry-points", false, "also list entry-point file names")
	catalogCmd.Flags().BoolVarP(&catalogOptions.Interactive, "interactive", "i", false, "pick one entry with an interactive fuzzy finder")
	catalogCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	catalogCmd.Flags().Bool("json", false, "Output in JSON format")
	catalogCmd.Flags().Bool("yaml", false, "Output in YAML format")
	catalogCmd.Flags().Bool("toml", false, "Output in TOML format")
	catalogCmd.Flags().Bool("text", false, "Output in plain text format")
}
