package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/projscope/pkg/utils/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [config|report]",
	Short: "Print the JSON schema of the config file or the analysis report",
	Long: `
projscope schema prints a JSON schema to stdout.

Examples:
  projscope schema            # schema of the config file
  projscope schema report     # schema of 'projscope analyze --json'`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "report"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && args[0] == "report" {
			return schema.GenReportSchema(cmd.OutOrStdout())
		}
		return schema.GenConfigSchema(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
