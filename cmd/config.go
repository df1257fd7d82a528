package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/projscope/pkg/configs"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage projscope configuration",
		Long:    `projscope config allows you to view, validate and create the projscope configuration file.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate projscope configuration",
		Long:  `projscope config validate loads the configuration file and environment variables and checks the analyze section.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 配置在 PersistentPreRunE 中已经加载并校验，走到这里说明配置有效
			fileUsed := projscopeCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no config file found, using defaults")
				return nil
			}
			log.Info().Msgf("Config file used: %s", fileUsed)
			fmt.Fprintf(cmd.OutOrStdout(), "config file %s is valid\n", fileUsed)
			return nil
		},
		Aliases: []string{"check", "verify"},
		Args:    cobra.NoArgs,
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List projscope configuration",
		Long: strings.TrimSpace(`
projscope config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - analyze: Default bounds and output format of the analyze command

Examples:
  projscope config list                    # Show all configuration (viper raw data)
  projscope config list --all              # Show all configuration with defaults
  projscope config list analyze            # Show only analyze settings
  projscope config list --format yaml      # Output in YAML format
  projscope config list app --all --json   # Show app config with defaults in JSON`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format, err := configs.GetOutputFormatFromFlags(cmd, configs.FormatYAML)
			if err != nil {
				return err
			}
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(projscopeCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("error getting config section: %w", err)
			}
			return configs.OutputData(data, format, cmd.OutOrStdout())
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize projscope configuration",
		Long: strings.TrimSpace(`
projscope config init creates a new configuration file with default settings.

Examples:
  projscope config init                                 # Create .projscope.yaml in current directory
  projscope config init --path ~/.config/projscope/projscope.yaml
  projscope config init --format toml                   # Create .projscope.toml
  projscope config init --force                         # Overwrite an existing file`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")
			force, _ := cmd.Flags().GetBool("force")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}
			if path == "" {
				path = configs.DefaultConfigPath(format)
			}

			if err := configs.CreateDefaultConfig(path, format, force); err != nil {
				return err
			}
			log.Info().Msgf("Config file created successfully: %s", path)
			return nil
		},
		Args: cobra.NoArgs,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join([]string{"yaml", "json", "toml", "text"}, ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
	configInitCmd.Flags().Bool("force", false, "Overwrite the config file if it already exists")
}
