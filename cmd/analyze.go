package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/projscope/pkg/configs"
	"github.com/yeisme/projscope/pkg/project"
	"github.com/yeisme/projscope/pkg/style"
)

var (
	analyzeOptions project.AnalyzeOptions
	analyzeNoColor bool

	analyzeCmd = &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a project directory and print a structure summary",
		Long: strings.TrimSpace(`
projscope analyze walks a project directory and reports its type, file distribution,
entry points, configuration files, key dependencies, architecture notes and a bounded
directory tree. The directory defaults to the current one.

Examples:
  # 1. Plain text summary of the current directory
  projscope analyze

  # 2. Styled output in the terminal
  projscope analyze ./webapp --format pretty

  # 3. Machine readable report
  projscope analyze ./webapp --json
  projscope analyze ./webapp --yaml

  # 4. Markdown (rendered with glamour in a terminal)
  projscope analyze . -f markdown

  # 5. Bounds and exclusions
  projscope analyze . --max-depth 8 --tree-depth 2 --tree-entries 10
  projscope analyze . -e "**/testdata" -e "*.min.js"

Notes:
  - node_modules, .git, __pycache__, venv, dist, build and similar directories are never walked.
  - Flags override the "analyze" section of the config file.`),
		Aliases: []string{"a"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveAnalyzeOptions(cmd, projscopeCtx.Config.Analyze)
			if err != nil {
				return err
			}
			style.SetNoColor(analyzeNoColor || !projscopeCtx.Config.Analyze.Color)

			if err := project.ExecuteAnalyzeCommand(projscopeCtx, opts, args, cmd.OutOrStdout()); err != nil {
				log.Debug().Err(err).Strs("args", args).Msg("failed to analyze project")
				return err
			}
			return nil
		},
	}
)

// resolveAnalyzeOptions 以配置文件为基础，命令行中显式设置的标志覆盖对应字段
func resolveAnalyzeOptions(cmd *cobra.Command, cfg configs.AnalyzeConfig) (project.AnalyzeOptions, error) {
	opts := project.AnalyzeOptions{Options: cfg.Options}

	fallback, err := configs.ParseOutputFormat(cfg.Format)
	if err != nil {
		return opts, err
	}
	if opts.Format, err = configs.GetOutputFormatFromFlags(cmd, fallback); err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		opts.MaxDepth = analyzeOptions.MaxDepth
	}
	if flags.Changed("tree-depth") {
		opts.TreeDepth = analyzeOptions.TreeDepth
	}
	if flags.Changed("tree-entries") {
		opts.TreeEntries = analyzeOptions.TreeEntries
	}
	if flags.Changed("exclude") {
		opts.Exclude = append(append([]string{}, cfg.Exclude...), analyzeOptions.Exclude...)
	}
	return opts, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	analyzeCmd.Flags().Bool("json", false, "Output in JSON format")
	analyzeCmd.Flags().Bool("yaml", false, "Output in YAML format")
	analyzeCmd.Flags().Bool("toml", false, "Output in TOML format")
	analyzeCmd.Flags().Bool("text", false, "Output in plain text format")
	analyzeCmd.Flags().BoolVar(&analyzeNoColor, "no-color", false, "Disable color output")

	analyzeCmd.Flags().IntVar(&analyzeOptions.MaxDepth, "max-depth", 0, "maximum directory depth for file statistics (default 5)")
	analyzeCmd.Flags().IntVar(&analyzeOptions.TreeDepth, "tree-depth", 0, "levels shown in the directory tree (default 3)")
	analyzeCmd.Flags().IntVar(&analyzeOptions.TreeEntries, "tree-entries", 0, "entries shown per directory in the tree (default 20)")
	analyzeCmd.Flags().StringArrayVarP(&analyzeOptions.Exclude, "exclude", "e", nil, "glob pattern to exclude (repeatable, supports **)")
}
