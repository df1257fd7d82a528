// Package cmd provides the projscope command-line interface
package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/projscope/pkg/context"
	log2 "github.com/yeisme/projscope/pkg/utils/log"
	"github.com/yeisme/projscope/pkg/utils/version"
)

var (
	projscopeCtx *context.ProjscopeContext
	log          log2.Logger

	// Global flags
	globalFlags = context.GlobalFlags{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "projscope",
	Short: "projscope summarizes the structure of a software project",
	Long: strings.TrimSpace(`
projscope inspects a project directory and reports what kind of project it is:
file distribution by extension, entry points, configuration files, key dependencies,
architecture hints and a bounded directory tree.

Examples:
  projscope analyze .
  projscope analyze ~/src/webapp --format pretty
  projscope analyze . --json | jq .project_type`),
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return
		}
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := context.InitProjscopeContext(globalFlags)
		if err != nil {
			return err
		}
		projscopeCtx = ctx
		log = ctx.Logger

		if globalFlags.CPUProfile != "" {
			f, err := os.Create(globalFlags.CPUProfile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
		}
		if globalFlags.Trace != "" {
			f, err := os.Create(globalFlags.Trace)
			if err != nil {
				return fmt.Errorf("could not create trace file: %w", err)
			}
			if err := trace.Start(f); err != nil {
				return fmt.Errorf("could not start trace: %w", err)
			}
		}

		log.Debug().Msgf("Execute Command: %s %s", cmd.CommandPath(), strings.Join(os.Args[1:], " "))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if globalFlags.CPUProfile != "" {
			pprof.StopCPUProfile()
		}
		if globalFlags.Trace != "" {
			trace.Stop()
		}
	},
}

// Execute adds all child commands to the root command and runs it.
// Any returned error is printed by cobra on stderr and the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.CPUProfile, "cpu-profile", "", "write cpu profile to `file`")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Trace, "trace", "", "write execution trace to `file`")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
