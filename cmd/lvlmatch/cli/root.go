// Package cli implements the lvlmatch command tree.
package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:          "lvlmatch",
		Short:        "Maximum-weight matching toolbox: solve missions, generate them, benchmark the matchers.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSolveCommand(ctx))
	rootCmd.AddCommand(newGenCommand())
	rootCmd.AddCommand(newBenchCommand(ctx))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
