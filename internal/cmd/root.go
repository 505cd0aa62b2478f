// Package cmd implements the fixedcsv command line.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "fixedcsv",
		Short:        "Inspect CSV files with a fixed number of columns.",
		Long:         "Load CSV files whose column count is known up front and print their rows.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(getFlag(cmd, "verbose"))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if !getFlag(cmd, "version") {
				_ = cmd.Help()
				return
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "fixedcsv ")
			if Version != "" {
				// Built via "make"
				fmt.Fprintf(out, "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Fprintf(out, "%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Fprintf(out, "(unknown version)")
			}
			fmt.Fprintln(out)
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("version", false, "print version and exit")
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

// Execute runs the command line and exits with a non-zero status on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func configureLogging(verbose bool) {
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
