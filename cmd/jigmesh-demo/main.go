// Command jigmesh-demo is a small harness for exercising the jigmesh
// packages from the command line: triangulating a polygon and finding the
// shortest path between two points inside it (spec.md's Appendix on a
// CLI harness). Flag plumbing follows the cobra convention used across the
// example pack (root command + subcommands registered in init).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jigmesh/jlog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "jigmesh-demo",
	Short: "Exercises the jigmesh half-edge mesh library from the command line",
}

func logger() jlog.Logger {
	if verbose {
		return jlog.Default()
	}
	return jlog.Nop()
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log mesh activity to stderr")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
