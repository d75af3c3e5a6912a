// Package cmd implements the dnc command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Tests build a fresh tree per case.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dnc",
		Short: "Divide-and-conquer expression evaluation and edit distance",
		Long: `dnc replays the classic recursive algorithms on literal inputs:

  eval  - evaluate infix or prefix arithmetic expressions
  dist  - edit distance, alignment script and DP table of two strings
  demo  - replay a fixture file and check every expected result`,
		SilenceUsage: true,
	}
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print tokens and tables")

	root.AddCommand(newEvalCmd(&verbose), newDistCmd(&verbose), newDemoCmd(&verbose), newVersionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// printVerbose writes to the command output only under --verbose.
func printVerbose(cmd *cobra.Command, verbose *bool, format string, args ...any) {
	if *verbose {
		fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	}
}
