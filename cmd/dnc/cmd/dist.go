package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dnc/editdist"
	"github.com/katalvlaran/dnc/internal/render"
)

func newDistCmd(verbose *bool) *cobra.Command {
	var showTable bool

	c := &cobra.Command{
		Use:     "dist X Y",
		Short:   "Edit distance and alignment script of two strings",
		Example: `  dnc dist --table baz fbar`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := editdist.Runes(args[0]), editdist.Runes(args[1])
			t := editdist.BuildTable(x, y)
			s, err := editdist.Backtrack(t, x, y)
			if err != nil {
				return fmt.Errorf("backtrack: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Alignment(args[0], args[1], t.Distance(), s))
			if showTable || *verbose {
				fmt.Fprintln(out, render.Table(x, y, t, s))
			}

			replay, err := editdist.Apply(x, y, s)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			printVerbose(cmd, verbose, "replay %q → %q\n", args[0], string(replay))

			return nil
		},
	}
	c.Flags().BoolVar(&showTable, "table", false, "print the DP table with the alignment path")

	return c
}
