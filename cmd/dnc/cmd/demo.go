package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dnc/internal/fixtures"
	"github.com/katalvlaran/dnc/internal/render"
)

func newDemoCmd(verbose *bool) *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "demo",
		Short: "Replay fixtures and check every expected result",
		Long: `demo evaluates every expression and aligns every string pair of a
fixture file (.yaml, .yml or .toml). Without --fixtures the built-in
literal inputs are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				set fixtures.Set
				err error
			)
			if path == "" {
				set, err = fixtures.Default()
			} else {
				set, err = fixtures.Load(path)
			}
			if err != nil {
				return err
			}
			printVerbose(cmd, verbose, "%d expressions, %d alignments\n", len(set.Expressions), len(set.Alignments))

			rep := fixtures.Run(set)
			fmt.Fprintln(cmd.OutOrStdout(), render.Report(rep))
			if n := rep.Failed(); n > 0 {
				return fmt.Errorf("%d fixtures failed", n)
			}

			return nil
		},
	}
	c.Flags().StringVar(&path, "fixtures", "", "fixture file (.yaml, .yml, .toml)")

	return c
}
