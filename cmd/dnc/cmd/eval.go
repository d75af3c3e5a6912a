package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dnc/expr"
	"github.com/katalvlaran/dnc/internal/fixtures"
	"github.com/katalvlaran/dnc/internal/render"
)

func newEvalCmd(verbose *bool) *cobra.Command {
	var (
		prefix  bool
		grammar string
		ieee    bool
	)

	c := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate arithmetic expressions",
		Example: `  dnc eval "((2 + 2) * 3)"
  dnc eval --prefix "+ * 2 3 1" "~ 2"
  dnc eval --grammar paired "2 - 3 - 4"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := expr.DefaultOptions()
			if prefix {
				opts.Dialect = expr.Prefix
			}
			g, err := fixtures.ParseGrammar(grammar)
			if err != nil {
				return err
			}
			opts.Grammar = g
			if ieee {
				opts.DivZero = expr.DivZeroIEEE
			}

			failed := 0
			for _, text := range args {
				tokens := expr.Tokenize(text)
				printVerbose(cmd, verbose, "%s\n", render.Tokens(tokens))

				v, err := expr.EvaluateTokens(tokens, opts)
				if err != nil {
					failed++
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Value(text, v, err))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(args))
			}

			return nil
		},
	}
	c.Flags().BoolVar(&prefix, "prefix", false, "use prefix notation ('~' negates)")
	c.Flags().StringVar(&grammar, "grammar", "right", "infix grouping: right or paired")
	c.Flags().BoolVar(&ieee, "ieee", false, "division by zero yields ±Inf instead of an error")

	return c
}
