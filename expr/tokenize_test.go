package expr_test

import (
	"testing"

	"github.com/katalvlaran/dnc/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// texts extracts token texts for compact comparisons.
func texts(tokens []expr.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}

	return out
}

// TestTokenize_Separators checks that operators and parens split words
// with or without surrounding whitespace.
func TestTokenize_Separators(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", []string{}},
		{"Blank", "   \t\n", []string{}},
		{"Literal", "12", []string{"12"}},
		{"Tight", "(2+2)*3", []string{"(", "2", "+", "2", ")", "*", "3"}},
		{"Spaced", " ( 2 + 3 ) ", []string{"(", "2", "+", "3", ")"}},
		{"Prefix", "+ * 2 3 ~1", []string{"+", "*", "2", "3", "~", "1"}},
		{"MinusSplits", "-12", []string{"-", "12"}},
		{"TrailingGarbage", "(2+2)5", []string{"(", "2", "+", "2", ")", "5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, texts(expr.Tokenize(tc.in)))
		})
	}
}

// TestTokenize_Kinds verifies classification and positions.
func TestTokenize_Kinds(t *testing.T) {
	tokens := expr.Tokenize("(7 / ~ x)")
	require.Len(t, tokens, 6)

	wantKinds := []expr.TokenKind{
		expr.LParen, expr.Number, expr.Operator, expr.Negate, expr.Illegal, expr.RParen,
	}
	for i, tok := range tokens {
		assert.Equal(t, wantKinds[i], tok.Kind, "kind of token %d (%q)", i, tok.Text)
		assert.Equal(t, i, tok.Pos, "position of token %d", i)
	}
	assert.Equal(t, "illegal", expr.Illegal.String())
	assert.Equal(t, "negate", tokens[3].Kind.String())
}

// TestTokenize_NonDigitWordsAreIllegal ensures decimals and words never become numbers.
func TestTokenize_NonDigitWordsAreIllegal(t *testing.T) {
	for _, w := range []string{"1.5", "abc", "1e3", "0x10", "١"} {
		tokens := expr.Tokenize(w)
		require.Len(t, tokens, 1, w)
		assert.Equal(t, expr.Illegal, tokens[0].Kind, w)
	}
}
