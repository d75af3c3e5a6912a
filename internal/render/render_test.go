package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/dnc/editdist"
	"github.com/katalvlaran/dnc/expr"
	"github.com/katalvlaran/dnc/internal/fixtures"
	"github.com/katalvlaran/dnc/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_Layout checks labels and values appear row by row.
func TestTable_Layout(t *testing.T) {
	x, y := editdist.Runes("baz"), editdist.Runes("fbar")
	tab := editdist.BuildTable(x, y)
	_, s := editdist.Align(x, y)

	out := render.Table(x, y, tab, s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, tab.Rows()+1, "header plus one line per row")

	assert.Equal(t, []string{"ε", "f", "b", "a", "r"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"ε", "0", "1", "2", "3", "4"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"z", "3", "3", "3", "2", "2"}, strings.Fields(lines[4]))
}

// TestTable_NoPath renders without a script.
func TestTable_NoPath(t *testing.T) {
	tab := editdist.BuildTable([]rune{}, []rune{})
	out := render.Table(nil, nil, tab, nil)
	assert.Equal(t, []string{"ε", "ε", "0"}, strings.Fields(out))
}

// TestTokens lists kinds and texts.
func TestTokens(t *testing.T) {
	out := render.Tokens(expr.Tokenize("(1+2)"))
	assert.Equal(t, "lparen:( number:1 operator:+ number:2 rparen:)", out)
}

// TestValue covers success and failure lines.
func TestValue(t *testing.T) {
	assert.Contains(t, render.Value("7 / 2", 3.5, nil), "7 / 2 = 3.5")
	assert.Contains(t, render.Value("1 / 0", 0, errors.New("boom")), "1 / 0  boom")
}

// TestAlignment renders the one-line summary.
func TestAlignment(t *testing.T) {
	out := render.Alignment("baz", "fbar", 2, editdist.Script{editdist.Delete, editdist.Match, editdist.Match, editdist.Substitute})
	assert.Contains(t, out, `"baz" → "fbar"  distance=2  script=D==X`)
}

// TestReport shows wants only for failures and a summary line.
func TestReport(t *testing.T) {
	rep := fixtures.Report{Results: []fixtures.Result{
		{Kind: fixtures.KindExpression, Input: "(2 + 3)", Got: "5", Want: "5", OK: true},
		{Kind: fixtures.KindAlignment, Input: `"a" → "b"`, Got: "1 X", Want: "2", OK: false},
	}}
	out := render.Report(rep)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[0], "want")
	assert.Contains(t, lines[1], "want 2")
	assert.Contains(t, lines[2], "1/2 passed")
}
