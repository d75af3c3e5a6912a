package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// TestEval prints one line per expression.
func TestEval(t *testing.T) {
	out, err := run(t, "eval", "((2 + 2) * 3)", "2 - 3 - 4")
	require.NoError(t, err)
	assert.Contains(t, out, "((2 + 2) * 3) = 12")
	assert.Contains(t, out, "2 - 3 - 4 = 3")
}

// TestEval_Flags covers prefix, grammar and division flags.
func TestEval_Flags(t *testing.T) {
	out, err := run(t, "eval", "--prefix", "+ * 2 3 1")
	require.NoError(t, err)
	assert.Contains(t, out, "= 7")

	out, err = run(t, "eval", "--grammar", "paired", "2 - 3 - 4")
	require.NoError(t, err)
	assert.Contains(t, out, "= -5")

	out, err = run(t, "eval", "--ieee", "1 / 0")
	require.NoError(t, err)
	assert.Contains(t, out, "= +Inf")

	_, err = run(t, "eval", "--grammar", "left", "1")
	assert.Error(t, err)
}

// TestEval_Failure reports malformed input and returns an error.
func TestEval_Failure(t *testing.T) {
	out, err := run(t, "eval", "(2+2)5")
	require.Error(t, err)
	assert.Contains(t, out, "trailing tokens")
}

// TestEval_Verbose prints the token stream.
func TestEval_Verbose(t *testing.T) {
	out, err := run(t, "eval", "-v", "(1+2)")
	require.NoError(t, err)
	assert.Contains(t, out, "lparen:(")
}

// TestVerbose_PerTree keeps --verbose scoped to the tree that parsed it.
func TestVerbose_PerTree(t *testing.T) {
	verboseTree := NewRootCmd()
	quietTree := NewRootCmd()

	var loud, quiet bytes.Buffer
	verboseTree.SetOut(&loud)
	verboseTree.SetArgs([]string{"-v", "eval", "(1+2)"})
	quietTree.SetOut(&quiet)
	quietTree.SetArgs([]string{"eval", "(1+2)"})

	require.NoError(t, verboseTree.Execute())
	require.NoError(t, quietTree.Execute())
	assert.Contains(t, loud.String(), "lparen:(")
	assert.NotContains(t, quiet.String(), "lparen:(")
	assert.Contains(t, quiet.String(), "(1+2) = 3")
}

// TestDist prints distance, script and the table.
func TestDist(t *testing.T) {
	out, err := run(t, "dist", "--table", "baz", "fbar")
	require.NoError(t, err)
	assert.Contains(t, out, "distance=2")
	assert.Contains(t, out, "script=D==X")
	assert.Contains(t, out, "ε")

	_, err = run(t, "dist", "only-one")
	assert.Error(t, err)
}

// TestDemo_Default replays the embedded fixtures.
func TestDemo_Default(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "passed")
	assert.NotContains(t, out, "want")
}

// TestDemo_FileWithFailure loads a TOML file and reports the mismatch.
func TestDemo_FileWithFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.toml")
	doc := "[[alignments]]\nx = \"baz\"\ny = \"fbar\"\ndistance = 3\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "demo", "--fixtures", path)
	require.Error(t, err)
	assert.Contains(t, out, "want 3")
	assert.Contains(t, out, "0/1 passed")

	_, err = run(t, "demo", "--fixtures", filepath.Join(t.TempDir(), "f.json"))
	assert.Error(t, err)
}

// TestVersion prints the version banner.
func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dnc v"+Version)
}
