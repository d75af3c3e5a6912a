// Package editdist defines operations, scripts, tables and options for
// edit-distance computation.
package editdist

import (
	"errors"
	"strings"
)

// Sentinel errors for edit-distance operations.
var (
	// ErrTableShape indicates a table whose dimensions are not (len(x)+1)×(len(y)+1).
	// It signals a caller bug: the table was built for different sequences.
	ErrTableShape = errors.New("editdist: table shape does not match sequences")

	// ErrScriptMismatch indicates a script that cannot be replayed on the given sequences.
	ErrScriptMismatch = errors.New("editdist: script does not transform x into y")

	// ErrBadOptions indicates an unknown MemoryMode.
	ErrBadOptions = errors.New("editdist: invalid options")
)

// Op is one step of an alignment.
//
// Tags follow the table-walk convention, where the walk runs over (i, j)
// with i indexing x and j indexing y:
//
//   - Delete     — (i, j) → (i, j-1): consumes y[j-1]; replay emits y[j-1].
//   - Insert     — (i, j) → (i-1, j): consumes x[i-1]; replay drops x[i-1].
//   - Match      — (i, j) → (i-1, j-1) with x[i-1] == y[j-1].
//   - Substitute — (i, j) → (i-1, j-1) with x[i-1] != y[j-1]; replay emits y[j-1].
type Op byte

const (
	Delete     Op = 'D'
	Insert     Op = 'I'
	Match      Op = '='
	Substitute Op = 'X'
)

// String returns the one-character tag.
func (o Op) String() string { return string(rune(o)) }

// Script is an alignment in source-to-destination order.
type Script []Op

// String joins the tags, e.g. "D==X".
func (s Script) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, op := range s {
		b.WriteByte(byte(op))
	}

	return b.String()
}

// Cost counts the non-Match steps. For a script returned by Backtrack it
// equals the edit distance.
func (s Script) Cost() int {
	c := 0
	for _, op := range s {
		if op != Match {
			c++
		}
	}

	return c
}

// Table is the (n+1)×(m+1) dynamic-programming grid.
// Cell [i][j] holds the edit distance between x[:i] and y[:j].
type Table [][]int

// Rows returns n+1.
func (t Table) Rows() int { return len(t) }

// Cols returns m+1, or 0 for an empty table.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}

	return len(t[0])
}

// Distance returns the bottom-right cell, or 0 for an empty table.
func (t Table) Distance() int {
	if len(t) == 0 || len(t[len(t)-1]) == 0 {
		return 0
	}
	last := t[len(t)-1]

	return last[len(last)-1]
}

// MemoryMode controls how DistanceWith stores the DP grid.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) table. Memory: O(n·m).
//   - TwoRows    — keep only the previous and current row. Memory: O(m).
//     Distance only; use BuildTable when an alignment is needed.
type MemoryMode int

const (
	// FullMatrix stores all rows.
	FullMatrix MemoryMode = iota
	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// Options configures DistanceWith.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns {MemoryMode: FullMatrix}.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}
