package editdist

import "fmt"

// BuildTable — Levenshtein dynamic program
//
// Description:
//
//	Fills the table D where D[i][j] is the minimum number of single-element
//	insertions, deletions and substitutions turning x[:i] into y[:j].
//
// Algorithm Outline:
//  1. Let n = len(x), m = len(y). Allocate (n+1)x(m+1) table D.
//  2. Initialize:
//     D[i][0] = i for i=0..n
//     D[0][j] = j for j=0..m
//  3. For i = 1..n, j = 1..m (row-major, top-left to bottom-right):
//     diag = D[i-1][j-1] + [x[i-1] != y[j-1]]
//     left = D[i][j-1] + 1
//     up   = D[i-1][j] + 1
//     D[i][j] = min(diag, left, up)
//
// Either sequence may be empty.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func BuildTable[T comparable](x, y []T) Table {
	n, m := len(x), len(y)

	// one backing slice keeps the rows contiguous
	cells := make([]int, (n+1)*(m+1))
	t := make(Table, n+1)
	for i := range t {
		t[i] = cells[i*(m+1) : (i+1)*(m+1) : (i+1)*(m+1)]
		t[i][0] = i
	}
	for j := 0; j <= m; j++ {
		t[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			t[i][j] = min(
				t[i-1][j-1]+mismatch(x[i-1], y[j-1]),
				t[i][j-1]+1,
				t[i-1][j]+1,
			)
		}
	}

	return t
}

// Distance returns the edit distance between x and y.
//
// Example:
//
//	Distance(Runes("baz"), Runes("fbar")) → 2 // insert 'f', substitute z→r
func Distance[T comparable](x, y []T) int {
	return BuildTable(x, y).Distance()
}

// DistanceWith computes the edit distance under opts.
// TwoRows returns the same value as FullMatrix with O(len(y)) memory.
func DistanceWith[T comparable](x, y []T, opts Options) (int, error) {
	switch opts.MemoryMode {
	case FullMatrix:
		return Distance(x, y), nil
	case TwoRows:
		return rollingDistance(x, y), nil
	default:
		return 0, fmt.Errorf("%w: memory mode %d", ErrBadOptions, int(opts.MemoryMode))
	}
}

// rollingDistance evaluates the same recurrence as BuildTable keeping two rows.
func rollingDistance[T comparable](x, y []T) int {
	m := len(y)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(x); i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			curr[j] = min(
				prev[j-1]+mismatch(x[i-1], y[j-1]),
				curr[j-1]+1,
				prev[j]+1,
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// Backtrack reconstructs one minimum-cost script from a table built by
// BuildTable(x, y).
//
// The walk starts at (n, m). At every cell it compares
//
//	left = D[i][j-1] + 1                      (Delete)
//	diag = D[i-1][j-1] + [x[i-1] != y[j-1]]   (Match / Substitute)
//	up   = D[i-1][j] + 1                      (Insert)
//
// and picks Delete first, switching to the diagonal only when it is
// strictly cheaper, then to Insert only when that is strictly cheaper
// than the current pick. The fixed priority makes the output
// deterministic when several alignments share the minimum cost.
// Reaching row 0 emits j Deletes; reaching column 0 emits i Inserts.
// The steps are collected destination-first and reversed before return.
//
// The script length lies in [max(n, m), n+m].
//
// Errors:
//   - ErrTableShape — t is not (n+1)×(m+1). Cell contents are trusted.
//
// Complexity: O(n+m) time and memory.
func Backtrack[T comparable](t Table, x, y []T) (Script, error) {
	n, m := len(x), len(y)
	if t.Rows() != n+1 || t.Cols() != m+1 {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrTableShape, t.Rows(), t.Cols(), n+1, m+1)
	}

	path := make(Script, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		op, dist := Delete, t[i][j-1]+1
		if diag := t[i-1][j-1] + mismatch(x[i-1], y[j-1]); diag < dist {
			op, dist = Match, diag
			if x[i-1] != y[j-1] {
				op = Substitute
			}
		}
		if up := t[i-1][j] + 1; up < dist {
			op = Insert
		}

		path = append(path, op)
		switch op {
		case Delete:
			j--
		case Insert:
			i--
		default:
			i--
			j--
		}
	}
	for ; j > 0; j-- {
		path = append(path, Delete)
	}
	for ; i > 0; i-- {
		path = append(path, Insert)
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// Align builds the table and returns the distance with one optimal script.
func Align[T comparable](x, y []T) (int, Script) {
	t := BuildTable(x, y)
	// the table is built from x and y, so the shape always matches
	s, _ := Backtrack(t, x, y)

	return t.Distance(), s
}

// Apply replays s against x and returns the resulting sequence, which
// equals y for any script produced by Backtrack(BuildTable(x, y), x, y).
// y supplies the elements emitted by Delete and Substitute.
//
// Errors:
//   - ErrScriptMismatch — s runs past either sequence, leaves elements
//     unconsumed, or marks unequal elements as Match.
func Apply[T comparable](x, y []T, s Script) ([]T, error) {
	out := make([]T, 0, len(y))
	i, j := 0, 0
	for k, op := range s {
		switch op {
		case Delete:
			if j >= len(y) {
				return nil, fmt.Errorf("%w: step %d (%s) past end of y", ErrScriptMismatch, k, op)
			}
			out = append(out, y[j])
			j++
		case Insert:
			if i >= len(x) {
				return nil, fmt.Errorf("%w: step %d (%s) past end of x", ErrScriptMismatch, k, op)
			}
			i++
		case Match, Substitute:
			if i >= len(x) || j >= len(y) {
				return nil, fmt.Errorf("%w: step %d (%s) past end of input", ErrScriptMismatch, k, op)
			}
			if op == Match && x[i] != y[j] {
				return nil, fmt.Errorf("%w: step %d matches unequal elements", ErrScriptMismatch, k)
			}
			out = append(out, y[j])
			i++
			j++
		default:
			return nil, fmt.Errorf("%w: step %d has unknown op %q", ErrScriptMismatch, k, byte(op))
		}
	}
	if i != len(x) || j != len(y) {
		return nil, fmt.Errorf("%w: consumed %d/%d of x and %d/%d of y", ErrScriptMismatch, i, len(x), j, len(y))
	}

	return out, nil
}

// Runes converts a string into the rune sequence used for character-level distances.
func Runes(s string) []rune { return []rune(s) }

// mismatch returns 1 when a != b and 0 otherwise.
func mismatch[T comparable](a, b T) int {
	if a != b {
		return 1
	}

	return 0
}
