// Package editdist computes the Levenshtein edit distance between two
// sequences of comparable elements and reconstructs one optimal alignment.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-element insertions, deletions and
//	substitutions that turn one sequence into another. It is used in:
//	  • Spell checking & fuzzy search
//	  • Diffing token streams
//	  • DNA / protein sequence comparison
//
// ✨ Key features:
//   - generic over any comparable element type ([]rune, []string, []int…)
//   - full (n+1)×(m+1) table for inspection and alignment recovery
//   - rolling two-row mode for distance-only queries (O(m) memory)
//   - deterministic backtracking with a fixed tie-break order
//     (Delete, then Match/Substitute, then Insert)
//   - Apply replays a script so any alignment can be verified
//
// ⚙️ Usage:
//
//	x, y := editdist.Runes("baz"), editdist.Runes("fbar")
//
//	t := editdist.BuildTable(x, y)
//	fmt.Println(t.Distance())         // 2
//
//	s, _ := editdist.Backtrack(t, x, y)
//	fmt.Println(s)                    // D==X
//
//	out, _ := editdist.Apply(x, y, s)
//	fmt.Println(string(out))          // fbar
//
// Op tags follow the table walk: Delete steps left and consumes an element
// of y, Insert steps up and consumes an element of x. Replaying a script
// against x therefore emits y's element on Delete and drops x's element
// on Insert.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package editdist
