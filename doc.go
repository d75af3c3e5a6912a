// Package dnc collects recursive divide-and-conquer algorithms over
// discrete grammars and tables, each usable on its own.
//
// 🚀 What is inside?
//
//	expr/     — tokenizer and single-pass recursive-descent evaluator for
//	            infix ("((2 + 2) * 3)") and prefix ("+ * 2 3 1", "~ 2")
//	            arithmetic, strict about trailing tokens
//	editdist/ — Levenshtein table, distance, deterministic backtracked
//	            alignment script and script replay, generic over element type
//
// ✨ Why?
//
//   - Pure functions – no shared state, no logging, sentinel errors only
//   - Deterministic – fixed tie-break order, fixed grammar grouping
//   - Inspectable – every table and token stream is a plain value
//
// The dnc command (cmd/dnc) replays literal inputs from a fixture file and
// prints tables, scripts and values for manual inspection:
//
//	go run ./cmd/dnc dist --table baz fbar
//	go run ./cmd/dnc eval "2 - 3 - 4"
//	go run ./cmd/dnc demo
package dnc
