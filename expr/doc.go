// Package expr tokenizes and evaluates small arithmetic expressions with a
// recursive-descent parser that computes while it consumes tokens.
//
// 🚀 What is supported?
//
//	Two dialects share one tokenizer:
//	  • Infix  — integers, + - * /, parentheses:   "((2 + 2) * 3)"  → 12
//	  • Prefix — operator first, "~" negates:      "+ * 2 3 1"      → 7
//	                                               "~ 2"            → -2
//
// ✨ Key features:
//   - single pass: every grammar rule takes a cursor and returns
//     (value, next cursor), no parser state is shared between rules
//   - no backtracking: each rule commits after looking at one token
//   - strict: the whole token sequence must be consumed, so "(2+2)5"
//     is rejected instead of silently evaluating to 4
//   - "/" is real division; division by zero is an error by default
//     (DivZeroError) or IEEE ±Inf/NaN (DivZeroIEEE)
//
// Grammar (infix, default RightRecursive):
//
//	EXPR := TERM (op EXPR)?
//	TERM := '(' EXPR ')' | integer
//
// Every operator binds its right operand loosest, so subtraction and
// division associate to the right: "2 - 3 - 4" is 2 - (3 - 4) = 3.
//
// Grammar (infix, PairedTerms):
//
//	EXPR  := BINOP (op EXPR)?
//	BINOP := TERM (op TERM)?
//	TERM  := '(' EXPR ')' | integer
//
// The first two terms of a chain are paired, so "2 - 3 - 4" is
// (2 - 3) - 4 = -5 while "2 - 3 - 4 - 5" is (2 - 3) - (4 - 5) = 0.
//
// Grammar (prefix):
//
//	EXPR := op EXPR EXPR | TERM
//	TERM := '~' integer | integer
//
// ⚙️ Usage:
//
//	v, err := expr.Evaluate("(2 + 3) * 4")
//
//	opts := expr.DefaultOptions()
//	opts.Dialect = expr.Prefix
//	v, err = expr.EvaluateWith("- 10 ~ 4", opts) // 14
//
// Errors:
//
//	Malformed input yields a *ParseError whose Unwrap is one of
//	ErrUnexpectedEOF, ErrUnbalancedParen, ErrUnexpectedToken, ErrBadLiteral
//	or ErrTrailingTokens; errors.Is(err, ErrParse) matches all of them.
//
// Complexity: O(T) time, O(T) stack depth for T tokens.
package expr
