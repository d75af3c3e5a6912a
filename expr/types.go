// Package expr defines tokens, options and sentinel errors for the
// expression evaluator.
package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for expression parsing and evaluation.
var (
	// ErrParse matches every *ParseError through errors.Is.
	ErrParse = errors.New("expr: parse error")

	// ErrUnexpectedEOF indicates the token stream ended in the middle of a rule.
	ErrUnexpectedEOF = errors.New("expr: unexpected end of input")

	// ErrUnbalancedParen indicates a '(' that is not closed by a matching ')'.
	ErrUnbalancedParen = errors.New("expr: unbalanced parenthesis")

	// ErrUnexpectedToken indicates a token that cannot start a term or be an operator here.
	ErrUnexpectedToken = errors.New("expr: unexpected token")

	// ErrBadLiteral indicates an integer literal that does not fit in 64 bits.
	ErrBadLiteral = errors.New("expr: integer literal out of range")

	// ErrTrailingTokens indicates tokens left over after a complete expression.
	ErrTrailingTokens = errors.New("expr: trailing tokens after expression")

	// ErrDivisionByZero indicates a '/' with a zero right operand under DivZeroError.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrBadOptions indicates an unknown Dialect, Grammar or DivZeroPolicy value.
	ErrBadOptions = errors.New("expr: invalid options")
)

// TokenKind classifies a Token.
type TokenKind int

const (
	// Illegal is any word the evaluator does not understand.
	Illegal TokenKind = iota
	// Number is a decimal integer literal.
	Number
	// Operator is one of + - * /.
	Operator
	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// Negate is the prefix-dialect unary minus '~'.
	Negate
)

// String returns the lower-case name of the kind.
func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case LParen:
		return "lparen"
	case RParen:
		return "rparen"
	case Negate:
		return "negate"
	default:
		return "illegal"
	}
}

// Token is one lexical unit of an expression.
// Pos is the index of the token within the sequence returned by Tokenize.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// String renders the token as its source text.
func (t Token) String() string { return t.Text }

// Dialect selects the surface syntax.
type Dialect int

const (
	// Infix is "(a op b)" notation with parentheses.
	Infix Dialect = iota
	// Prefix is "op a b" notation with '~' as unary minus.
	Prefix
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Grammar selects how infix operator chains are grouped.
// It is ignored by the Prefix dialect, whose grouping is explicit.
type Grammar int

const (
	// RightRecursive: EXPR := TERM (op EXPR)?; "2 - 3 - 4" = 2 - (3 - 4).
	RightRecursive Grammar = iota
	// PairedTerms: EXPR := BINOP (op EXPR)?, BINOP := TERM (op TERM)?;
	// "2 - 3 - 4" = (2 - 3) - 4.
	PairedTerms
)

// String returns the grammar name.
func (g Grammar) String() string {
	switch g {
	case RightRecursive:
		return "right"
	case PairedTerms:
		return "paired"
	default:
		return fmt.Sprintf("Grammar(%d)", int(g))
	}
}

// DivZeroPolicy decides what '/' does with a zero right operand.
type DivZeroPolicy int

const (
	// DivZeroError fails the evaluation with ErrDivisionByZero.
	DivZeroError DivZeroPolicy = iota
	// DivZeroIEEE returns ±Inf (or NaN for 0/0) and keeps evaluating.
	DivZeroIEEE
)

// Options configures EvaluateWith and EvaluateTokens.
//
// Fields:
//   - Dialect — Infix (default) or Prefix.
//   - Grammar — RightRecursive (default) or PairedTerms; infix only.
//   - DivZero — DivZeroError (default) or DivZeroIEEE.
type Options struct {
	Dialect Dialect
	Grammar Grammar
	DivZero DivZeroPolicy
}

// DefaultOptions returns {Infix, RightRecursive, DivZeroError}.
func DefaultOptions() Options {
	return Options{
		Dialect: Infix,
		Grammar: RightRecursive,
		DivZero: DivZeroError,
	}
}

// validate rejects enum values outside the declared constants.
func (o Options) validate() error {
	if o.Dialect != Infix && o.Dialect != Prefix {
		return fmt.Errorf("%w: dialect %d", ErrBadOptions, int(o.Dialect))
	}
	if o.Grammar != RightRecursive && o.Grammar != PairedTerms {
		return fmt.Errorf("%w: grammar %d", ErrBadOptions, int(o.Grammar))
	}
	if o.DivZero != DivZeroError && o.DivZero != DivZeroIEEE {
		return fmt.Errorf("%w: division policy %d", ErrBadOptions, int(o.DivZero))
	}

	return nil
}

// ParseError reports malformed expression text.
//
// Pos is the index of the offending token (len(tokens) when the input ran
// out) and Token its text ("" at end of input). Err is one of the
// Err* parse sentinels.
type ParseError struct {
	Pos   int
	Token string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at token %d", e.Err, e.Pos)
	}

	return fmt.Sprintf("%v at token %d (%q)", e.Err, e.Pos, e.Token)
}

// Unwrap exposes the specific sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
