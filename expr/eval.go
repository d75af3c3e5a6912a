package expr

import (
	"fmt"
	"strconv"
)

// Evaluate tokenizes text and evaluates it with DefaultOptions.
//
// Example:
//
//	Evaluate("((2 + 2) * 3)") → 12
//	Evaluate("2 - 3 - 4")     → 3   // 2 - (3 - 4)
//	Evaluate("(2+2)5")        → ErrTrailingTokens
func Evaluate(text string) (float64, error) {
	return EvaluateTokens(Tokenize(text), DefaultOptions())
}

// EvaluateWith tokenizes text and evaluates it under opts.
func EvaluateWith(text string, opts Options) (float64, error) {
	return EvaluateTokens(Tokenize(text), opts)
}

// EvaluateTokens evaluates an already tokenized expression.
//
// The top-level rule must consume every token; otherwise the result is
// discarded and a *ParseError wrapping ErrTrailingTokens is returned.
// Parse errors take precedence over division by zero: the whole input is
// parsed before a recorded zero divisor is reported, so "(1 / 0" yields
// ErrUnbalancedParen and "(1 / 0)5" yields ErrTrailingTokens.
// On any failure the returned value is 0.
func EvaluateTokens(tokens []Token, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens, opts: opts}
	var (
		val  float64
		next int
		err  error
	)
	if opts.Dialect == Prefix {
		val, next, err = p.prefixExpr(0)
	} else {
		val, next, err = p.expr(0)
	}
	if err != nil {
		return 0, err
	}
	if next != len(tokens) {
		return 0, p.fail(next, ErrTrailingTokens)
	}
	if p.divErr != nil {
		return 0, p.divErr
	}

	return val, nil
}

// parser holds the inputs shared by every rule.
// The cursor is never stored: each rule receives it and returns the next one.
// divErr keeps the first zero division under DivZeroError until parsing ends.
type parser struct {
	tokens []Token
	opts   Options
	divErr error
}

// fail builds a *ParseError for position i.
func (p *parser) fail(i int, sentinel error) error {
	pe := &ParseError{Pos: i, Err: sentinel}
	if i < len(p.tokens) {
		pe.Token = p.tokens[i].Text
	}

	return pe
}

// isOperator reports whether the token at i is a binary operator.
func (p *parser) isOperator(i int) bool {
	return i < len(p.tokens) && p.tokens[i].Kind == Operator
}

// expr parses EXPR := TERM (op EXPR)? or, under PairedTerms,
// EXPR := BINOP (op EXPR)?.
func (p *parser) expr(i int) (float64, int, error) {
	var (
		lhs float64
		err error
	)
	if p.opts.Grammar == PairedTerms {
		lhs, i, err = p.binop(i)
	} else {
		lhs, i, err = p.term(i)
	}
	if err != nil {
		return 0, i, err
	}
	if !p.isOperator(i) {
		return lhs, i, nil
	}

	opPos := i
	rhs, i, err := p.expr(i + 1)
	if err != nil {
		return 0, i, err
	}
	val, err := p.apply(opPos, lhs, rhs)

	return val, i, err
}

// binop parses BINOP := TERM (op TERM)?.
func (p *parser) binop(i int) (float64, int, error) {
	lhs, i, err := p.term(i)
	if err != nil {
		return 0, i, err
	}
	if !p.isOperator(i) {
		return lhs, i, nil
	}

	opPos := i
	rhs, i, err := p.term(i + 1)
	if err != nil {
		return 0, i, err
	}
	val, err := p.apply(opPos, lhs, rhs)

	return val, i, err
}

// term parses TERM := '(' EXPR ')' | integer.
func (p *parser) term(i int) (float64, int, error) {
	if i >= len(p.tokens) {
		return 0, i, p.fail(i, ErrUnexpectedEOF)
	}

	switch p.tokens[i].Kind {
	case LParen:
		val, next, err := p.expr(i + 1)
		if err != nil {
			return 0, next, err
		}
		if next >= len(p.tokens) || p.tokens[next].Kind != RParen {
			return 0, next, p.fail(next, ErrUnbalancedParen)
		}

		return val, next + 1, nil
	case Number:
		return p.literal(i)
	default:
		return 0, i, p.fail(i, ErrUnexpectedToken)
	}
}

// prefixExpr parses EXPR := op EXPR EXPR | TERM.
func (p *parser) prefixExpr(i int) (float64, int, error) {
	if i >= len(p.tokens) {
		return 0, i, p.fail(i, ErrUnexpectedEOF)
	}
	if p.tokens[i].Kind != Operator {
		return p.prefixTerm(i)
	}

	opPos := i
	lhs, i, err := p.prefixExpr(i + 1)
	if err != nil {
		return 0, i, err
	}
	rhs, i, err := p.prefixExpr(i)
	if err != nil {
		return 0, i, err
	}
	val, err := p.apply(opPos, lhs, rhs)

	return val, i, err
}

// prefixTerm parses TERM := '~' integer | integer.
func (p *parser) prefixTerm(i int) (float64, int, error) {
	switch p.tokens[i].Kind {
	case Negate:
		if i+1 >= len(p.tokens) {
			return 0, i + 1, p.fail(i+1, ErrUnexpectedEOF)
		}
		if p.tokens[i+1].Kind != Number {
			return 0, i + 1, p.fail(i+1, ErrUnexpectedToken)
		}
		val, next, err := p.literal(i + 1)

		return -val, next, err
	case Number:
		return p.literal(i)
	default:
		return 0, i, p.fail(i, ErrUnexpectedToken)
	}
}

// literal converts the Number token at i.
func (p *parser) literal(i int) (float64, int, error) {
	n, err := strconv.ParseInt(p.tokens[i].Text, 10, 64)
	if err != nil {
		return 0, i, p.fail(i, ErrBadLiteral)
	}

	return float64(n), i + 1, nil
}

// apply computes lhs op rhs for the operator token at opPos.
func (p *parser) apply(opPos int, lhs, rhs float64) (float64, error) {
	switch p.tokens[opPos].Text {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		if rhs == 0 && p.opts.DivZero == DivZeroError && p.divErr == nil {
			p.divErr = fmt.Errorf("%w at token %d", ErrDivisionByZero, opPos)
		}

		return lhs / rhs, nil
	default:
		// Reachable only through hand-built tokens passed to EvaluateTokens.
		return 0, p.fail(opPos, ErrUnexpectedToken)
	}
}
