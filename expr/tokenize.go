package expr

import "strings"

// separated lists every character that always forms a token of its own.
const separated = "()+-*/~"

// Tokenize splits text into tokens.
//
// Each of ( ) + - * / ~ becomes its own token regardless of surrounding
// whitespace; everything else is split on whitespace. Words that are not a
// run of decimal digits are classified Illegal rather than rejected, so
// Tokenize never fails and malformed input surfaces as a *ParseError
// during evaluation.
//
// Example:
//
//	Tokenize("(2+2)*3") → ["(" "2" "+" "2" ")" "*" "3"]
//
// Complexity: O(len(text)).
func Tokenize(text string) []Token {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if strings.ContainsRune(separated, r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Kind: classify(w), Text: w, Pos: i}
	}

	return tokens
}

// classify maps a whitespace-free word to its TokenKind.
func classify(w string) TokenKind {
	switch w {
	case "(":
		return LParen
	case ")":
		return RParen
	case "+", "-", "*", "/":
		return Operator
	case "~":
		return Negate
	}
	for i := 0; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return Illegal
		}
	}

	return Number
}
