package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenKind tags the variant held by a Token.
type TokenKind int

// Token kinds, in the order the scanner tries them.
const (
	NumberToken TokenKind = iota + 1
	OperatorToken
	FunctionToken
	KeywordToken
	ConstantToken
	IdentifierToken
)

var tokenKindNames = [...]string{
	NumberToken:     "number",
	OperatorToken:   "operator",
	FunctionToken:   "function",
	KeywordToken:    "keyword",
	ConstantToken:   "constant",
	IdentifierToken: "identifier",
}

func (kind TokenKind) String() string {
	if int(kind) > 0 && int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("TokenKind(%d)", int(kind))
}

// Token is one lexical unit of input. Number and Constant tokens carry their
// Value; every kind carries the source Text it was scanned from.
type Token struct {
	Kind  TokenKind
	Value float64
	Text  string
}

func (tok Token) String() string {
	switch tok.Kind {
	case NumberToken, ConstantToken:
		return fmt.Sprintf("%v(%v)", tok.Kind, formatValue(tok.Value, -1))
	default:
		return fmt.Sprintf("%v(%v)", tok.Kind, tok.Text)
	}
}

const operatorRunes = "+-*/^"

var (
	functionNames = []string{"sin", "cos", "tan", "sqrt"}
	keywordNames  = []string{"print"}

	// Only these two constants are resolved while scanning; every other name
	// is left for the evaluator to look up.
	scanConstants = []struct {
		name  string
		value float64
	}{
		{"pi", math.Pi},
		{"e", math.E},
	}
)

// Tokenize scans src into a sequence of tokens. At each position the first
// matching alternative wins, in order: number, operator, function name,
// keyword, constant, identifier. So "sinh" scans as sin followed by the
// identifier h. Whitespace and any rune matching no alternative are skipped.
func Tokenize(src string) []Token {
	var tokens []Token
	for i := 0; i < len(src); {
		tok, n := scanToken(src[i:])
		if n > 0 {
			tokens = append(tokens, tok)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(src[i:])
		i += size
	}
	return tokens
}

// scanToken matches one token at the start of s, returning its width in
// bytes, or 0 if nothing matched.
func scanToken(s string) (Token, int) {
	if n := scanNumber(s); n > 0 {
		// digits with an optional fraction always parse
		val, _ := strconv.ParseFloat(s[:n], 64)
		return Token{Kind: NumberToken, Value: val, Text: s[:n]}, n
	}

	if strings.IndexByte(operatorRunes, s[0]) >= 0 {
		return Token{Kind: OperatorToken, Text: s[:1]}, 1
	}

	for _, name := range functionNames {
		if strings.HasPrefix(s, name) {
			return Token{Kind: FunctionToken, Text: name}, len(name)
		}
	}

	for _, name := range keywordNames {
		if strings.HasPrefix(s, name) {
			return Token{Kind: KeywordToken, Text: name}, len(name)
		}
	}

	for _, con := range scanConstants {
		if strings.HasPrefix(s, con.name) {
			return Token{Kind: ConstantToken, Value: con.value, Text: con.name}, len(con.name)
		}
	}

	if n := scanIdentifier(s); n > 0 {
		return Token{Kind: IdentifierToken, Text: s[:n]}, n
	}

	return Token{}, 0
}

// scanNumber matches `digits ( "." digits )?`; a trailing dot without digits
// is not part of the number.
func scanNumber(s string) int {
	n := scanDigits(s)
	if n == 0 {
		return 0
	}
	if n < len(s) && s[n] == '.' {
		if m := scanDigits(s[n+1:]); m > 0 {
			n += 1 + m
		}
	}
	return n
}

func scanDigits(s string) (n int) {
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	return n
}

// scanIdentifier matches a run of ASCII letters and underscores; other
// letters, like π, match no alternative and are skipped.
func scanIdentifier(s string) (n int) {
	for n < len(s) && isIdentByte(s[n]) {
		n++
	}
	return n
}

func isIdentByte(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
