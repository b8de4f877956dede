// Package syntax implements the surface syntax of fitch: a lexer and
// recursive-descent parser for propositions, proof terms, and proof
// script files.
package syntax

import "fmt"

// TokenType defines the token kinds produced by the lexer.
type TokenType int

const (
	TokenIdent    TokenType = iota // identifiers and keywords
	TokenArrow                     // '->'
	TokenFatArrow                  // '=>'
	TokenAnd                       // '/\'
	TokenOr                        // '\/'
	TokenTilde                     // '~'
	TokenIff                       // '<->'
	TokenLParen                    // '('
	TokenRParen                    // ')'
	TokenColon                     // ':'
	TokenAssign                    // ':='
	TokenEOF                       // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenArrow:
		return "'->'"
	case TokenFatArrow:
		return "'=>'"
	case TokenAnd:
		return `'/\'`
	case TokenOr:
		return `'\/'`
	case TokenTilde:
		return "'~'"
	case TokenIff:
		return "'<->'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenColon:
		return "':'"
	case TokenAssign:
		return "':='"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Pos is a line/column position in the input, 1-based.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type  TokenType
	Value string
	Pos   Pos
}

// ParseError reports a syntax error with its position.
type ParseError struct {
	Msg string
	Pos Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
