package syntax

import "fmt"

// Lexer is responsible for scanning the input string and producing tokens.
type Lexer struct {
	input    string
	position int
	line     int
	lineOff  int // offset of the start of the current line
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens.
// Whitespace and '--' line comments are skipped.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case c == '\n':
			l.position++
			l.line++
			l.lineOff = l.position

		case c == ' ' || c == '\t' || c == '\r':
			l.position++

		case c == '-' && l.peekAt(1) == '-':
			l.skipLineComment()

		case c == '-' && l.peekAt(1) == '>':
			l.addToken(TokenArrow, "->")
			l.position += 2

		case c == '=' && l.peekAt(1) == '>':
			l.addToken(TokenFatArrow, "=>")
			l.position += 2

		case c == '/' && l.peekAt(1) == '\\':
			l.addToken(TokenAnd, `/\`)
			l.position += 2

		case c == '\\' && l.peekAt(1) == '/':
			l.addToken(TokenOr, `\/`)
			l.position += 2

		case c == '<' && l.peekAt(1) == '-' && l.peekAt(2) == '>':
			l.addToken(TokenIff, "<->")
			l.position += 3

		case c == '~':
			l.addToken(TokenTilde, "~")
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(")
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")")
			l.position++

		case c == ':' && l.peekAt(1) == '=':
			l.addToken(TokenAssign, ":=")
			l.position += 2

		case c == ':':
			l.addToken(TokenColon, ":")
			l.position++

		case isIdentStart(c):
			l.lexIdent()

		default:
			return nil, &ParseError{
				Msg: fmt.Sprintf("unexpected character %q", c),
				Pos: l.pos(),
			}
		}
	}

	l.addToken(TokenEOF, "")
	return l.tokens, nil
}

// lexIdent scans consecutive identifier characters to produce one TokenIdent.
func (l *Lexer) lexIdent() {
	start := l.position
	startPos := l.pos()
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	l.tokens = append(l.tokens, Token{
		Type:  TokenIdent,
		Value: l.input[start:l.position],
		Pos:   startPos,
	})
}

// skipLineComment consumes a '--' comment up to, but not including,
// the trailing newline.
func (l *Lexer) skipLineComment() {
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.position++
	}
}

func (l *Lexer) peekAt(ahead int) byte {
	if l.position+ahead >= len(l.input) {
		return 0
	}
	return l.input[l.position+ahead]
}

func (l *Lexer) pos() Pos {
	return Pos{Line: l.line, Column: l.position - l.lineOff + 1}
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string) {
	l.tokens = append(l.tokens, Token{
		Type:  tokenType,
		Value: value,
		Pos:   l.pos(),
	})
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9') || c == '\''
}
