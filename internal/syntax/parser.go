package syntax

import (
	"fmt"

	"github.com/fitchlang/fitch/internal/logic"
	"github.com/fitchlang/fitch/internal/proof"
)

// Reserved words of the term and script languages. These cannot be
// used as hypothesis or theorem names.
var keywords = map[string]bool{
	"fun":       true,
	"conj":      true,
	"fst":       true,
	"snd":       true,
	"inl":       true,
	"inr":       true,
	"cases":     true,
	"absurd":    true,
	"iff_intro": true,
	"iff_mp":    true,
	"iff_mpr":   true,
	"em":        true,
	"true":      true,
	"false":     true,
	"theorem":   true,
	"axiom":     true,
}

// Parser consumes tokens produced by the lexer and builds propositions
// and proof terms.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProp parses input as a single proposition.
func ParseProp(input string) (logic.Prop, error) {
	p, err := newParserFor(input)
	if err != nil {
		return nil, err
	}
	prop, err := p.parseProp()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return prop, nil
}

// ParseTerm parses input as a single proof term.
func ParseTerm(input string) (proof.Term, error) {
	p, err := newParserFor(input)
	if err != nil {
		return nil, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return term, nil
}

func newParserFor(input string) (*Parser, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens), nil
}

// Propositions, loosest binding first:
//
//	prop  := imp ('<->' prop)?
//	imp   := or ('->' imp)?
//	or    := and ('\/' or)?
//	and   := unary ('/\' and)?
//	unary := '~' unary | primary
func (p *Parser) parseProp() (logic.Prop, error) {
	left, err := p.parseImp()
	if err != nil {
		return nil, err
	}
	if p.match(TokenIff) {
		right, err := p.parseProp()
		if err != nil {
			return nil, err
		}
		return logic.Iff(left, right), nil
	}
	return left, nil
}

func (p *Parser) parseImp() (logic.Prop, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.match(TokenArrow) {
		right, err := p.parseImp()
		if err != nil {
			return nil, err
		}
		return logic.Implies(left, right), nil
	}
	return left, nil
}

func (p *Parser) parseOr() (logic.Prop, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.match(TokenOr) {
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return logic.Or(left, right), nil
	}
	return left, nil
}

func (p *Parser) parseAnd() (logic.Prop, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.match(TokenAnd) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return logic.And(left, right), nil
	}
	return left, nil
}

func (p *Parser) parseUnary() (logic.Prop, error) {
	if p.match(TokenTilde) {
		body, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.Not(body), nil
	}
	return p.parsePropPrimary()
}

func (p *Parser) parsePropPrimary() (logic.Prop, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenIdent:
		switch tok.Value {
		case "true":
			p.current++
			return logic.True(), nil
		case "false":
			p.current++
			return logic.False(), nil
		}
		if keywords[tok.Value] {
			return nil, p.errorf(tok, "reserved word %q cannot be an atom", tok.Value)
		}
		p.current++
		return logic.Atom(tok.Value), nil
	case TokenLParen:
		p.current++
		prop, err := p.parseProp()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return prop, nil
	default:
		return nil, p.errorf(tok, "expected a proposition, found %s", describe(tok))
	}
}

// Proof terms:
//
//	term := 'fun' ident ':' prop '=>' term
//	      | 'conj' atom atom | 'fst' atom | 'snd' atom
//	      | 'inl' atom ':' prop | 'inr' atom ':' prop
//	      | 'cases' atom atom atom
//	      | 'absurd' atom ':' prop
//	      | 'iff_intro' atom atom | 'iff_mp' atom | 'iff_mpr' atom
//	      | 'em' primary-prop
//	      | atom atom*            (application, left-associative)
//	atom := ident | '(' term ')'
func (p *Parser) parseTerm() (proof.Term, error) {
	tok := p.peek()
	if tok.Type == TokenIdent {
		switch tok.Value {
		case "fun":
			return p.parseFun()
		case "conj":
			p.current++
			left, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			right, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.AndIntro(left, right), nil
		case "fst":
			p.current++
			pair, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.AndLeft(pair), nil
		case "snd":
			p.current++
			pair, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.AndRight(pair), nil
		case "inl":
			p.current++
			pr, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			right, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			return proof.OrInl(pr, right), nil
		case "inr":
			p.current++
			pr, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			return proof.OrInr(pr, left), nil
		case "cases":
			p.current++
			scrut, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			right, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.OrElim(scrut, left, right), nil
		case "absurd":
			p.current++
			pr, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			target, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			return proof.FalseElim(pr, target), nil
		case "iff_intro":
			p.current++
			mp, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			mpr, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.IffIntro(mp, mpr), nil
		case "iff_mp":
			p.current++
			pr, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.IffMP(pr), nil
		case "iff_mpr":
			p.current++
			pr, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return proof.IffMPR(pr), nil
		case "em":
			p.current++
			prop, err := p.parsePropPrimary()
			if err != nil {
				return nil, err
			}
			return proof.ExcludedMiddle(prop), nil
		}
	}
	return p.parseApp()
}

func (p *Parser) parseFun() (proof.Term, error) {
	p.current++ // consume 'fun'
	tok := p.peek()
	if tok.Type != TokenIdent || keywords[tok.Value] {
		return nil, p.errorf(tok, "expected hypothesis name, found %s", describe(tok))
	}
	name := tok.Value
	p.current++
	if err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	premise, err := p.parseProp()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenFatArrow); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return proof.Intro(name, premise, body), nil
}

func (p *Parser) parseApp() (proof.Term, error) {
	term, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.atAtomStart() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		term = proof.Apply(term, arg)
	}
	return term, nil
}

func (p *Parser) parseAtom() (proof.Term, error) {
	tok := p.peek()
	switch {
	case tok.Type == TokenIdent && !keywords[tok.Value]:
		p.current++
		return proof.Var(tok.Value), nil
	case tok.Type == TokenLParen:
		p.current++
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return term, nil
	default:
		return nil, p.errorf(tok, "expected a proof term, found %s", describe(tok))
	}
}

// parseAnnotation parses the ': prop' suffix of annotated rule forms.
func (p *Parser) parseAnnotation() (logic.Prop, error) {
	if err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	return p.parseProp()
}

func (p *Parser) atAtomStart() bool {
	tok := p.peek()
	return (tok.Type == TokenIdent && !keywords[tok.Value]) || tok.Type == TokenLParen
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) match(t TokenType) bool {
	if p.peek().Type == t {
		p.current++
		return true
	}
	return false
}

func (p *Parser) expect(t TokenType) error {
	tok := p.peek()
	if tok.Type != t {
		return p.errorf(tok, "expected %s, found %s", t, describe(tok))
	}
	p.current++
	return nil
}

func (p *Parser) expectEOF() error {
	tok := p.peek()
	if tok.Type != TokenEOF {
		return p.errorf(tok, "unexpected trailing input starting at %s", describe(tok))
	}
	return nil
}

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: tok.Pos}
}

func describe(tok Token) string {
	if tok.Type == TokenIdent {
		return fmt.Sprintf("%q", tok.Value)
	}
	return tok.Type.String()
}
