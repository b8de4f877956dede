package syntax

import (
	"github.com/fitchlang/fitch/internal/logic"
	"github.com/fitchlang/fitch/internal/proof"
)

// Script is a parsed proof script: an ordered list of declarations.
type Script struct {
	Decls []Decl
}

// Decl is a top-level declaration in a proof script.
type Decl interface {
	isDecl()
	DeclName() string
	Position() Pos
}

// AxiomDecl assumes a proposition without proof. Axioms extend the
// ambient context of every following theorem in the file.
type AxiomDecl struct {
	Name string
	Prop logic.Prop
	Pos  Pos
}

func (AxiomDecl) isDecl()            {}
func (d AxiomDecl) DeclName() string { return d.Name }
func (d AxiomDecl) Position() Pos    { return d.Pos }

// TheoremDecl claims that Term proves Goal.
type TheoremDecl struct {
	Name string
	Goal logic.Prop
	Term proof.Term
	Pos  Pos
}

func (TheoremDecl) isDecl()            {}
func (d TheoremDecl) DeclName() string { return d.Name }
func (d TheoremDecl) Position() Pos    { return d.Pos }

// ParseScript parses the source of a proof script file.
//
//	decl := 'axiom' ident ':' prop
//	      | 'theorem' ident ':' prop ':=' term
func ParseScript(source string) (*Script, error) {
	p, err := newParserFor(source)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	for {
		tok := p.peek()
		if tok.Type == TokenEOF {
			return script, nil
		}
		if tok.Type != TokenIdent {
			return nil, p.errorf(tok, "expected 'axiom' or 'theorem', found %s", describe(tok))
		}

		switch tok.Value {
		case "axiom":
			decl, err := p.parseAxiom()
			if err != nil {
				return nil, err
			}
			script.Decls = append(script.Decls, decl)
		case "theorem":
			decl, err := p.parseTheorem()
			if err != nil {
				return nil, err
			}
			script.Decls = append(script.Decls, decl)
		default:
			return nil, p.errorf(tok, "expected 'axiom' or 'theorem', found %s", describe(tok))
		}
	}
}

func (p *Parser) parseAxiom() (AxiomDecl, error) {
	pos := p.peek().Pos
	p.current++ // consume 'axiom'

	name, err := p.parseDeclName()
	if err != nil {
		return AxiomDecl{}, err
	}
	if err := p.expect(TokenColon); err != nil {
		return AxiomDecl{}, err
	}
	prop, err := p.parseProp()
	if err != nil {
		return AxiomDecl{}, err
	}
	return AxiomDecl{Name: name, Prop: prop, Pos: pos}, nil
}

func (p *Parser) parseTheorem() (TheoremDecl, error) {
	pos := p.peek().Pos
	p.current++ // consume 'theorem'

	name, err := p.parseDeclName()
	if err != nil {
		return TheoremDecl{}, err
	}
	if err := p.expect(TokenColon); err != nil {
		return TheoremDecl{}, err
	}
	goal, err := p.parseProp()
	if err != nil {
		return TheoremDecl{}, err
	}
	if err := p.expect(TokenAssign); err != nil {
		return TheoremDecl{}, err
	}
	term, err := p.parseTerm()
	if err != nil {
		return TheoremDecl{}, err
	}
	return TheoremDecl{Name: name, Goal: goal, Term: term, Pos: pos}, nil
}

func (p *Parser) parseDeclName() (string, error) {
	tok := p.peek()
	if tok.Type != TokenIdent || keywords[tok.Value] {
		return "", p.errorf(tok, "expected declaration name, found %s", describe(tok))
	}
	p.current++
	return tok.Value, nil
}
