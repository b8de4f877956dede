package checker

import (
	"errors"
	"fmt"

	"github.com/fitchlang/fitch/internal/logic"
	"github.com/fitchlang/fitch/internal/proof"
)

// ErrClassicalDisabled is returned when a proof uses the excluded
// middle axiom while the checker runs in intuitionistic mode.
var ErrClassicalDisabled = errors.New("excluded middle is disabled (intuitionistic mode)")

// Config controls checker behavior.
type Config struct {
	// AllowClassical permits the excluded middle axiom. When false
	// the checker accepts only intuitionistic proofs.
	AllowClassical bool
}

// DefaultConfig returns the default checker configuration.
func DefaultConfig() Config {
	return Config{AllowClassical: true}
}

// Checker synthesizes the proposition proved by a proof term.
type Checker struct {
	config Config
}

// New creates a checker with the default configuration.
func New() *Checker {
	return &Checker{config: DefaultConfig()}
}

// NewWithConfig creates a checker with the given configuration.
func NewWithConfig(config Config) *Checker {
	return &Checker{config: config}
}

// Check computes the proposition proved by term under ctx. Every
// well-formed term synthesizes exactly one proposition; the first
// structural mismatch aborts with a *TypeError.
func (c *Checker) Check(ctx *Context, term proof.Term) (logic.Prop, error) {
	return c.check(ctx, term, "")
}

// Prove checks that term proves goal under ctx. It synthesizes the
// term's proposition and compares it structurally against the goal.
func (c *Checker) Prove(ctx *Context, term proof.Term, goal logic.Prop) error {
	got, err := c.check(ctx, term, "")
	if err != nil {
		return err
	}
	if !defEq(got, goal) {
		return &TypeError{Expected: goal.String(), Found: got.String()}
	}
	return nil
}

func (c *Checker) check(ctx *Context, term proof.Term, path string) (logic.Prop, error) {
	switch t := term.(type) {
	case proof.VarTerm:
		p := ctx.Lookup(t.Name)
		if p == nil {
			return nil, &TypeError{
				Expected: "a hypothesis in scope",
				Found:    fmt.Sprintf("unbound name %q", t.Name),
				Path:     path,
			}
		}
		return p, nil

	case proof.IntroTerm:
		inner := NewChildContext(ctx)
		inner.Bind(t.Name, t.Premise)
		body, err := c.check(inner, t.Body, at(path, "fun.body"))
		if err != nil {
			return nil, err
		}
		return logic.Implies(t.Premise, body), nil

	case proof.ApplyTerm:
		fn, err := c.check(ctx, t.Fn, at(path, "apply.fn"))
		if err != nil {
			return nil, err
		}
		imp, ok := asImplication(fn)
		if !ok {
			return nil, &TypeError{
				Expected: "Implies(_, _)",
				Found:    fn.String(),
				Path:     at(path, "apply.fn"),
			}
		}
		arg, err := c.check(ctx, t.Arg, at(path, "apply.arg"))
		if err != nil {
			return nil, err
		}
		if !defEq(arg, imp.Premise) {
			return nil, &TypeError{
				Expected: imp.Premise.String(),
				Found:    arg.String(),
				Path:     at(path, "apply.arg"),
			}
		}
		return imp.Conclusion, nil

	case proof.AndIntroTerm:
		left, err := c.check(ctx, t.Left, at(path, "conj.left"))
		if err != nil {
			return nil, err
		}
		right, err := c.check(ctx, t.Right, at(path, "conj.right"))
		if err != nil {
			return nil, err
		}
		return logic.And(left, right), nil

	case proof.AndLeftTerm:
		pair, err := c.check(ctx, t.Pair, at(path, "fst"))
		if err != nil {
			return nil, err
		}
		and, ok := pair.(logic.AndProp)
		if !ok {
			return nil, &TypeError{
				Expected: "And(_, _)",
				Found:    pair.String(),
				Path:     at(path, "fst"),
			}
		}
		return and.Left, nil

	case proof.AndRightTerm:
		pair, err := c.check(ctx, t.Pair, at(path, "snd"))
		if err != nil {
			return nil, err
		}
		and, ok := pair.(logic.AndProp)
		if !ok {
			return nil, &TypeError{
				Expected: "And(_, _)",
				Found:    pair.String(),
				Path:     at(path, "snd"),
			}
		}
		return and.Right, nil

	case proof.OrInlTerm:
		left, err := c.check(ctx, t.Proof, at(path, "inl"))
		if err != nil {
			return nil, err
		}
		return logic.Or(left, t.Right), nil

	case proof.OrInrTerm:
		right, err := c.check(ctx, t.Proof, at(path, "inr"))
		if err != nil {
			return nil, err
		}
		return logic.Or(t.Left, right), nil

	case proof.OrElimTerm:
		return c.checkOrElim(ctx, t, path)

	case proof.FalseElimTerm:
		p, err := c.check(ctx, t.Proof, at(path, "absurd"))
		if err != nil {
			return nil, err
		}
		if _, ok := p.(logic.FalseProp); !ok {
			return nil, &TypeError{
				Expected: "False",
				Found:    p.String(),
				Path:     at(path, "absurd"),
			}
		}
		// Ex falso: the annotated target is unconstrained.
		return t.Target, nil

	case proof.IffIntroTerm:
		return c.checkIffIntro(ctx, t, path)

	case proof.IffMPTerm:
		iff, err := c.checkIffProof(ctx, t.Proof, at(path, "iff_mp"))
		if err != nil {
			return nil, err
		}
		return logic.Implies(iff.Left, iff.Right), nil

	case proof.IffMPRTerm:
		iff, err := c.checkIffProof(ctx, t.Proof, at(path, "iff_mpr"))
		if err != nil {
			return nil, err
		}
		return logic.Implies(iff.Right, iff.Left), nil

	case proof.ExcludedMiddleTerm:
		if !c.config.AllowClassical {
			return nil, fmt.Errorf("at %s: %w", pathOrRoot(path), ErrClassicalDisabled)
		}
		return logic.Or(t.Prop, logic.Not(t.Prop)), nil

	default:
		return nil, fmt.Errorf("unknown proof term %T", term)
	}
}

func (c *Checker) checkOrElim(ctx *Context, t proof.OrElimTerm, path string) (logic.Prop, error) {
	scrut, err := c.check(ctx, t.Scrut, at(path, "cases.scrut"))
	if err != nil {
		return nil, err
	}
	or, ok := scrut.(logic.OrProp)
	if !ok {
		return nil, &TypeError{
			Expected: "Or(_, _)",
			Found:    scrut.String(),
			Path:     at(path, "cases.scrut"),
		}
	}

	left, err := c.checkCase(ctx, t.Left, or.Left, at(path, "cases.left"))
	if err != nil {
		return nil, err
	}
	right, err := c.checkCase(ctx, t.Right, or.Right, at(path, "cases.right"))
	if err != nil {
		return nil, err
	}
	if !defEq(left, right) {
		return nil, &TypeError{
			Expected: left.String(),
			Found:    right.String(),
			Path:     at(path, "cases.right"),
		}
	}
	return left, nil
}

// checkCase checks a disjunction-elimination branch, which must prove
// from -> R, and returns R.
func (c *Checker) checkCase(ctx *Context, t proof.Term, from logic.Prop, path string) (logic.Prop, error) {
	p, err := c.check(ctx, t, path)
	if err != nil {
		return nil, err
	}
	imp, ok := asImplication(p)
	if !ok {
		return nil, &TypeError{
			Expected: logic.Implies(from, logic.Atom("_")).String(),
			Found:    p.String(),
			Path:     path,
		}
	}
	if !defEq(imp.Premise, from) {
		return nil, &TypeError{
			Expected: from.String(),
			Found:    imp.Premise.String(),
			Path:     path,
		}
	}
	return imp.Conclusion, nil
}

func (c *Checker) checkIffIntro(ctx *Context, t proof.IffIntroTerm, path string) (logic.Prop, error) {
	mp, err := c.check(ctx, t.MP, at(path, "iff_intro.mp"))
	if err != nil {
		return nil, err
	}
	fwd, ok := asImplication(mp)
	if !ok {
		return nil, &TypeError{
			Expected: "Implies(_, _)",
			Found:    mp.String(),
			Path:     at(path, "iff_intro.mp"),
		}
	}
	mpr, err := c.check(ctx, t.MPR, at(path, "iff_intro.mpr"))
	if err != nil {
		return nil, err
	}
	want := logic.Implies(fwd.Conclusion, fwd.Premise)
	if !defEq(mpr, want) {
		return nil, &TypeError{
			Expected: want.String(),
			Found:    mpr.String(),
			Path:     at(path, "iff_intro.mpr"),
		}
	}
	return logic.Iff(fwd.Premise, fwd.Conclusion), nil
}

// checkIffProof checks that t proves a biconditional and returns it.
func (c *Checker) checkIffProof(ctx *Context, t proof.Term, path string) (logic.IffProp, error) {
	p, err := c.check(ctx, t, path)
	if err != nil {
		return logic.IffProp{}, err
	}
	iff, ok := p.(logic.IffProp)
	if !ok {
		return logic.IffProp{}, &TypeError{
			Expected: "Iff(_, _)",
			Found:    p.String(),
			Path:     path,
		}
	}
	return iff, nil
}

// Negation is definitional: ~P unfolds to P -> false wherever the
// checker eliminates an implication or compares propositions. The
// synthesized propositions keep their written form.

// asImplication views a proposition as an implication, unfolding a
// top-level negation.
func asImplication(p logic.Prop) (logic.ImpliesProp, bool) {
	switch t := p.(type) {
	case logic.ImpliesProp:
		return t, true
	case logic.NotProp:
		return logic.ImpliesProp{Premise: t.Body, Conclusion: logic.FalseProp{}}, true
	default:
		return logic.ImpliesProp{}, false
	}
}

// defEq compares two propositions up to unfolding of negation.
func defEq(a, b logic.Prop) bool {
	return unfoldNot(a).Equal(unfoldNot(b))
}

// unfoldNot rewrites every ~P into P -> false, recursively.
func unfoldNot(p logic.Prop) logic.Prop {
	switch t := p.(type) {
	case logic.NotProp:
		return logic.Implies(unfoldNot(t.Body), logic.False())
	case logic.ImpliesProp:
		return logic.Implies(unfoldNot(t.Premise), unfoldNot(t.Conclusion))
	case logic.AndProp:
		return logic.And(unfoldNot(t.Left), unfoldNot(t.Right))
	case logic.OrProp:
		return logic.Or(unfoldNot(t.Left), unfoldNot(t.Right))
	case logic.IffProp:
		return logic.Iff(unfoldNot(t.Left), unfoldNot(t.Right))
	default:
		return p
	}
}

func at(path, step string) string {
	if path == "" {
		return step
	}
	return path + "." + step
}

func pathOrRoot(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
