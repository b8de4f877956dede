// Package proof defines the proof-term language. Each term shape
// mirrors one introduction or elimination rule of propositional
// natural deduction, so a well-formed term is a derivation tree.
package proof

import "github.com/fitchlang/fitch/internal/logic"

// Term represents a proof term.
type Term interface {
	isTerm()
	String() string
}

// VarTerm references a hypothesis bound in the context.
type VarTerm struct {
	Name string
}

func (VarTerm) isTerm() {}
func (t VarTerm) String() string {
	return t.Name
}

// IntroTerm is implication introduction: fun h : P => body proves
// P -> Q when body proves Q under the extra hypothesis h : P.
// The premise is annotated so every term synthesizes a unique
// proposition.
type IntroTerm struct {
	Name    string
	Premise logic.Prop
	Body    Term
}

func (IntroTerm) isTerm() {}
func (t IntroTerm) String() string {
	return "fun " + t.Name + " : " + t.Premise.String() + " => " + t.Body.String()
}

// ApplyTerm is implication elimination (modus ponens).
type ApplyTerm struct {
	Fn  Term
	Arg Term
}

func (ApplyTerm) isTerm() {}
func (t ApplyTerm) String() string {
	return wrap(t.Fn) + " " + wrap(t.Arg)
}

// AndIntroTerm is conjunction introduction.
type AndIntroTerm struct {
	Left  Term
	Right Term
}

func (AndIntroTerm) isTerm() {}
func (t AndIntroTerm) String() string {
	return "conj " + wrap(t.Left) + " " + wrap(t.Right)
}

// AndLeftTerm projects the left component of a conjunction proof.
type AndLeftTerm struct {
	Pair Term
}

func (AndLeftTerm) isTerm() {}
func (t AndLeftTerm) String() string {
	return "fst " + wrap(t.Pair)
}

// AndRightTerm projects the right component of a conjunction proof.
type AndRightTerm struct {
	Pair Term
}

func (AndRightTerm) isTerm() {}
func (t AndRightTerm) String() string {
	return "snd " + wrap(t.Pair)
}

// OrInlTerm injects a proof of P into P \/ Q. The right disjunct is
// annotated; it cannot be synthesized from the subterm.
type OrInlTerm struct {
	Proof Term
	Right logic.Prop
}

func (OrInlTerm) isTerm() {}
func (t OrInlTerm) String() string {
	return "inl " + wrap(t.Proof) + " : " + t.Right.String()
}

// OrInrTerm injects a proof of Q into P \/ Q. The left disjunct is
// annotated.
type OrInrTerm struct {
	Proof Term
	Left  logic.Prop
}

func (OrInrTerm) isTerm() {}
func (t OrInrTerm) String() string {
	return "inr " + wrap(t.Proof) + " : " + t.Left.String()
}

// OrElimTerm is disjunction elimination: given a proof of P \/ Q and
// case proofs P -> R and Q -> R, produces a proof of R.
type OrElimTerm struct {
	Scrut Term
	Left  Term
	Right Term
}

func (OrElimTerm) isTerm() {}
func (t OrElimTerm) String() string {
	return "cases " + wrap(t.Scrut) + " " + wrap(t.Left) + " " + wrap(t.Right)
}

// FalseElimTerm is ex falso: from a proof of false, any target
// proposition follows. The target is annotated.
type FalseElimTerm struct {
	Proof  Term
	Target logic.Prop
}

func (FalseElimTerm) isTerm() {}
func (t FalseElimTerm) String() string {
	return "absurd " + wrap(t.Proof) + " : " + t.Target.String()
}

// IffIntroTerm is biconditional introduction from the two directions.
type IffIntroTerm struct {
	MP  Term // proves P -> Q
	MPR Term // proves Q -> P
}

func (IffIntroTerm) isTerm() {}
func (t IffIntroTerm) String() string {
	return "iff_intro " + wrap(t.MP) + " " + wrap(t.MPR)
}

// IffMPTerm projects the forward implication of a biconditional proof.
type IffMPTerm struct {
	Proof Term
}

func (IffMPTerm) isTerm() {}
func (t IffMPTerm) String() string {
	return "iff_mp " + wrap(t.Proof)
}

// IffMPRTerm projects the backward implication of a biconditional proof.
type IffMPRTerm struct {
	Proof Term
}

func (IffMPRTerm) isTerm() {}
func (t IffMPRTerm) String() string {
	return "iff_mpr " + wrap(t.Proof)
}

// ExcludedMiddleTerm is the classical axiom: proves P \/ ~P for any P
// with no precondition.
type ExcludedMiddleTerm struct {
	Prop logic.Prop
}

func (ExcludedMiddleTerm) isTerm() {}
func (t ExcludedMiddleTerm) String() string {
	return "em (" + t.Prop.String() + ")"
}

func wrap(t Term) string {
	switch t.(type) {
	case VarTerm:
		return t.String()
	default:
		return "(" + t.String() + ")"
	}
}

// Helper functions to construct proof terms

// Var references a hypothesis by name.
func Var(name string) Term {
	return VarTerm{Name: name}
}

// Intro creates an implication introduction.
func Intro(name string, premise logic.Prop, body Term) Term {
	return IntroTerm{Name: name, Premise: premise, Body: body}
}

// Apply creates an implication elimination.
func Apply(fn, arg Term) Term {
	return ApplyTerm{Fn: fn, Arg: arg}
}

// AndIntro creates a conjunction introduction.
func AndIntro(left, right Term) Term {
	return AndIntroTerm{Left: left, Right: right}
}

// AndLeft creates a left conjunction projection.
func AndLeft(pair Term) Term {
	return AndLeftTerm{Pair: pair}
}

// AndRight creates a right conjunction projection.
func AndRight(pair Term) Term {
	return AndRightTerm{Pair: pair}
}

// OrInl creates a left disjunction injection.
func OrInl(p Term, right logic.Prop) Term {
	return OrInlTerm{Proof: p, Right: right}
}

// OrInr creates a right disjunction injection.
func OrInr(p Term, left logic.Prop) Term {
	return OrInrTerm{Proof: p, Left: left}
}

// OrElim creates a disjunction elimination.
func OrElim(scrut, left, right Term) Term {
	return OrElimTerm{Scrut: scrut, Left: left, Right: right}
}

// FalseElim creates an ex falso term with the given target.
func FalseElim(p Term, target logic.Prop) Term {
	return FalseElimTerm{Proof: p, Target: target}
}

// IffIntro creates a biconditional introduction.
func IffIntro(mp, mpr Term) Term {
	return IffIntroTerm{MP: mp, MPR: mpr}
}

// IffMP projects the forward direction of a biconditional.
func IffMP(p Term) Term {
	return IffMPTerm{Proof: p}
}

// IffMPR projects the backward direction of a biconditional.
func IffMPR(p Term) Term {
	return IffMPRTerm{Proof: p}
}

// ExcludedMiddle creates the classical axiom term for p.
func ExcludedMiddle(p logic.Prop) Term {
	return ExcludedMiddleTerm{Prop: p}
}
