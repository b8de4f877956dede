package logic

// Prop represents a proposition.
type Prop interface {
	isProp()
	String() string
	Equal(other Prop) bool
}

// AtomProp represents a propositional atom, e.g. "p".
type AtomProp struct {
	Name string
}

func (AtomProp) isProp() {}
func (p AtomProp) String() string {
	return p.Name
}

func (p AtomProp) Equal(other Prop) bool {
	if o, ok := other.(AtomProp); ok {
		return p.Name == o.Name
	}
	return false
}

// ImpliesProp represents an implication P -> Q.
type ImpliesProp struct {
	Premise    Prop
	Conclusion Prop
}

func (ImpliesProp) isProp() {}
func (p ImpliesProp) String() string {
	return wrapLeft(p.Premise, precImplies) + " -> " + wrapRight(p.Conclusion, precImplies)
}

func (p ImpliesProp) Equal(other Prop) bool {
	if o, ok := other.(ImpliesProp); ok {
		return p.Premise.Equal(o.Premise) && p.Conclusion.Equal(o.Conclusion)
	}
	return false
}

// AndProp represents a conjunction P /\ Q.
type AndProp struct {
	Left  Prop
	Right Prop
}

func (AndProp) isProp() {}
func (p AndProp) String() string {
	return wrapLeft(p.Left, precAnd) + " /\\ " + wrapRight(p.Right, precAnd)
}

func (p AndProp) Equal(other Prop) bool {
	if o, ok := other.(AndProp); ok {
		return p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
	}
	return false
}

// OrProp represents a disjunction P \/ Q.
type OrProp struct {
	Left  Prop
	Right Prop
}

func (OrProp) isProp() {}
func (p OrProp) String() string {
	return wrapLeft(p.Left, precOr) + " \\/ " + wrapRight(p.Right, precOr)
}

func (p OrProp) Equal(other Prop) bool {
	if o, ok := other.(OrProp); ok {
		return p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
	}
	return false
}

// NotProp represents a negation ~P.
type NotProp struct {
	Body Prop
}

func (NotProp) isProp() {}
func (p NotProp) String() string {
	return "~" + wrapRight(p.Body, precNot)
}

func (p NotProp) Equal(other Prop) bool {
	if o, ok := other.(NotProp); ok {
		return p.Body.Equal(o.Body)
	}
	return false
}

// IffProp represents a biconditional P <-> Q.
type IffProp struct {
	Left  Prop
	Right Prop
}

func (IffProp) isProp() {}
func (p IffProp) String() string {
	return wrapLeft(p.Left, precIff) + " <-> " + wrapRight(p.Right, precIff)
}

func (p IffProp) Equal(other Prop) bool {
	if o, ok := other.(IffProp); ok {
		return p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
	}
	return false
}

// TrueProp represents the constant true.
type TrueProp struct{}

func (TrueProp) isProp() {}
func (TrueProp) String() string {
	return "true"
}

func (TrueProp) Equal(other Prop) bool {
	_, ok := other.(TrueProp)
	return ok
}

// FalseProp represents the constant false.
type FalseProp struct{}

func (FalseProp) isProp() {}
func (FalseProp) String() string {
	return "false"
}

func (FalseProp) Equal(other Prop) bool {
	_, ok := other.(FalseProp)
	return ok
}

// Connective precedence, loosest first. Used only for printing.
const (
	precIff = iota
	precImplies
	precOr
	precAnd
	precNot
	precAtom
)

func prec(p Prop) int {
	switch p.(type) {
	case IffProp:
		return precIff
	case ImpliesProp:
		return precImplies
	case OrProp:
		return precOr
	case AndProp:
		return precAnd
	case NotProp:
		return precNot
	default:
		return precAtom
	}
}

func wrapLeft(p Prop, outer int) string {
	// All binary connectives parse right-associatively, so a left
	// operand at equal precedence needs parentheses.
	if prec(p) <= outer {
		return "(" + p.String() + ")"
	}
	return p.String()
}

func wrapRight(p Prop, outer int) string {
	if prec(p) < outer {
		return "(" + p.String() + ")"
	}
	return p.String()
}

// Helper functions to construct propositions

// Atom creates a propositional atom.
func Atom(name string) Prop {
	return AtomProp{Name: name}
}

// Implies creates an implication.
func Implies(premise, conclusion Prop) Prop {
	return ImpliesProp{Premise: premise, Conclusion: conclusion}
}

// And creates a conjunction.
func And(left, right Prop) Prop {
	return AndProp{Left: left, Right: right}
}

// Or creates a disjunction.
func Or(left, right Prop) Prop {
	return OrProp{Left: left, Right: right}
}

// Not creates a negation.
func Not(body Prop) Prop {
	return NotProp{Body: body}
}

// Iff creates a biconditional.
func Iff(left, right Prop) Prop {
	return IffProp{Left: left, Right: right}
}

// True creates the constant true.
func True() Prop {
	return TrueProp{}
}

// False creates the constant false.
func False() Prop {
	return FalseProp{}
}

// Shape returns the top-level connective of a proposition as a short
// name, e.g. "And(_, _)" for a conjunction. Used in mismatch reports.
func Shape(p Prop) string {
	switch p.(type) {
	case AtomProp:
		return "Atom"
	case ImpliesProp:
		return "Implies(_, _)"
	case AndProp:
		return "And(_, _)"
	case OrProp:
		return "Or(_, _)"
	case NotProp:
		return "Not(_)"
	case IffProp:
		return "Iff(_, _)"
	case TrueProp:
		return "True"
	case FalseProp:
		return "False"
	default:
		return "?"
	}
}
