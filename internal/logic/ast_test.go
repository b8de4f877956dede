package logic

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		prop Prop
		want string
	}{
		{"atom", Atom("p"), "p"},
		{"implication", Implies(Atom("p"), Atom("q")), "p -> q"},
		{"chained implication", Implies(Atom("p"), Implies(Atom("q"), Atom("r"))), "p -> q -> r"},
		{"left-nested implication", Implies(Implies(Atom("p"), Atom("q")), Atom("r")), "(p -> q) -> r"},
		{"conjunction", And(Atom("p"), Atom("q")), `p /\ q`},
		{"disjunction", Or(Atom("p"), Atom("q")), `p \/ q`},
		{"negation", Not(Atom("p")), "~p"},
		{"negated conjunction", Not(And(Atom("p"), Atom("q"))), `~(p /\ q)`},
		{"double negation", Not(Not(Atom("p"))), "~~p"},
		{"conjunction in implication", Implies(And(Atom("p"), Atom("q")), Atom("r")), `p /\ q -> r`},
		{"implication in conjunction", And(Implies(Atom("p"), Atom("q")), Atom("r")), `(p -> q) /\ r`},
		{"or binds looser than and", Or(And(Atom("p"), Atom("q")), Atom("r")), `p /\ q \/ r`},
		{"biconditional", Iff(Atom("p"), Atom("q")), "p <-> q"},
		{"implication in biconditional", Iff(Atom("p"), Implies(Atom("q"), Atom("r"))), "p <-> q -> r"},
		{"constants", Implies(False(), True()), "false -> true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prop.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := Implies(Atom("p"), And(Atom("q"), Not(Atom("r"))))
	b := Implies(Atom("p"), And(Atom("q"), Not(Atom("r"))))
	if !a.Equal(b) {
		t.Error("structurally identical propositions must be equal")
	}

	c := Implies(Atom("p"), And(Atom("q"), Not(Atom("s"))))
	if a.Equal(c) {
		t.Error("propositions differing in an atom must not be equal")
	}

	if Atom("p").Equal(Not(Atom("p"))) {
		t.Error("different connectives must not be equal")
	}

	if !True().Equal(True()) || True().Equal(False()) {
		t.Error("constants compare by kind")
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		prop Prop
		want string
	}{
		{Atom("p"), "Atom"},
		{Implies(Atom("p"), Atom("q")), "Implies(_, _)"},
		{And(Atom("p"), Atom("q")), "And(_, _)"},
		{Or(Atom("p"), Atom("q")), "Or(_, _)"},
		{Not(Atom("p")), "Not(_)"},
		{Iff(Atom("p"), Atom("q")), "Iff(_, _)"},
		{True(), "True"},
		{False(), "False"},
	}
	for _, tt := range tests {
		if got := Shape(tt.prop); got != tt.want {
			t.Errorf("Shape(%s) = %q, want %q", tt.prop, got, tt.want)
		}
	}
}
