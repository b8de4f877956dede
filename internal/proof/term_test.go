package proof

import (
	"testing"

	"github.com/fitchlang/fitch/internal/logic"
)

func TestString(t *testing.T) {
	p, q := logic.Atom("p"), logic.Atom("q")

	tests := []struct {
		name string
		term Term
		want string
	}{
		{"var", Var("h"), "h"},
		{"intro", Intro("h", p, Var("h")), "fun h : p => h"},
		{"apply", Apply(Var("f"), Var("x")), "f x"},
		{
			"nested apply",
			Apply(Var("f"), Apply(Var("g"), Var("x"))),
			"f (g x)",
		},
		{"conj", AndIntro(Var("a"), Var("b")), "conj a b"},
		{"fst", AndLeft(Var("h")), "fst h"},
		{"snd", AndRight(Var("h")), "snd h"},
		{"inl", OrInl(Var("h"), q), "inl h : q"},
		{"inr", OrInr(Var("h"), p), "inr h : p"},
		{"cases", OrElim(Var("h"), Var("f"), Var("g")), "cases h f g"},
		{"absurd", FalseElim(Var("h"), p), "absurd h : p"},
		{"iff_intro", IffIntro(Var("f"), Var("g")), "iff_intro f g"},
		{"iff_mp", IffMP(Var("h")), "iff_mp h"},
		{"iff_mpr", IffMPR(Var("h")), "iff_mpr h"},
		{"em", ExcludedMiddle(logic.Or(p, q)), `em (p \/ q)`},
		{
			"compound subterms get parens",
			AndLeft(AndIntro(Var("a"), Var("b"))),
			"fst (conj a b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
