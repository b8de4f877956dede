// Package logic defines the proposition language checked by fitch.
//
// Propositions are immutable trees over atoms and the usual
// propositional connectives: implication, conjunction, disjunction,
// negation, biconditional, and the constants true and false. They are
// compared structurally; there is no normalization and no notion of
// semantic equivalence at this layer.
package logic
