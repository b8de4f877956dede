// Package checker implements the proof checker for propositional
// natural deduction.
//
// Checking is type synthesis: given a context of hypotheses and a
// proof term, the checker computes the unique proposition the term
// proves, or fails with a TypeError describing the first structural
// mismatch. Terms carry enough annotations (the premise of an
// implication introduction, the missing disjunct of an injection, the
// target of ex falso) that synthesis never needs to guess.
//
// Supported rules:
//   - hypothesis reference
//   - implication introduction / elimination
//   - conjunction introduction / left and right projection
//   - disjunction injection / elimination
//   - ex falso
//   - biconditional introduction / mp and mpr projection
//   - excluded middle (classical axiom, can be disabled)
//
// Checking is a single-threaded synchronous tree walk with no I/O.
package checker
