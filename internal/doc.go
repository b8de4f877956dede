// Package internal provides the core functionality of the fitch proof
// checker.
//
// This package implements the engine that coordinates the checking
// process: it parses proof scripts, threads axioms and previously
// proved theorems into the context of each following theorem, and
// collects a Result per theorem.
//
// Key components:
//
// Engine: The main proof engine. It reads proof scripts, drives the
// checker over every declaration, and supports skipping theorems and
// paths by name.
//
// Result: Represents the outcome of checking a single theorem,
// including its location and the failure detail when checking aborted.
//
// SourceCode: A simple structure to represent the content of a proof
// script as a collection of lines, used for snippet rendering.
//
// The engine also supports a watch mode that re-checks a proof script
// whenever it changes on disk.
//
// Usage:
//
//	engine := internal.NewEngine(checker.DefaultConfig(), nil)
//
//	results, err := engine.Run("path/to/proofs.ndp")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, res := range results {
//	    fmt.Printf("%s: %s\n", res.Theorem, res.Status)
//	}
//
// This package is intended for internal use within the proof checker
// and should not be imported by external packages.
package internal
