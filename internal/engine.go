package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fitchlang/fitch/internal/checker"
	"github.com/fitchlang/fitch/internal/syntax"
	tt "github.com/fitchlang/fitch/internal/types"
	"go.uber.org/zap"
)

// Engine manages the proof checking process.
type Engine struct {
	checker         *checker.Checker
	ignoredTheorems map[string]bool
	ignoredPaths    []string
	logger          *zap.Logger

	watch watchState
}

// NewEngine creates a new proof engine with the given checker
// configuration. The logger may be nil.
func NewEngine(config checker.Config, logger *zap.Logger) *Engine {
	return &Engine{
		checker:         checker.NewWithConfig(config),
		ignoredTheorems: make(map[string]bool),
		logger:          logger,
	}
}

// Run checks every theorem in the given proof script file.
func (e *Engine) Run(filename string) ([]tt.Result, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return e.runScript(filename, source)
}

// RunSource checks every theorem in the given proof script source.
func (e *Engine) RunSource(source []byte) ([]tt.Result, error) {
	return e.runScript("", source)
}

func (e *Engine) runScript(filename string, source []byte) ([]tt.Result, error) {
	script, err := syntax.ParseScript(string(source))
	if err != nil {
		if filename != "" {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return nil, err
	}

	// Axioms and previously proved theorems accumulate into the
	// ambient context of each following theorem.
	ctx := checker.NewContext()
	var results []tt.Result
	for _, decl := range script.Decls {
		switch d := decl.(type) {
		case syntax.AxiomDecl:
			ctx.Bind(d.Name, d.Prop)

		case syntax.TheoremDecl:
			res := tt.Result{
				Theorem:  d.Name,
				Goal:     d.Goal.String(),
				Filename: filename,
				Line:     d.Pos.Line,
				Column:   d.Pos.Column,
			}
			switch {
			case e.ignoredTheorems[d.Name]:
				res.Status = tt.StatusSkipped
			default:
				if err := e.checker.Prove(ctx, d.Term, d.Goal); err != nil {
					res.Status = tt.StatusFailed
					res.Detail = err.Error()
				} else {
					res.Status = tt.StatusProved
					ctx.Bind(d.Name, d.Goal)
				}
			}
			results = append(results, res)
		}
	}

	return results, nil
}

// IgnoreTheorem marks a theorem name to be skipped instead of checked.
func (e *Engine) IgnoreTheorem(name string) {
	if e.ignoredTheorems == nil {
		e.ignoredTheorems = make(map[string]bool)
	}
	e.ignoredTheorems[name] = true
}

// IgnorePath excludes a file or directory prefix from processing.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

// PathIgnored reports whether the given path falls under an ignored
// prefix.
func (e *Engine) PathIgnored(path string) bool {
	cleaned := filepath.Clean(path)
	for _, ignored := range e.ignoredPaths {
		if cleaned == ignored || strings.HasPrefix(cleaned, ignored+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
