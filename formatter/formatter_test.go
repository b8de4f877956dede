package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/fitchlang/fitch/internal"
	tt "github.com/fitchlang/fitch/internal/types"
)

func init() {
	color.NoColor = true
}

func TestFormatResultsProved(t *testing.T) {
	t.Parallel()

	results := []tt.Result{
		{
			Theorem:  "identity",
			Goal:     "p -> p",
			Status:   tt.StatusProved,
			Filename: "basics.ndp",
			Line:     1,
			Column:   1,
		},
	}
	sourceCode := &internal.SourceCode{Lines: []string{"theorem identity : p -> p := fun h : p => h"}}

	output := FormatResults(results, sourceCode)
	assert.Contains(t, output, "proved: ")
	assert.Contains(t, output, "identity : p -> p")
	assert.Contains(t, output, "basics.ndp:1:1")
	assert.NotContains(t, output, "^")
}

func TestFormatResultsFailedSnippet(t *testing.T) {
	t.Parallel()

	results := []tt.Result{
		{
			Theorem:  "broken",
			Goal:     "p",
			Status:   tt.StatusFailed,
			Detail:   "type error at fst: expected And(_, _), found p -> q",
			Filename: "basics.ndp",
			Line:     2,
			Column:   1,
		},
	}
	sourceCode := &internal.SourceCode{Lines: []string{
		"-- broken on purpose",
		"theorem broken : p := fst h",
	}}

	output := FormatResults(results, sourceCode)
	assert.Contains(t, output, "failed: ")
	assert.Contains(t, output, "theorem broken : p := fst h")
	assert.Contains(t, output, "^ type error at fst: expected And(_, _), found p -> q")
	assert.Contains(t, output, "2 | ")
}

func TestFormatResultsFailedWithoutSource(t *testing.T) {
	t.Parallel()

	results := []tt.Result{
		{
			Theorem: "broken",
			Goal:    "p",
			Status:  tt.StatusFailed,
			Detail:  "type error: expected p, found q",
			Line:    99,
		},
	}

	// out-of-range line still reports the detail
	output := FormatResults(results, &internal.SourceCode{Lines: []string{"one line"}})
	assert.Contains(t, output, "type error: expected p, found q")
}

func TestFormatResultsSkipped(t *testing.T) {
	t.Parallel()

	results := []tt.Result{
		{Theorem: "wip", Goal: "q", Status: tt.StatusSkipped},
	}

	output := FormatResults(results, nil)
	assert.Contains(t, output, "skipped: ")
	assert.Contains(t, output, "wip : q")
}

func TestSummary(t *testing.T) {
	t.Parallel()

	results := []tt.Result{
		{Status: tt.StatusProved},
		{Status: tt.StatusProved},
		{Status: tt.StatusFailed},
		{Status: tt.StatusSkipped},
	}

	assert.Equal(t, "checked 4 theorems: 2 proved, 1 failed, 1 skipped", Summary(results))
}

func TestCalculateVisualColumn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, calculateVisualColumn("abc", 1))
	assert.Equal(t, 2, calculateVisualColumn("abc", 3))
	// a leading tab expands to the tab width
	assert.Equal(t, tabWidth, calculateVisualColumn("\tabc", 2))
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	expanded := expandTabs("\tx")
	assert.False(t, strings.ContainsRune(expanded, '\t'))
	assert.Equal(t, strings.Repeat(" ", tabWidth)+"x", expanded)
}
