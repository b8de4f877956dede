// Package formatter renders proof check results for terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/fitchlang/fitch/internal"
	tt "github.com/fitchlang/fitch/internal/types"
)

const tabWidth = 8

var (
	provedStyle  = color.New(color.FgGreen, color.Bold)
	failedStyle  = color.New(color.FgRed, color.Bold)
	skippedStyle = color.New(color.FgHiYellow, color.Bold)
	theoremStyle = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	detailStyle  = color.New(color.FgRed, color.Bold)
)

// FormatResults formats the results of one proof script into a
// human-readable report. Failed theorems get a source snippet with a
// caret pointing at the declaration.
func FormatResults(results []tt.Result, sourceCode *internal.SourceCode) string {
	var builder strings.Builder
	for _, res := range results {
		builder.WriteString(formatHeader(res))
		if res.Failed() && sourceCode != nil {
			builder.WriteString(formatSnippet(res, sourceCode))
		}
	}
	return builder.String()
}

func formatHeader(res tt.Result) string {
	var status string
	switch res.Status {
	case tt.StatusProved:
		status = provedStyle.Sprint("proved: ")
	case tt.StatusFailed:
		status = failedStyle.Sprint("failed: ")
	case tt.StatusSkipped:
		status = skippedStyle.Sprint("skipped: ")
	}

	header := status + theoremStyle.Sprint(res.Theorem) + " : " + res.Goal + "\n"
	if res.Filename != "" {
		header += lineStyle.Sprint(" --> ") +
			fileStyle.Sprintf("%s:%d:%d", res.Filename, res.Line, res.Column) + "\n"
	}
	return header
}

func formatSnippet(res tt.Result, sourceCode *internal.SourceCode) string {
	if res.Line < 1 || res.Line > len(sourceCode.Lines) {
		return detailStyle.Sprintf("  %s\n\n", res.Detail)
	}

	var result strings.Builder

	lineNumberStr := fmt.Sprintf("%d", res.Line)
	padding := strings.Repeat(" ", len(lineNumberStr)-1)
	result.WriteString(lineStyle.Sprintf("  %s|\n", padding))

	line := expandTabs(sourceCode.Lines[res.Line-1])
	result.WriteString(lineStyle.Sprintf("%d | ", res.Line))
	result.WriteString(line + "\n")

	visualColumn := calculateVisualColumn(sourceCode.Lines[res.Line-1], res.Column)
	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(strings.Repeat(" ", visualColumn))
	result.WriteString(detailStyle.Sprintf("^ %s\n\n", res.Detail))

	return result.String()
}

// Summary returns a one-line tally of the results.
func Summary(results []tt.Result) string {
	var proved, failed, skipped int
	for _, res := range results {
		switch res.Status {
		case tt.StatusProved:
			proved++
		case tt.StatusFailed:
			failed++
		case tt.StatusSkipped:
			skipped++
		}
	}
	return fmt.Sprintf("checked %d theorems: %d proved, %d failed, %d skipped",
		len(results), proved, failed, skipped)
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (i % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}

func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
