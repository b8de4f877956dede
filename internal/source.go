package internal

import (
	"os"
	"strings"
)

// SourceCode holds the lines of a proof script for snippet rendering.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file and splits it into lines.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
