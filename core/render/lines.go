package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/docjoin/core"
)

// LinesRenderer writes a text-match result as a newline-joined list.
type LinesRenderer struct{}

// NewLinesRenderer creates a LinesRenderer.
func NewLinesRenderer() *LinesRenderer {
	return &LinesRenderer{}
}

// Render writes the matched lines, one per line.
func (r *LinesRenderer) Render(outcome core.PipelineOutcome) ([]byte, error) {
	if outcome.Match == nil {
		return nil, fmt.Errorf("outcome %q has no matched lines to serialize", outcome.Kind)
	}
	if len(outcome.Match.Lines) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(outcome.Match.Lines, "\n") + "\n"), nil
}

// Extension returns the file extension for line-list output.
func (r *LinesRenderer) Extension() string {
	return ".txt"
}
