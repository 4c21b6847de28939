package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/docjoin/core"
)

// JSONRenderer serializes any pipeline outcome as indented JSON.
// This is the default output and the one an API collaborator would
// return verbatim.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the outcome, whatever its kind.
func (r *JSONRenderer) Render(outcome core.PipelineOutcome) ([]byte, error) {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling outcome: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
