// Package render provides output renderers for pipeline outcomes.
// This file implements the CSV renderer: the lossless delimited-text
// encoding of a joined table (header row, one record per row).
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gaurav-prasanna/docjoin/core"
)

// CSVRenderer serializes a joined table as comma-separated text.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes the join result's table. Outcomes without a joined
// table cannot be rendered as CSV.
func (r *CSVRenderer) Render(outcome core.PipelineOutcome) ([]byte, error) {
	if outcome.Join == nil {
		return nil, fmt.Errorf("outcome %q has no joined table to serialize", outcome.Kind)
	}
	return SerializeTable(outcome.Join.Table)
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}

// SerializeTable encodes a table as delimited text: a header row,
// then one record per row in column order. Null cells serialize as
// empty fields, so re-parsing yields an equivalent table.
func SerializeTable(t core.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
