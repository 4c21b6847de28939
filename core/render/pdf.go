// Package render — PDF renderer.
// Produces a printable reconciliation report with gofpdf: the join
// metadata and table, or the matched-line list, or the outcome's
// reason when there is nothing more to show.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/docjoin/core"
)

// PDFRenderer renders a pipeline outcome as a PDF report.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render builds the report.
func (r *PDFRenderer) Render(outcome core.PipelineOutcome) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, "Reconciliation Report", "", "L", false)
	pdf.Ln(4)

	switch {
	case outcome.Join != nil:
		renderJoin(pdf, outcome.Join)
	case outcome.Match != nil:
		renderMatch(pdf, outcome.Match)
	default:
		renderStatus(pdf, outcome)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderJoin(pdf *gofpdf.Fpdf, join *core.JoinResult) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	summary := fmt.Sprintf("%s join on %s / %s: %d rows",
		join.Mode, join.ColumnA, join.ColumnB, join.RowCount)
	pdf.MultiCell(0, 5, summary, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.MultiCell(0, 5, strings.Join(join.Table.Columns, " | "), "", "L", false)
	pdf.SetFont("Helvetica", "", 9)
	record := make([]string, len(join.Table.Columns))
	for _, row := range join.Table.Rows {
		for i, col := range join.Table.Columns {
			record[i] = row[col]
		}
		pdf.MultiCell(0, 5, strings.Join(record, " | "), "", "L", false)
	}
	if join.RowCount == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "join produced zero rows", "", "L", false)
	}
}

func renderMatch(pdf *gofpdf.Fpdf, match *core.MatchResult) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, fmt.Sprintf("%d common lines", match.Count), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range match.Lines {
		pdf.MultiCell(0, 5, "- "+line, "", "L", false)
	}
}

func renderStatus(pdf *gofpdf.Fpdf, outcome core.PipelineOutcome) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, string(outcome.Kind), "", "L", false)
	if outcome.Reason != "" {
		pdf.MultiCell(0, 5, outcome.Reason, "", "L", false)
	}
	if len(outcome.ColumnsA) > 0 || len(outcome.ColumnsB) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, "first input columns: "+strings.Join(outcome.ColumnsA, ", "), "", "L", false)
		pdf.MultiCell(0, 5, "second input columns: "+strings.Join(outcome.ColumnsB, ", "), "", "L", false)
	}
}
