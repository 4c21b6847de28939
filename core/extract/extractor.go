// Package extract implements the Extractor interface.
// It dispatches on the declared (or sniffed) format of an input and
// produces either a structured table or a list of cleaned text lines,
// never both. Page-based formats attempt table detection first and
// fall back to text lines only when no page yields a table; that
// order decides whether the pipeline later runs in join mode or
// text mode.
package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gaurav-prasanna/docjoin/core"
)

// DocumentExtractor extracts content from raw document bytes.
type DocumentExtractor struct{}

// New creates a DocumentExtractor.
func New() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract dispatches on the input's format tag, sniffing the content
// when no format was declared. An unsupported declared format is an
// error; every failure inside a supported format degrades to an
// empty result instead.
func (e *DocumentExtractor) Extract(in core.RawInput) (core.ExtractionResult, error) {
	format := in.Format
	if format == core.FormatUnknown {
		format = Sniff(in.Data)
	}

	switch format {
	case core.FormatCSV:
		return extractDelimited(in.Data), nil
	case core.FormatSpreadsheet:
		return extractSpreadsheet(in.Data), nil
	case core.FormatPDF:
		return extractPDF(in.Data), nil
	case core.FormatHTML:
		return extractHTML(in.Data), nil
	case core.FormatPlainText:
		return extractText(in.Data), nil
	default:
		return core.ExtractionResult{}, fmt.Errorf("unsupported format %q", in.Format)
	}
}

// Content magic numbers checked by Sniff, most specific first.
var (
	magicPDF  = []byte("%PDF")
	magicZIP  = []byte("PK\x03\x04") // xlsx is a zip container
	magicOLE  = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	magicBOM  = []byte{0xEF, 0xBB, 0xBF}
	htmlHints = []string{"<!doctype html", "<html", "<table", "<body", "<div", "<p>"}
)

// Sniff infers a format from content alone. It never returns
// FormatUnknown: anything that is not recognizably structured is
// treated as plain text.
func Sniff(data []byte) core.Format {
	trimmed := bytes.TrimPrefix(data, magicBOM)
	switch {
	case bytes.HasPrefix(trimmed, magicPDF):
		return core.FormatPDF
	case bytes.HasPrefix(trimmed, magicZIP), bytes.HasPrefix(trimmed, magicOLE):
		return core.FormatSpreadsheet
	}

	head := strings.ToLower(string(bytes.TrimSpace(trimmed)))
	for _, hint := range htmlHints {
		if strings.HasPrefix(head, hint) {
			return core.FormatHTML
		}
	}

	if looksDelimited(trimmed) {
		return core.FormatCSV
	}
	return core.FormatPlainText
}

// looksDelimited reports whether the content parses as CSV with a
// consistent field count above one. A single column is
// indistinguishable from plain text, so it is not claimed as CSV.
func looksDelimited(data []byte) bool {
	r := csv.NewReader(bytes.NewReader(data))
	first, err := r.Read()
	if err != nil || len(first) < 2 {
		return false
	}
	for i := 0; i < 16; i++ {
		if _, err := r.Read(); err != nil {
			return errors.Is(err, io.EOF)
		}
	}
	return true
}
