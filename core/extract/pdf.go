package extract

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/gaurav-prasanna/docjoin/core"
)

// Gap thresholds for clustering positioned text, relative to the
// current font size. A small gap separates words inside a cell; a
// wide gap separates cells.
const (
	wordGapFactor = 0.35
	cellGapFactor = 2.0
)

// extractPDF runs per page: a table-detection pass first, then text
// lines for pages that did not look tabular. If any page yields a
// table the tables win and page text is discarded; otherwise the
// accumulated lines are cleaned and returned. A page that cannot be
// parsed contributes nothing and never aborts the remaining pages.
func extractPDF(data []byte) core.ExtractionResult {
	if len(data) == 0 {
		return core.ExtractionResult{}
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Not parseable as PDF; salvage printable text.
		return linesResult(printableLines(data))
	}

	var acc tableAccum
	var textLines []string
	for i := 1; i <= r.NumPage(); i++ {
		cells, lines := extractPage(r, i)
		if header, body, ok := detectTable(cells); ok {
			acc.add(header, body)
			continue
		}
		textLines = append(textLines, lines...)
	}

	if acc.table != nil {
		return acc.result()
	}
	if len(textLines) > 0 {
		return linesResult(textLines)
	}
	if plain := documentPlainText(r); plain != "" {
		return linesResult(strings.Split(plain, "\n"))
	}
	return core.ExtractionResult{}
}

// extractPage pulls one page's positioned rows, clustering each row
// into cells. The pdf library panics on malformed content, so the
// page is isolated and a failed page yields nothing.
func extractPage(r *pdf.Reader, num int) (cells [][]string, lines []string) {
	defer func() {
		if rec := recover(); rec != nil {
			cells, lines = nil, nil
		}
	}()

	p := r.Page(num)
	if p.V.IsNull() {
		return nil, nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, nil
	}
	for _, row := range rows {
		rowCells := clusterCells(row.Content)
		if len(rowCells) == 0 {
			continue
		}
		cells = append(cells, rowCells)
		lines = append(lines, strings.Join(rowCells, " "))
	}
	return cells, lines
}

// clusterCells joins a row's text fragments (sorted by X) into cells,
// splitting wherever the horizontal gap exceeds the cell threshold.
func clusterCells(texts []pdf.Text) []string {
	var cells []string
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			cells = append(cells, s)
		}
		cur.Reset()
	}

	prevEnd := 0.0
	started := false
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		size := t.FontSize
		if size <= 0 {
			size = 10
		}
		if started {
			gap := t.X - prevEnd
			switch {
			case gap > size*cellGapFactor:
				flush()
			case gap > size*wordGapFactor:
				cur.WriteByte(' ')
			}
		}
		cur.WriteString(t.S)
		prevEnd = t.X + t.W
		started = true
	}
	flush()
	return cells
}

// detectTable decides whether a page's clustered rows form a table:
// at least two rows must split into multiple cells and such rows must
// dominate the page. The first multi-cell row is the header.
func detectTable(rows [][]string) (header []string, body [][]string, ok bool) {
	var multi [][]string
	for _, r := range rows {
		if len(r) >= 2 {
			multi = append(multi, r)
		}
	}
	if len(multi) < 2 || len(multi)*2 < len(rows) {
		return nil, nil, false
	}
	return multi[0], multi[1:], true
}

func documentPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	out, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return string(out)
}

// printableLines salvages printable text from bytes that did not
// parse as PDF, then splits them into lines.
func printableLines(data []byte) []string {
	var out bytes.Buffer
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			if b := data[0]; b == '\n' || b == '\t' || (b >= 32 && b < 127) {
				out.WriteByte(b)
			}
			data = data[1:]
			continue
		}
		data = data[size:]
		if r == '\n' || r == '\t' || r >= 32 {
			out.WriteRune(r)
		}
	}
	return strings.Split(out.String(), "\n")
}
