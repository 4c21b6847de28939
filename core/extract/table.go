package extract

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/docjoin/core"
)

// tableAccum concatenates per-page (or per-sheet) tables into one.
// A page whose header positionally equals the first header, or whose
// column count matches it, contributes rows under the first header.
// A page with a different column count contributes its rows under its
// own header; its columns join the union and everyone else's columns
// stay null for those rows.
type tableAccum struct {
	table *core.Table
	index map[string]bool // column name -> present
}

func (a *tableAccum) add(header []string, rows [][]string) {
	header = uniqueColumns(header)
	if len(header) == 0 {
		return
	}
	if a.table == nil {
		a.table = &core.Table{Columns: header}
		a.index = make(map[string]bool, len(header))
		for _, c := range header {
			a.index[c] = true
		}
		a.appendRows(header, rows)
		return
	}
	// Same column count: match by position against the first header.
	if len(header) == len(a.table.Columns) {
		a.appendRows(a.table.Columns, rows)
		return
	}
	for _, c := range header {
		if !a.index[c] {
			a.index[c] = true
			a.table.Columns = append(a.table.Columns, c)
		}
	}
	a.appendRows(header, rows)
}

func (a *tableAccum) appendRows(columns []string, rows [][]string) {
	for _, cells := range rows {
		row := make(core.Row, len(columns))
		for i, col := range columns {
			if i < len(cells) {
				row[col] = cells[i]
			}
		}
		a.table.Rows = append(a.table.Rows, row)
	}
}

func (a *tableAccum) result() core.ExtractionResult {
	if a.table == nil {
		return core.ExtractionResult{}
	}
	return core.ExtractionResult{Table: a.table}
}

// uniqueColumns trims header cells and disambiguates duplicate or
// empty names so they can serve as row keys.
func uniqueColumns(header []string) []string {
	out := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		base := name
		for suffix := 2; seen[name]; suffix++ {
			name = base + "_" + strconv.Itoa(suffix)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// cleanLines trims each line, drops empties, and deduplicates while
// preserving first-occurrence order.
func cleanLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}

// linesResult wraps cleaned lines, degrading to Empty when nothing
// survived cleaning.
func linesResult(lines []string) core.ExtractionResult {
	cleaned := cleanLines(lines)
	if len(cleaned) == 0 {
		return core.ExtractionResult{}
	}
	return core.ExtractionResult{Lines: cleaned}
}
