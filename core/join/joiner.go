// Package join computes relational joins over two extracted tables.
// Key comparison is exact on cell values; any fuzziness was resolved
// once, when the join columns were chosen.
package join

import (
	"fmt"

	"github.com/gaurav-prasanna/docjoin/core"
)

// Tables joins tableA and tableB on colA/colB under the given mode.
// Multiple rows sharing a key produce the full cross product. The
// result keeps tableA's columns followed by tableB's, renaming
// tableB columns that collide with tableA's. An empty row set is a
// valid result; only an unknown mode or a missing join column is an
// error.
func Tables(tableA, tableB core.Table, colA, colB string, mode core.JoinMode) (core.JoinResult, error) {
	if !hasColumn(tableA, colA) {
		return core.JoinResult{}, fmt.Errorf("join column %q not in first table", colA)
	}
	if !hasColumn(tableB, colB) {
		return core.JoinResult{}, fmt.Errorf("join column %q not in second table", colB)
	}

	columns, renameB := outputColumns(tableA, tableB)
	out := core.Table{Columns: columns}

	combine := func(rowA, rowB core.Row) core.Row {
		row := make(core.Row, len(columns))
		for col, val := range rowA {
			row[col] = val
		}
		for col, val := range rowB {
			row[renameB[col]] = val
		}
		return row
	}

	byKeyB := indexRows(tableB.Rows, colB)

	switch mode {
	case core.JoinInner, core.JoinLeft:
		for _, rowA := range tableA.Rows {
			matches := keyMatches(byKeyB, tableB.Rows, rowA, colA)
			if len(matches) == 0 {
				if mode == core.JoinLeft {
					out.Rows = append(out.Rows, combine(rowA, nil))
				}
				continue
			}
			for _, rowB := range matches {
				out.Rows = append(out.Rows, combine(rowA, rowB))
			}
		}

	case core.JoinRight:
		byKeyA := indexRows(tableA.Rows, colA)
		for _, rowB := range tableB.Rows {
			matches := keyMatches(byKeyA, tableA.Rows, rowB, colB)
			if len(matches) == 0 {
				out.Rows = append(out.Rows, combine(nil, rowB))
				continue
			}
			for _, rowA := range matches {
				out.Rows = append(out.Rows, combine(rowA, rowB))
			}
		}

	case core.JoinOuter:
		matchedB := make(map[int]bool, len(tableB.Rows))
		for _, rowA := range tableA.Rows {
			key, ok := rowKey(rowA, colA)
			indices := byKeyB[key]
			if !ok || len(indices) == 0 {
				out.Rows = append(out.Rows, combine(rowA, nil))
				continue
			}
			for _, i := range indices {
				matchedB[i] = true
				out.Rows = append(out.Rows, combine(rowA, tableB.Rows[i]))
			}
		}
		for i, rowB := range tableB.Rows {
			if !matchedB[i] {
				out.Rows = append(out.Rows, combine(nil, rowB))
			}
		}

	default:
		return core.JoinResult{}, fmt.Errorf("unknown join mode %q", mode)
	}

	return core.JoinResult{
		Table:    out,
		ColumnA:  colA,
		ColumnB:  colB,
		Mode:     mode,
		RowCount: len(out.Rows),
	}, nil
}

// outputColumns lays out the joined header: tableA's columns, then
// tableB's with colliding names suffixed. renameB maps tableB's
// original names to their output names.
func outputColumns(tableA, tableB core.Table) (columns []string, renameB map[string]string) {
	columns = append(columns, tableA.Columns...)
	taken := make(map[string]bool, len(columns))
	for _, c := range columns {
		taken[c] = true
	}
	renameB = make(map[string]string, len(tableB.Columns))
	for _, c := range tableB.Columns {
		name := c
		for suffix := 2; taken[name]; suffix++ {
			name = fmt.Sprintf("%s_%d", c, suffix)
		}
		taken[name] = true
		renameB[c] = name
		columns = append(columns, name)
	}
	return columns, renameB
}

func hasColumn(t core.Table, name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// indexRows maps key cell values to the row indices carrying them.
// Rows whose key cell is null do not participate in matching.
func indexRows(rows []core.Row, col string) map[string][]int {
	index := make(map[string][]int, len(rows))
	for i, row := range rows {
		if key, ok := row[col]; ok {
			index[key] = append(index[key], i)
		}
	}
	return index
}

func keyMatches(index map[string][]int, rows []core.Row, from core.Row, col string) []core.Row {
	key, ok := rowKey(from, col)
	if !ok {
		return nil
	}
	indices := index[key]
	out := make([]core.Row, 0, len(indices))
	for _, i := range indices {
		out = append(out, rows[i])
	}
	return out
}

func rowKey(row core.Row, col string) (string, bool) {
	key, ok := row[col]
	return key, ok
}
