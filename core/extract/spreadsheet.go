package extract

import (
	"bytes"
	"strconv"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/xuri/excelize/v2"

	"github.com/gaurav-prasanna/docjoin/core"
)

// extractSpreadsheet parses XLSX (zip container) or legacy XLS (OLE
// container) content into a table. Each sheet is treated like a page:
// its first row is a header and sheets concatenate through the same
// permissive accumulation as PDF page-tables. A parse failure yields
// Empty, never a partial table.
func extractSpreadsheet(data []byte) core.ExtractionResult {
	if bytes.HasPrefix(data, magicOLE) {
		return extractXLS(data)
	}
	return extractXLSX(data)
}

func extractXLSX(data []byte) core.ExtractionResult {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return core.ExtractionResult{}
	}
	defer func() { _ = f.Close() }()

	var acc tableAccum
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		acc.add(rows[0], rows[1:])
	}
	return acc.result()
}

func extractXLS(data []byte) core.ExtractionResult {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return core.ExtractionResult{}
	}

	var acc tableAccum
	for i := 0; i < wb.GetNumberSheets(); i++ {
		sheet, err := wb.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}
		rows := sheet.GetRows()
		if len(rows) == 0 {
			continue
		}
		header := xlsRowValues(rows[0].GetCols())
		body := make([][]string, 0, len(rows)-1)
		for r := 1; r < len(rows); r++ {
			body = append(body, xlsRowValues(rows[r].GetCols()))
		}
		acc.add(header, body)
	}
	return acc.result()
}

// xlsCell is the subset of the xlsReader cell API the extractor reads.
type xlsCell interface {
	GetString() string
	GetFloat64() float64
	GetInt64() int64
}

func xlsRowValues(cols []structure.CellData) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, xlsCellValue(col))
	}
	return out
}

// xlsCellValue stringifies one cell. Numeric cell records stringify
// empty, so an empty string falls back to the numeric accessors.
func xlsCellValue(cell xlsCell) string {
	val := cell.GetString()
	if val == "" {
		if num := cell.GetFloat64(); num != 0 {
			val = strconv.FormatFloat(num, 'f', -1, 64)
		} else if in := cell.GetInt64(); in != 0 {
			val = strconv.FormatInt(in, 10)
		}
	}
	return val
}
