package extract

import (
	"bytes"
	"encoding/csv"

	"github.com/gaurav-prasanna/docjoin/core"
)

// extractDelimited parses CSV content into a table. The first record
// supplies the column names. A parse failure yields Empty, never a
// partial table.
func extractDelimited(data []byte) core.ExtractionResult {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows are tolerated; short rows null-fill
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return core.ExtractionResult{}
	}

	var acc tableAccum
	acc.add(records[0], records[1:])
	return acc.result()
}
