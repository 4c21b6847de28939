package extract

import (
	"strings"

	"github.com/gaurav-prasanna/docjoin/core"
)

// extractText splits plain text on line breaks, trims each line,
// drops empties, and deduplicates in first-seen order, matching the
// page-based text path.
func extractText(data []byte) core.ExtractionResult {
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return linesResult(strings.Split(normalized, "\n"))
}
