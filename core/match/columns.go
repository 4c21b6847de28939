// Package match implements the fuzzy matchers: column-pair discovery
// across two tables, and line-level text matching across two line
// lists. Both score with the fuzzywuzzy ratio family in [0,100] and
// carry independent threshold knobs.
package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/gaurav-prasanna/docjoin/core"
)

// DefaultColumnThreshold is the minimum (exclusive) name-similarity
// score for a column pair to qualify as a join key.
const DefaultColumnThreshold = 80

// Columns proposes the best column pair to join tableA and tableB on,
// scoring every (columnA, columnB) pair with a case-insensitive
// edit-distance ratio. Only pairs strictly above the threshold
// qualify; the highest score wins and ties keep the pair seen first
// in (columnA outer, columnB inner) order. The second return is
// false when no pair qualifies — a normal outcome, not an error.
func Columns(tableA, tableB core.Table, threshold int) (core.ColumnMatch, bool) {
	var best core.ColumnMatch
	found := false
	for _, colA := range tableA.Columns {
		for _, colB := range tableB.Columns {
			score := fuzzy.Ratio(strings.ToLower(colA), strings.ToLower(colB))
			if score > threshold && score > best.Score {
				best = core.ColumnMatch{ColumnA: colA, ColumnB: colB, Score: score}
				found = true
			}
		}
	}
	return best, found
}
