package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/gaurav-prasanna/docjoin/core"
)

// DefaultLineThreshold is the minimum (inclusive) token-set score for
// two lines to count as the same.
const DefaultLineThreshold = 85

// Text returns the lines from linesA considered equivalent to some
// line in linesB. Scoring uses the token-set ratio, which tolerates
// word reordering and partial token overlap; a line from A is
// retained on its first hit in B. The output is deduplicated in
// first-occurrence order, so re-running with identical inputs yields
// the identical result.
//
// Cost is O(|linesA| × |linesB|) similarity computations; this is the
// dominant cost for large documents.
func Text(linesA, linesB []string, threshold int) core.MatchResult {
	seen := make(map[string]bool, len(linesA))
	matched := make([]string, 0)
	for _, lineA := range linesA {
		for _, lineB := range linesB {
			if fuzzy.TokenSetRatio(lineA, lineB) >= threshold {
				if !seen[lineA] {
					seen[lineA] = true
					matched = append(matched, lineA)
				}
				break
			}
		}
	}
	return core.MatchResult{Lines: matched, Count: len(matched)}
}
