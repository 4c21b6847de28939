package match

import (
	"testing"

	"github.com/gaurav-prasanna/docjoin/core"
)

func table(columns ...string) core.Table {
	return core.Table{Columns: columns}
}

func TestColumns_CaseInsensitiveExact(t *testing.T) {
	pair, ok := Columns(table("ID", "Name"), table("id", "Score"), DefaultColumnThreshold)
	if !ok {
		t.Fatalf("expected a match")
	}
	if pair.ColumnA != "ID" || pair.ColumnB != "id" {
		t.Fatalf("pair = %+v, want ID/id", pair)
	}
	if pair.Score != 100 {
		t.Fatalf("score = %d, want 100", pair.Score)
	}
}

func TestColumns_PicksGlobalMaximum(t *testing.T) {
	// Name/Names scores high but ID/id is exact; the maximum wins
	// regardless of iteration position.
	pair, ok := Columns(table("Name", "ID"), table("Names", "id"), DefaultColumnThreshold)
	if !ok {
		t.Fatalf("expected a match")
	}
	if pair.ColumnA != "ID" || pair.ColumnB != "id" {
		t.Fatalf("pair = %+v, want the exact ID/id pair", pair)
	}
}

func TestColumns_TieKeepsEarliestPair(t *testing.T) {
	pair, ok := Columns(table("ID", "Code"), table("id", "code"), DefaultColumnThreshold)
	if !ok {
		t.Fatalf("expected a match")
	}
	if pair.ColumnA != "ID" || pair.ColumnB != "id" {
		t.Fatalf("pair = %+v, want the first-seen ID/id", pair)
	}
}

func TestColumns_ThresholdIsStrict(t *testing.T) {
	// An exact match scores 100, which is not strictly above 100.
	if _, ok := Columns(table("id"), table("id"), 100); ok {
		t.Fatalf("score equal to threshold should not qualify")
	}
}

func TestColumns_NoCandidate(t *testing.T) {
	if _, ok := Columns(table("Alpha"), table("Zulu"), DefaultColumnThreshold); ok {
		t.Fatalf("dissimilar names should not match")
	}
}

func TestColumns_EmptyTables(t *testing.T) {
	if _, ok := Columns(table(), table("id"), DefaultColumnThreshold); ok {
		t.Fatalf("no columns should mean no match")
	}
}
