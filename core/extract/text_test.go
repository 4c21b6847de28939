package extract

import (
	"reflect"
	"testing"
)

func TestExtractText_TrimsDropsAndDeduplicates(t *testing.T) {
	res := extractText([]byte("  alpha  \n\nbeta\r\nalpha\ngamma\n"))
	if !res.IsLines() {
		t.Fatalf("expected line result")
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(res.Lines, want) {
		t.Fatalf("lines = %v, want %v", res.Lines, want)
	}
}

func TestExtractText_OnlyWhitespaceIsEmpty(t *testing.T) {
	if res := extractText([]byte("  \n\t\n")); !res.IsEmpty() {
		t.Fatalf("expected empty result")
	}
}

func TestCleanLines_PreservesFirstSeenOrder(t *testing.T) {
	got := cleanLines([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cleanLines = %v, want %v", got, want)
	}
}

func TestUniqueColumns(t *testing.T) {
	got := uniqueColumns([]string{" ID ", "", "ID", "Name"})
	if got[0] != "ID" {
		t.Fatalf("trim failed: %v", got)
	}
	if got[1] != "column_2" {
		t.Fatalf("empty name not filled: %v", got)
	}
	if got[2] == got[0] {
		t.Fatalf("duplicate not disambiguated: %v", got)
	}
	seen := map[string]bool{}
	for _, c := range got {
		if seen[c] {
			t.Fatalf("columns not unique: %v", got)
		}
		seen[c] = true
	}
}

func TestUniqueColumns_GeneratedNameCollidesWithLiteral(t *testing.T) {
	// The rename of the duplicate "a" must not collide with the
	// literal "a_2" later in the header.
	got := uniqueColumns([]string{"a", "a", "a_2"})
	if len(got) != 3 {
		t.Fatalf("columns = %v, want 3", got)
	}
	seen := map[string]bool{}
	for _, c := range got {
		if seen[c] {
			t.Fatalf("columns not unique: %v", got)
		}
		seen[c] = true
	}
	if got[0] != "a" {
		t.Fatalf("first column = %q, want a", got[0])
	}
}
