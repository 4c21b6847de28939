package match

import (
	"reflect"
	"testing"
)

func TestText_TokenSetMatchesReorderedTokens(t *testing.T) {
	linesA := []string{"Total: $100", "Invoice #42"}
	linesB := []string{"invoice 42 paid", "Other"}

	result := Text(linesA, linesB, DefaultLineThreshold)
	want := []string{"Invoice #42"}
	if !reflect.DeepEqual(result.Lines, want) {
		t.Fatalf("lines = %v, want %v", result.Lines, want)
	}
	if result.Count != 1 {
		t.Fatalf("count = %d, want 1", result.Count)
	}
}

func TestText_DeduplicatesPreservingOrder(t *testing.T) {
	linesA := []string{"beta two", "alpha one", "beta two"}
	linesB := []string{"alpha one", "two beta"}

	result := Text(linesA, linesB, DefaultLineThreshold)
	want := []string{"beta two", "alpha one"}
	if !reflect.DeepEqual(result.Lines, want) {
		t.Fatalf("lines = %v, want %v", result.Lines, want)
	}
	if result.Count != len(result.Lines) {
		t.Fatalf("count = %d, want %d", result.Count, len(result.Lines))
	}
}

func TestText_Idempotent(t *testing.T) {
	linesA := []string{"invoice 42", "total 100", "shared line here"}
	linesB := []string{"here shared line", "42 invoice"}

	first := Text(linesA, linesB, DefaultLineThreshold)
	second := Text(linesA, linesB, DefaultLineThreshold)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-run diverged: %v vs %v", first, second)
	}
}

func TestText_NoCommonLines(t *testing.T) {
	result := Text([]string{"alpha beta"}, []string{"gamma delta"}, DefaultLineThreshold)
	if result.Count != 0 || len(result.Lines) != 0 {
		t.Fatalf("expected no matches, got %v", result.Lines)
	}
}

func TestText_EmptyInputs(t *testing.T) {
	result := Text(nil, []string{"something"}, DefaultLineThreshold)
	if result.Count != 0 {
		t.Fatalf("expected no matches, got %v", result.Lines)
	}
}
