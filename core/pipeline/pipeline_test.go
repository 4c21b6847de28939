package pipeline

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/docjoin/core"
	"github.com/gaurav-prasanna/docjoin/core/extract"
)

func newPipeline() *Pipeline {
	return New(extract.New())
}

func csvInput(name, content string) core.RawInput {
	return core.RawInput{Name: name, Data: []byte(content), Format: core.FormatCSV}
}

func textInput(name, content string) core.RawInput {
	return core.RawInput{Name: name, Data: []byte(content), Format: core.FormatPlainText}
}

func TestRun_TablesJoin(t *testing.T) {
	outcome, err := newPipeline().Run(
		csvInput("a.csv", "ID,Name\n1,Alice\n2,Bob\n"),
		csvInput("b.csv", "id,Score\n1,90\n3,70\n"),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeJoined {
		t.Fatalf("kind = %q, want joined", outcome.Kind)
	}
	if outcome.Join.ColumnA != "ID" || outcome.Join.ColumnB != "id" {
		t.Fatalf("join columns = %s/%s", outcome.Join.ColumnA, outcome.Join.ColumnB)
	}
	if outcome.Join.RowCount != 1 {
		t.Fatalf("rows = %d, want 1", outcome.Join.RowCount)
	}
	row := outcome.Join.Table.Rows[0]
	if row["ID"] != "1" || row["Name"] != "Alice" || row["Score"] != "90" {
		t.Fatalf("unexpected row %v", row)
	}
}

func TestRun_DefaultModeIsInner(t *testing.T) {
	outcome, err := newPipeline().Run(
		csvInput("a.csv", "ID,Name\n1,Alice\n2,Bob\n"),
		csvInput("b.csv", "id,Score\n1,90\n"),
		"",
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Join.Mode != core.JoinInner {
		t.Fatalf("mode = %q, want inner", outcome.Join.Mode)
	}
}

func TestRun_NoJoinColumnsSurfacesBothHeaders(t *testing.T) {
	outcome, err := newPipeline().Run(
		csvInput("a.csv", "Alpha,Beta\n1,2\n"),
		csvInput("b.csv", "Gamma,Delta\n3,4\n"),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeNoJoinColumns {
		t.Fatalf("kind = %q, want no_join_columns", outcome.Kind)
	}
	if len(outcome.ColumnsA) != 2 || len(outcome.ColumnsB) != 2 {
		t.Fatalf("columns not surfaced: %v / %v", outcome.ColumnsA, outcome.ColumnsB)
	}
}

func TestRun_TextMode(t *testing.T) {
	outcome, err := newPipeline().Run(
		textInput("a.txt", "Total: $100\nInvoice #42\n"),
		textInput("b.txt", "invoice 42 paid\nOther\n"),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeTextMatched {
		t.Fatalf("kind = %q, want text_matched", outcome.Kind)
	}
	if outcome.Match.Count != 1 || outcome.Match.Lines[0] != "Invoice #42" {
		t.Fatalf("match = %+v", outcome.Match)
	}
}

func TestRun_NoCommonText(t *testing.T) {
	outcome, err := newPipeline().Run(
		textInput("a.txt", "alpha beta\n"),
		textInput("b.txt", "gamma delta\n"),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeNoCommonText {
		t.Fatalf("kind = %q, want no_common_text", outcome.Kind)
	}
}

func TestRun_BothEmpty(t *testing.T) {
	outcome, err := newPipeline().Run(
		textInput("a.txt", "   \n"),
		textInput("b.txt", ""),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeNoContent {
		t.Fatalf("kind = %q, want no_extractable_content", outcome.Kind)
	}
}

func TestRun_ShapeMismatchIsReportedNotCoerced(t *testing.T) {
	outcome, err := newPipeline().Run(
		csvInput("a.csv", "ID,Name\n1,Alice\n"),
		textInput("b.txt", "some prose line\n"),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeNoContent {
		t.Fatalf("kind = %q, want no_extractable_content", outcome.Kind)
	}
	if !strings.Contains(outcome.Reason, "table") || !strings.Contains(outcome.Reason, "text") {
		t.Fatalf("reason %q does not name the mismatched shapes", outcome.Reason)
	}
}

func TestRun_OneBadInputDoesNotAbortSibling(t *testing.T) {
	// Garbage declared as a spreadsheet extracts to Empty; the good
	// CSV still extracts and the run resolves to a reportable
	// outcome instead of an error.
	outcome, err := newPipeline().Run(
		core.RawInput{Name: "bad.xlsx", Data: []byte("\x00\x01garbage"), Format: core.FormatSpreadsheet},
		csvInput("b.csv", "ID,Name\n1,Alice\n"),
		core.JoinInner,
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != core.OutcomeNoContent {
		t.Fatalf("kind = %q, want no_extractable_content", outcome.Kind)
	}
}

func TestRun_UnsupportedFormatIsBoundaryError(t *testing.T) {
	_, err := newPipeline().Run(
		core.RawInput{Name: "a.docx", Data: []byte("x"), Format: core.Format("docx")},
		csvInput("b.csv", "ID\n1\n"),
		core.JoinInner,
	)
	if err == nil {
		t.Fatalf("expected boundary error for unsupported format")
	}
}
