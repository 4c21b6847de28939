// Package core defines the data model and stage interfaces for the
// docjoin pipeline. Each stage is a clean, testable interface; the
// coordinator wires them together for a single two-document run.
package core

// Format identifies the declared or sniffed format of an input.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatCSV         Format = "csv"
	FormatSpreadsheet Format = "spreadsheet"
	FormatPlainText   Format = "plaintext"
	FormatHTML        Format = "html"

	// FormatUnknown asks the extractor to sniff the content.
	FormatUnknown Format = ""
)

// RawInput is one uploaded document: opaque bytes plus a format tag.
// It is created once per input and discarded after extraction.
type RawInput struct {
	Name   string
	Data   []byte
	Format Format
}

// Row maps column names to cell values. An absent key is a null cell.
type Row map[string]string

// Table is tabular content with named, ordered columns. Column names
// are unique within a table and stable for its lifetime.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ExtractionResult is the outcome of extracting one input: a table,
// a list of text lines, or nothing. Never more than one of the two.
type ExtractionResult struct {
	Table *Table
	Lines []string
}

// IsTable reports whether extraction produced tabular content.
func (r ExtractionResult) IsTable() bool { return r.Table != nil }

// IsLines reports whether extraction fell back to text lines.
func (r ExtractionResult) IsLines() bool { return r.Table == nil && len(r.Lines) > 0 }

// IsEmpty reports whether the input yielded no usable content.
func (r ExtractionResult) IsEmpty() bool { return r.Table == nil && len(r.Lines) == 0 }

// ColumnMatch is a proposed join key: one column name from each table
// and their name-similarity score in [0,100].
type ColumnMatch struct {
	ColumnA string `json:"column_a"`
	ColumnB string `json:"column_b"`
	Score   int    `json:"score"`
}

// JoinMode selects which unmatched rows a join retains.
type JoinMode string

const (
	JoinInner JoinMode = "inner"
	JoinLeft  JoinMode = "left"
	JoinRight JoinMode = "right"
	JoinOuter JoinMode = "outer"
)

// JoinResult is a computed join plus the metadata describing how it
// was produced. A zero RowCount is a valid result, not a failure.
type JoinResult struct {
	Table    Table    `json:"table"`
	ColumnA  string   `json:"join_column_a"`
	ColumnB  string   `json:"join_column_b"`
	Mode     JoinMode `json:"join_mode"`
	RowCount int      `json:"row_count"`
}

// MatchResult holds the lines from the first input that matched some
// line in the second, deduplicated in first-occurrence order.
type MatchResult struct {
	Lines []string `json:"lines"`
	Count int      `json:"count"`
}

// OutcomeKind discriminates the terminal states of a pipeline run.
type OutcomeKind string

const (
	OutcomeJoined        OutcomeKind = "joined"
	OutcomeNoJoinColumns OutcomeKind = "no_join_columns"
	OutcomeTextMatched   OutcomeKind = "text_matched"
	OutcomeNoCommonText  OutcomeKind = "no_common_text"
	OutcomeNoContent     OutcomeKind = "no_extractable_content"
)

// PipelineOutcome is the single result value of a run. Exactly the
// fields relevant to Kind are populated; Reason carries a short
// human-readable explanation for the no-result kinds.
type PipelineOutcome struct {
	Kind     OutcomeKind  `json:"outcome"`
	Join     *JoinResult  `json:"join,omitempty"`
	Match    *MatchResult `json:"match,omitempty"`
	ColumnsA []string     `json:"columns_a,omitempty"`
	ColumnsB []string     `json:"columns_b,omitempty"`
	Reason   string       `json:"reason,omitempty"`
}

// Extractor turns one raw input into tabular or line content.
// Per-page and per-row failures inside a document degrade to missing
// content; only an unsupported format is an error.
type Extractor interface {
	Extract(in RawInput) (ExtractionResult, error)
}

// Renderer converts a pipeline outcome into a final output format.
type Renderer interface {
	Render(outcome PipelineOutcome) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".csv").
	Extension() string
}
