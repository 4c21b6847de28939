// Package pipeline implements the coordinator: extract both inputs,
// decide join mode vs. text mode from what came back, and invoke the
// matcher or joiner. The flow is a linear state machine; the two
// extractions share no state and run concurrently.
package pipeline

import (
	"fmt"
	"sync"

	"github.com/gaurav-prasanna/docjoin/core"
	"github.com/gaurav-prasanna/docjoin/core/join"
	"github.com/gaurav-prasanna/docjoin/core/match"
)

// Pipeline reconciles a pair of documents end to end.
type Pipeline struct {
	Extractor       core.Extractor
	ColumnThreshold int
	LineThreshold   int
}

// New creates a Pipeline with the canonical thresholds (80 for column
// names, 85 for text lines).
func New(extractor core.Extractor) *Pipeline {
	return &Pipeline{
		Extractor:       extractor,
		ColumnThreshold: match.DefaultColumnThreshold,
		LineThreshold:   match.DefaultLineThreshold,
	}
}

// Run extracts both inputs and produces the terminal outcome.
//
// Both tables     → column match → join, or no-join-columns report.
// Both line lists → text match → matched lines, or no-common-text.
// Anything else   → no-extractable-content, with the reason noting
// whether the shapes mismatched or nothing came out at all.
//
// An error is returned only for boundary problems (an unsupported
// format, an invalid join mode); extraction failures inside one input
// never abort the sibling and degrade to the no-content outcome.
func (p *Pipeline) Run(rawA, rawB core.RawInput, mode core.JoinMode) (core.PipelineOutcome, error) {
	if mode == "" {
		mode = core.JoinInner
	}

	var wg sync.WaitGroup
	inputs := [2]core.RawInput{rawA, rawB}
	var results [2]core.ExtractionResult
	var errs [2]error
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.Extractor.Extract(inputs[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return core.PipelineOutcome{}, fmt.Errorf("extracting %s: %w", inputs[i].Name, err)
		}
	}
	resA, resB := results[0], results[1]

	switch {
	case resA.IsTable() && resB.IsTable():
		return p.joinTables(*resA.Table, *resB.Table, mode)

	case resA.IsLines() && resB.IsLines():
		return p.matchLines(resA.Lines, resB.Lines), nil

	case resA.IsEmpty() && resB.IsEmpty():
		return core.PipelineOutcome{
			Kind:   core.OutcomeNoContent,
			Reason: "no extractable content in either input",
		}, nil

	default:
		return core.PipelineOutcome{
			Kind: core.OutcomeNoContent,
			Reason: fmt.Sprintf("inputs extracted to different shapes (%s vs %s); cannot reconcile",
				shape(resA), shape(resB)),
		}, nil
	}
}

func (p *Pipeline) joinTables(tableA, tableB core.Table, mode core.JoinMode) (core.PipelineOutcome, error) {
	pair, ok := match.Columns(tableA, tableB, p.ColumnThreshold)
	if !ok {
		return core.PipelineOutcome{
			Kind:     core.OutcomeNoJoinColumns,
			ColumnsA: tableA.Columns,
			ColumnsB: tableB.Columns,
			Reason:   "no column names similar enough to join on",
		}, nil
	}

	result, err := join.Tables(tableA, tableB, pair.ColumnA, pair.ColumnB, mode)
	if err != nil {
		return core.PipelineOutcome{}, fmt.Errorf("joining on %s/%s: %w", pair.ColumnA, pair.ColumnB, err)
	}
	return core.PipelineOutcome{Kind: core.OutcomeJoined, Join: &result}, nil
}

func (p *Pipeline) matchLines(linesA, linesB []string) core.PipelineOutcome {
	result := match.Text(linesA, linesB, p.LineThreshold)
	if result.Count == 0 {
		return core.PipelineOutcome{
			Kind:   core.OutcomeNoCommonText,
			Reason: "no lines in common above the similarity threshold",
		}
	}
	return core.PipelineOutcome{Kind: core.OutcomeTextMatched, Match: &result}
}

func shape(r core.ExtractionResult) string {
	switch {
	case r.IsTable():
		return "table"
	case r.IsLines():
		return "text"
	default:
		return "empty"
	}
}
