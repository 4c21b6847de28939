// Package cmd — reconcile command.
// This is the main command that orchestrates the pipeline:
// read both files → extract ×2 → match/join → render → write.
//
// It handles flag validation, renderer selection, and turning the
// no-result outcomes into status messages instead of reports.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docjoin/core"
	"github.com/gaurav-prasanna/docjoin/core/extract"
	"github.com/gaurav-prasanna/docjoin/core/match"
	"github.com/gaurav-prasanna/docjoin/core/output"
	"github.com/gaurav-prasanna/docjoin/core/pipeline"
	"github.com/gaurav-prasanna/docjoin/core/render"
)

// Flag variables.
var (
	flagMode    string
	flagFormatA string
	flagFormatB string

	flagCSV   bool
	flagJSON  bool
	flagLines bool
	flagPDF   bool

	flagColumnThreshold int
	flagLineThreshold   int
	flagOutputDir       string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <fileA> <fileB>",
	Short: "Reconcile two documents and write the result",
	Long: `Reconcile extracts content from both files and either joins their
tables on the best fuzzily matched column pair, or reports the text
lines they have in common when neither file is tabular.

Examples:
  docjoin reconcile invoices.pdf export.csv
  docjoin reconcile a.xlsx b.csv --mode outer --csv
  docjoin reconcile notes_a.txt notes_b.txt --lines --line_threshold 90`,
	Args: cobra.ExactArgs(2),
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().StringVar(&flagMode, "mode", "inner", "Join mode: inner, left, right, or outer")
	reconcileCmd.Flags().StringVar(&flagFormatA, "format_a", "", "Declared format of fileA: pdf, csv, spreadsheet, html, or plaintext (default: by extension)")
	reconcileCmd.Flags().StringVar(&flagFormatB, "format_b", "", "Declared format of fileB (default: by extension)")

	// Output format flags (mutually exclusive, default JSON).
	reconcileCmd.Flags().BoolVar(&flagCSV, "csv", false, "Output the joined table as CSV")
	reconcileCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the full outcome as JSON (default)")
	reconcileCmd.Flags().BoolVar(&flagLines, "lines", false, "Output the matched lines as plain text")
	reconcileCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a printable PDF report")

	reconcileCmd.Flags().IntVar(&flagColumnThreshold, "column_threshold", match.DefaultColumnThreshold, "Minimum column-name similarity (exclusive)")
	reconcileCmd.Flags().IntVar(&flagLineThreshold, "line_threshold", match.DefaultLineThreshold, "Minimum line similarity (inclusive)")
	reconcileCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	mode, err := parseJoinMode(flagMode)
	if err != nil {
		return err
	}

	rawA, err := readInput(args[0], flagFormatA)
	if err != nil {
		return err
	}
	rawB, err := readInput(args[1], flagFormatB)
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	pipe := pipeline.New(extract.New())
	pipe.ColumnThreshold = flagColumnThreshold
	pipe.LineThreshold = flagLineThreshold

	outcome, err := pipe.Run(rawA, rawB, mode)
	if err != nil {
		return err
	}

	printSummary(outcome)

	renderer := selectRenderer()
	data, err := renderer.Render(outcome)
	if err != nil {
		// The chosen format has nothing to show for this outcome
		// (e.g. --csv when no join happened). The summary above
		// already told the story; this is not a failure.
		fmt.Fprintf(os.Stderr, "✗ Nothing to write: %v\n", err)
		return nil
	}

	path, err := writer.Write(args[0], args[1], data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

func printSummary(outcome core.PipelineOutcome) {
	switch outcome.Kind {
	case core.OutcomeJoined:
		fmt.Fprintf(os.Stdout, "✓ Joined on %s / %s (%s): %d rows\n",
			outcome.Join.ColumnA, outcome.Join.ColumnB, outcome.Join.Mode, outcome.Join.RowCount)
		if outcome.Join.RowCount == 0 {
			fmt.Fprintln(os.Stdout, "  join produced zero rows")
		}
	case core.OutcomeTextMatched:
		fmt.Fprintf(os.Stdout, "✓ %d common lines\n", outcome.Match.Count)
	case core.OutcomeNoJoinColumns:
		fmt.Fprintf(os.Stdout, "✗ %s\n", outcome.Reason)
		fmt.Fprintf(os.Stdout, "  first input columns:  %s\n", strings.Join(outcome.ColumnsA, ", "))
		fmt.Fprintf(os.Stdout, "  second input columns: %s\n", strings.Join(outcome.ColumnsB, ", "))
	default:
		fmt.Fprintf(os.Stdout, "✗ %s\n", outcome.Reason)
	}
}

func readInput(path, declared string) (core.RawInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.RawInput{}, fmt.Errorf("reading %s: %w", path, err)
	}
	format, err := resolveFormat(path, declared)
	if err != nil {
		return core.RawInput{}, err
	}
	return core.RawInput{Name: path, Data: data, Format: format}, nil
}

// resolveFormat prefers the declared format, then the file extension,
// and leaves the format unknown (content-sniffed) otherwise.
func resolveFormat(path, declared string) (core.Format, error) {
	if declared != "" {
		switch f := core.Format(strings.ToLower(declared)); f {
		case core.FormatPDF, core.FormatCSV, core.FormatSpreadsheet, core.FormatPlainText, core.FormatHTML:
			return f, nil
		default:
			return core.FormatUnknown, fmt.Errorf("unsupported format %q", declared)
		}
	}
	return formatFromPath(path), nil
}

func formatFromPath(path string) core.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return core.FormatPDF
	case ".csv":
		return core.FormatCSV
	case ".xlsx", ".xls":
		return core.FormatSpreadsheet
	case ".html", ".htm":
		return core.FormatHTML
	case ".txt", ".text", ".log":
		return core.FormatPlainText
	default:
		return core.FormatUnknown
	}
}

func parseJoinMode(s string) (core.JoinMode, error) {
	switch m := core.JoinMode(strings.ToLower(s)); m {
	case core.JoinInner, core.JoinLeft, core.JoinRight, core.JoinOuter:
		return m, nil
	default:
		return "", fmt.Errorf("invalid join mode %q (want inner, left, right, or outer)", s)
	}
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	if flagCSV {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if flagLines {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() core.Renderer {
	switch {
	case flagCSV:
		return render.NewCSVRenderer()
	case flagLines:
		return render.NewLinesRenderer()
	case flagPDF:
		return render.NewPDFRenderer()
	default:
		return render.NewJSONRenderer()
	}
}
