// Package cmd implements the CLI commands for docjoin using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docjoin",
	Short: "docjoin — reconcile two documents by fuzzy join or common text",
	Long: `docjoin ingests two documents (PDF, CSV, spreadsheet, HTML, or plain
text), extracts tabular or line-based content from each, and produces
either an automatic join on a fuzzily matched column pair or the set
of text lines the two documents have in common.

Usage:
  docjoin reconcile <fileA> <fileB> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
