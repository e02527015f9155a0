// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <records-file>",
	Short: "Filter records by case-insensitive substring match",
	Long: `Search returns the records in which any searched field contains the
query, ignoring case. By default every field on each record is searched;
--fields (or search.fields in the config) restricts the set. Results keep
the order of the input file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	q := search.Query{Fields: cfg.Search.Fields}
	q.Text, _ = cmd.Flags().GetString("query")
	if fields, _ := cmd.Flags().GetString("fields"); fields != "" {
		q.Fields = splitList(fields)
	}
	if q.IsEmpty() {
		return fmt.Errorf("query is empty: provide --query")
	}

	records, err := loadRecords(cmd, args[0])
	if err != nil {
		return err
	}

	results, err := search.Documents(q, records)
	if err != nil {
		return err
	}
	logger.Debug("search complete", "query", q.Text, "documents", len(records), "matches", len(results))

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return emit(cmd, results)
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(results, cmd.OutOrStdout())
	}
	search.FormatTable(results, cmd.OutOrStdout())
	return nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	searchCmd.Flags().StringP("query", "q", "", "text to search for")
	searchCmd.Flags().String("fields", "", "comma-separated fields to search (default: all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	addInputFlags(searchCmd)
	addOutputFlags(searchCmd)

	rootCmd.AddCommand(searchCmd)
}
