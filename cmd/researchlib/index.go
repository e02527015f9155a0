// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index <records-file>",
	Short: "Build an inverted keyword index over titles and abstracts",
	Long: `Index tokenizes each record's title and abstract into lowercase words of
at least three letters and maps each word to the identifiers of the records
containing it. With --keyword, prints only the identifiers for the words of
that query.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd, args[0])
	if err != nil {
		return err
	}

	idx := index.Build(records)
	logger.Debug("built keyword index", "documents", len(records), "keywords", len(idx))

	if kw, _ := cmd.Flags().GetString("keyword"); kw != "" {
		for _, id := range index.Search(idx, kw) {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	}
	return emit(cmd, idx)
}

func init() {
	indexCmd.Flags().String("keyword", "", "print identifiers matching every word of this query")
	addInputFlags(indexCmd)
	addOutputFlags(indexCmd)

	rootCmd.AddCommand(indexCmd)
}
