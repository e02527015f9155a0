// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/export"
	"github.com/pdiddy/researchlib/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <records-file>",
	Short: "Export records to JSON, YAML, or a SQLite catalog",
	Long: `Export writes a record file to --output in the chosen format. JSON is
indented with four spaces and keeps non-ASCII text as is. The sqlite format
writes the records and their keyword index to a catalog database.

With --from-catalog the input is read from a SQLite catalog instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		return fmt.Errorf("--output is required")
	}

	var (
		records []types.Record
		err     error
	)
	if fromCatalog, _ := cmd.Flags().GetBool("from-catalog"); fromCatalog {
		records, err = export.LoadCatalog(context.Background(), args[0])
	} else {
		records, err = loadRecords(cmd, args[0])
	}
	if err != nil {
		return err
	}
	return emit(cmd, records)
}

func init() {
	exportCmd.Flags().Bool("from-catalog", false, "read input from a SQLite catalog")
	addInputFlags(exportCmd)
	addOutputFlags(exportCmd)

	rootCmd.AddCommand(exportCmd)
}
