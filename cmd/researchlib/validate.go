// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [records-file]",
	Short: "Check identifiers and required record fields",
	Long: `Validate checks every record in a file for the required fields title,
author, year, and identifier, and checks that each identifier has the shape
of an ISBN-10 or ISBN-13. Use --identifier to check a single identifier.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if id, _ := cmd.Flags().GetString("identifier"); id != "" {
		ok, err := validate.Identifier(id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("identifier %s is not a valid ISBN-10 or ISBN-13", id)
		}
		fmt.Fprintf(w, "valid   %s\n", id)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("records file or --identifier required")
	}
	records, err := loadRecords(cmd, args[0])
	if err != nil {
		return err
	}

	failed := 0
	for i, r := range records {
		if err := validate.Record(r); err != nil {
			fmt.Fprintf(w, "invalid %d %s: %v\n", i, r.ID(), err)
			failed++
			continue
		}
		fmt.Fprintf(w, "valid   %d %s\n", i, r.ID())
	}

	fmt.Fprintf(w, "\nvalid: %d, invalid: %d\n", len(records)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d record(s) failed validation", failed)
	}
	return nil
}

func init() {
	validateCmd.Flags().String("identifier", "", "validate a single identifier instead of a file")
	addInputFlags(validateCmd)

	rootCmd.AddCommand(validateCmd)
}
