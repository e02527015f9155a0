// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/metadata"
	"github.com/pdiddy/researchlib/internal/validate"
)

var parseCmd = &cobra.Command{
	Use:   "parse <metadata-file>",
	Short: "Parse JSON or \"key: value\" metadata into a record",
	Long: `Parse reads a metadata blob that is either a JSON object or a list of
"key: value" lines and prints the resulting record as JSON. With --validate
the record must also pass the required-field checks.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	rec, mode, err := metadata.ParseRecord(string(data))
	if err != nil {
		return err
	}
	logger.Debug("parsed metadata", "mode", mode.String(), "fields", len(rec.FieldNames()))

	if check, _ := cmd.Flags().GetBool("validate"); check {
		if err := validate.Record(rec); err != nil {
			return err
		}
	}
	return emit(cmd, rec)
}

func init() {
	parseCmd.Flags().Bool("validate", false, "validate the parsed record")
	addOutputFlags(parseCmd)

	rootCmd.AddCommand(parseCmd)
}
