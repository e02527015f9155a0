// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/unify"
)

var unifyCmd = &cobra.Command{
	Use:   "unify <records-file>",
	Short: "Normalize records into the universal record schema",
	Long: `Unify maps each record onto the canonical fields title, author, year,
identifier, keywords, abstract, and last_updated. Titles fall back to name,
years to publication_date, and missing identifiers are generated with the
configured prefix. Authors are normalized to "Last, First".`,
	Args: cobra.ExactArgs(1),
	RunE: runUnify,
}

func runUnify(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd, args[0])
	if err != nil {
		return err
	}

	prefix, _ := cmd.Flags().GetString("prefix")
	if prefix == "" {
		prefix = cfg.IDs.Prefix
	}

	out, err := unify.New(time.Now, prefix).GenerateAll(records)
	if err != nil {
		return err
	}
	return emit(cmd, out)
}

func init() {
	unifyCmd.Flags().String("prefix", "", "prefix for generated identifiers (default from config)")
	addInputFlags(unifyCmd)
	addOutputFlags(unifyCmd)

	rootCmd.AddCommand(unifyCmd)
}
