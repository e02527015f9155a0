// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/citation"
)

var citeCmd = &cobra.Command{
	Use:   "cite <records-file>",
	Short: "Format records as APA or MLA citations",
	Long: `Cite prints one citation per record in the chosen style (APA or MLA).
With --csl, writes the records as a CSL-YAML bibliography instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd, args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if csl, _ := cmd.Flags().GetBool("csl"); csl {
		return citation.FormatCSL(records, w)
	}

	name, _ := cmd.Flags().GetString("style")
	if name == "" {
		name = string(cfg.Citation.Style)
	}
	style, err := citation.ParseStyle(name)
	if err != nil {
		return err
	}

	for _, r := range records {
		c, err := citation.Generate(r, style)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, c)
	}
	return nil
}

func init() {
	citeCmd.Flags().String("style", "", "citation style: APA or MLA (default from config)")
	citeCmd.Flags().Bool("csl", false, "write CSL-YAML instead of formatted citations")
	addInputFlags(citeCmd)

	rootCmd.AddCommand(citeCmd)
}
