// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/ids"
	"github.com/pdiddy/researchlib/internal/normalize"
	"github.com/pdiddy/researchlib/internal/textutil"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <name>...",
	Short: "Normalize an author name to \"Last, First\" form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := normalize.AuthorName(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <text>...",
	Short: "Strip unsafe characters from text",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), textutil.SanitizeText(strings.Join(args, " ")))
	},
}

var formatDateCmd = &cobra.Command{
	Use:   "format-date <date>",
	Short: "Convert MM/DD/YYYY or YYYY-MM-DD to YYYY-MM-DD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := textutil.FormatDate(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate a unique record identifier",
	Run: func(cmd *cobra.Command, args []string) {
		prefix, _ := cmd.Flags().GetString("prefix")
		if prefix == "" {
			prefix = cfg.IDs.Prefix
		}
		fmt.Fprintln(cmd.OutOrStdout(), ids.Generate(prefix))
	},
}

func init() {
	idCmd.Flags().String("prefix", "", "identifier prefix (default from config, DOC)")

	rootCmd.AddCommand(normalizeCmd, sanitizeCmd, formatDateCmd, idCmd)
}
