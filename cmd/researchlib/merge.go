// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/reconcile"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <local-file> <remote-file>",
	Short: "Merge two record sets, keeping the newest record per identifier",
	Long: `Merge reconciles a local and a remote record file keyed by identifier.
When both contain an identifier, the remote record replaces the local one
only if its last_updated date is strictly later. New remote identifiers are
appended after the local records. Remote records without an identifier are
dropped, or rejected with --strict. Either file, but not both, may be "-"
for stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("only one of the local and remote files can be read from stdin")
	}

	local, err := loadRecords(cmd, args[0])
	if err != nil {
		return err
	}
	remote, err := loadRecords(cmd, args[1])
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	rc := &reconcile.Reconciler{Logger: logger, Strict: strict}

	res, err := rc.Reconcile(local, remote)
	if err != nil {
		return err
	}

	s := res.Summary
	fmt.Fprintf(cmd.ErrOrStderr(), "merged: %d, added: %d, replaced: %d, kept: %d, dropped: %d\n",
		len(res.Records), s.Added, s.Replaced, s.Kept, s.Dropped)

	return emit(cmd, res.Records)
}

func init() {
	mergeCmd.Flags().Bool("strict", false, "fail on remote records without an identifier")
	addInputFlags(mergeCmd)
	addOutputFlags(mergeCmd)

	rootCmd.AddCommand(mergeCmd)
}
