// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/researchlib/internal/export"
	"github.com/pdiddy/researchlib/pkg/types"
)

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// loadRecords reads a record list from path. Stdin is read as JSON unless
// --yaml is set.
func loadRecords(cmd *cobra.Command, path string) ([]types.Record, error) {
	if path != "-" {
		return export.LoadRecords(path)
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	asYAML, _ := cmd.Flags().GetBool("yaml")
	return export.DecodeRecords(data, asYAML)
}

// emit writes v to the --output file in the configured export format, or
// to stdout as JSON when no output file is given.
func emit(cmd *cobra.Command, v any) error {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		return export.EncodeJSON(v, cmd.OutOrStdout())
	}

	format := cfg.Export.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = types.ExportFormat(f)
	}

	var err error
	switch format {
	case types.ExportYAML:
		err = export.YAML(v, out)
	case types.ExportSQLite:
		records, ok := v.([]types.Record)
		if !ok {
			return fmt.Errorf("sqlite export needs a record list, got %T", v)
		}
		err = export.WriteCatalog(records, out)
	default:
		err = export.JSON(v, out)
	}
	if err != nil {
		return err
	}
	logger.Info("wrote output", "path", out, "format", string(format))
	return nil
}

// addOutputFlags registers the flags used by emit.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "write results to this file instead of stdout")
	cmd.Flags().String("format", "", "output file format: json, yaml, or sqlite (default from config)")
}

// addInputFlags registers the flags used by loadRecords.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("yaml", false, "read stdin as YAML instead of JSON")
}
