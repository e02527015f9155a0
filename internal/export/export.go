// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes records and derived values to files and reads
// record files back. Every write failure is reported as types.ErrExport
// wrapped around the underlying I/O error.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/researchlib/pkg/types"
)

// jsonIndent is the indentation used for JSON exports.
const jsonIndent = "    "

// JSON writes v to path as 4-space indented JSON. Non-ASCII text and HTML
// characters are written literally. Decoding the file reproduces v.
func JSON(v any, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeJSON(v, w)
	})
}

// EncodeJSON writes v to w in the export JSON form.
func EncodeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// YAML writes v to path as YAML.
func YAML(v any, path string) error {
	return writeFile(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(4)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	})
}

// writeFile creates path, runs write, and closes the file on every path.
// Errors from create, write, or close are wrapped with ErrExport.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return exportError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = exportError(path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return exportError(path, err)
	}
	return nil
}

func exportError(path string, err error) error {
	return fmt.Errorf("%w: writing %s: %w", types.ErrExport, path, err)
}

// LoadRecords reads a JSON or YAML file holding a list of records. The
// format is chosen by extension: .yaml and .yml are YAML, anything else is
// JSON.
func LoadRecords(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeRecords(data, isYAML(path))
}

// DecodeRecords decodes a list of records from JSON, or from YAML when
// asYAML is set.
func DecodeRecords(data []byte, asYAML bool) ([]types.Record, error) {
	var records []types.Record
	if asYAML {
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parsing YAML records: %w", err)
		}
	} else if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing JSON records: %w", err)
	}
	if records == nil {
		records = []types.Record{}
	}
	return records, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Write exports records to path in the given format. SQLite exports also
// store the keyword index built from the records.
func Write(records []types.Record, path string, format types.ExportFormat) error {
	switch format {
	case types.ExportJSON, "":
		return JSON(records, path)
	case types.ExportYAML:
		return YAML(records, path)
	case types.ExportSQLite:
		return WriteCatalog(records, path)
	}
	return types.NewInputError("format", fmt.Sprintf("unknown export format %q", format))
}
