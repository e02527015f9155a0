// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/researchlib/internal/export"
	"github.com/pdiddy/researchlib/pkg/types"
)

// run executes the CLI with args and returns stdout. Flags are reset
// afterwards so commands do not leak state between tests.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

// runWithInput is run with stdin set to input.
func runWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const localDB = `[
  {"identifier": "9780135166307", "last_updated": "2025-01-01", "title": "AI Research"},
  {"identifier": "9780321765615", "last_updated": "2025-02-01", "title": "Quantum Computing"}
]`

const remoteDB = `[
  {"identifier": "9780135166307", "last_updated": "2025-03-15", "title": "AI Research - Revised"},
  {"identifier": "9780201616224", "last_updated": "2025-02-10", "title": "Ethics in AI"},
  {"title": "No ID"}
]`

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "researchlib dev\n", out)
}

func TestNormalizeCommand(t *testing.T) {
	out, err := run(t, "normalize", "john", "doe")
	require.NoError(t, err)
	assert.Equal(t, "Doe, John\n", out)
}

func TestTextCommands(t *testing.T) {
	out, err := run(t, "sanitize", "<b>bold</b>")
	require.NoError(t, err)
	assert.Equal(t, "bbold/b\n", out)

	out, err = run(t, "format-date", "03/15/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15\n", out)

	out, err = run(t, "id", "--prefix", "BOOK")
	require.NoError(t, err)
	assert.Regexp(t, `^BOOK-[0-9A-F]{10}\n$`, out)
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	local := writeJSON(t, dir, "local.json", localDB)
	remote := writeJSON(t, dir, "remote.json", remoteDB)

	out, err := run(t, "merge", local, remote)
	require.NoError(t, err)

	records, err := export.DecodeRecords([]byte(out), false)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "AI Research - Revised", types.Value(records[0].Title))
	assert.Equal(t, "9780201616224", records[2].ID())
}

func TestMergeCommandStrict(t *testing.T) {
	dir := t.TempDir()
	local := writeJSON(t, dir, "local.json", localDB)
	remote := writeJSON(t, dir, "remote.json", remoteDB)

	_, err := run(t, "merge", "--strict", local, remote)
	assert.Error(t, err)
}

func TestMergeCommandStdin(t *testing.T) {
	dir := t.TempDir()
	remote := writeJSON(t, dir, "remote.json", remoteDB)

	out, err := runWithInput(t, localDB, "merge", "-", remote)
	require.NoError(t, err)
	records, err := export.DecodeRecords([]byte(out), false)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	localYAML := "- identifier: \"9780135166307\"\n  last_updated: \"2025-01-01\"\n  title: AI Research\n"
	out, err = runWithInput(t, localYAML, "merge", "--yaml", "-", remote)
	require.NoError(t, err)
	records, err = export.DecodeRecords([]byte(out), false)
	require.NoError(t, err)
	assert.Equal(t, "9780135166307", records[0].ID())
}

func TestMergeCommandRejectsDoubleStdin(t *testing.T) {
	_, err := runWithInput(t, localDB, "merge", "-", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestMergeCommandOutputFile(t *testing.T) {
	dir := t.TempDir()
	local := writeJSON(t, dir, "local.json", localDB)
	remote := writeJSON(t, dir, "remote.json", remoteDB)
	out := filepath.Join(dir, "merged.yaml")

	_, err := run(t, "merge", "-o", out, "--format", "yaml", local, remote)
	require.NoError(t, err)

	records, err := export.LoadRecords(out)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "records.json", `[
  {"title": "AI Research", "author": "Alice Brown", "year": 2024, "identifier": "9780135166307"},
  {"title": "Broken", "author": "Bob", "year": "2020", "identifier": "123"}
]`)

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "valid: 1, invalid: 1")

	_, err = run(t, "validate", "--identifier", "978-0135166307")
	require.NoError(t, err)
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "meta.txt", "title: AI Research\nauthor: Alice Brown\nyear: 2024\nidentifier: 9780135166307\n")

	out, err := run(t, "parse", "--validate", path)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Equal(t, "Alice Brown", fields["author"])
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "local.json", localDB)

	out, err := run(t, "search", "--query", "quantum", "--json", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Quantum Computing")
	assert.NotContains(t, out, "AI Research")

	_, err = run(t, "search", path)
	assert.Error(t, err)
}

func TestIndexCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "docs.json", `[
  {"title": "AI Research", "abstract": "Study on neural architectures", "identifier": "A1"},
  {"title": "Quantum Computing", "abstract": "Qubit theory basics", "identifier": "B2"}
]`)

	out, err := run(t, "index", "--keyword", "neural", path)
	require.NoError(t, err)
	assert.Equal(t, "A1\n", out)

	out, err = run(t, "index", path)
	require.NoError(t, err)
	var idx types.InvertedIndex
	require.NoError(t, json.Unmarshal([]byte(out), &idx))
	assert.Equal(t, []string{"B2"}, idx["qubit"])
}

func TestUnifyCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "raw.json", `[{"name": "AI in 2025", "author": "jane smith", "publication_date": "2025"}]`)

	out, err := run(t, "unify", "--prefix", "REC", path)
	require.NoError(t, err)

	var got []types.UniversalRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Smith, Jane", got[0].Author)
	assert.True(t, strings.HasPrefix(got[0].Identifier, "REC-"))
}

func TestCiteCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "r.json", `[{"title": "AI Research", "author": "Alice Brown", "year": "2024"}]`)

	out, err := run(t, "cite", "--style", "mla", path)
	require.NoError(t, err)
	assert.Equal(t, "Alice Brown. \"AI Research.\" 2024.\n", out)

	_, err = run(t, "cite", "--style", "chicago", path)
	assert.Error(t, err)
}

func TestExportCommandCatalog(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, "local.json", localDB)
	catalog := filepath.Join(dir, "catalog.db")
	back := filepath.Join(dir, "back.json")

	_, err := run(t, "export", "-o", catalog, "--format", "sqlite", path)
	require.NoError(t, err)

	_, err = run(t, "export", "--from-catalog", "-o", back, "--format", "json", catalog)
	require.NoError(t, err)

	want, err := export.LoadRecords(path)
	require.NoError(t, err)
	got, err := export.LoadRecords(back)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
