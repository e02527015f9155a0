// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search filters in-memory record collections by case-insensitive
// substring match and renders results for reference managers.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/researchlib/pkg/types"
)

// Query holds the search parameters.
type Query struct {
	// Text is matched as a lowercase substring.
	Text string

	// Fields restricts matching to these fields. Empty means every field
	// present on each document.
	Fields []string
}

// normalized returns the trimmed, lowercased query text.
func (q Query) normalized() string {
	return strings.ToLower(strings.TrimSpace(q.Text))
}

// IsEmpty reports whether the query has no searchable text.
func (q Query) IsEmpty() bool {
	return q.normalized() == ""
}

// Documents returns the documents whose searched fields contain the query
// text, ignoring case. Fields are tested in Record.FieldNames order when
// q.Fields is empty, otherwise in the caller's order; a document stops
// being scanned at its first hit. Results keep the input order and are
// copies of the input records.
func Documents(q Query, docs []types.Record) ([]types.Record, error) {
	needle := q.normalized()
	if needle == "" {
		return nil, types.NewInputError("query", "search query is empty")
	}

	results := []types.Record{}
	for _, doc := range docs {
		if matches(doc, needle, q.Fields) {
			results = append(results, doc.Clone())
		}
	}
	return results, nil
}

func matches(doc types.Record, needle string, fields []string) bool {
	if len(fields) == 0 {
		fields = doc.FieldNames()
	}
	for _, f := range fields {
		v, ok := doc.Get(f)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []types.Record, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-50s  %-24s  %s\n",
		"Rank", "Identifier", "Title", "Author", "Year")
	fmt.Fprintln(w, strings.Repeat("-", 106))

	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-16s  %-50s  %-24s  %s\n",
			i+1,
			truncate(r.ID(), 16),
			truncate(types.Value(r.Title), 50),
			truncate(types.Value(r.Author), 24),
			types.Value(r.Year))
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max-3]) + "..."
}
