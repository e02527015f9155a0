// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// UniversalRecord is the canonical, fully populated record schema shared
// with other library systems. Every field is always present.
type UniversalRecord struct {
	Title       string   `json:"title" yaml:"title"`
	Author      string   `json:"author" yaml:"author"`
	Year        string   `json:"year" yaml:"year"`
	Identifier  string   `json:"identifier" yaml:"identifier"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Abstract    string   `json:"abstract" yaml:"abstract"`
	LastUpdated string   `json:"last_updated" yaml:"last_updated"`
}

// Record converts the universal record back into a Record with every
// canonical field present.
func (u UniversalRecord) Record() Record {
	kw := u.Keywords
	if kw == nil {
		kw = []string{}
	}
	return Record{
		Title:       Str(u.Title),
		Author:      Str(u.Author),
		Year:        Str(u.Year),
		Identifier:  Str(u.Identifier),
		Keywords:    append([]string{}, kw...),
		Abstract:    Str(u.Abstract),
		LastUpdated: Str(u.LastUpdated),
	}
}

// InvertedIndex maps a lowercase keyword to the identifiers of the records
// containing it. A record without an identifier is listed as "".
type InvertedIndex map[string][]string

// Keywords returns the indexed keywords in sorted order.
func (idx InvertedIndex) Keywords() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the identifiers listed under keyword, or nil.
func (idx InvertedIndex) Lookup(keyword string) []string {
	return idx[keyword]
}

// CitationStyle selects a citation format.
type CitationStyle string

const (
	StyleAPA CitationStyle = "APA"
	StyleMLA CitationStyle = "MLA"
)

// ExportFormat selects the export file format.
type ExportFormat string

const (
	ExportJSON   ExportFormat = "json"
	ExportYAML   ExportFormat = "yaml"
	ExportSQLite ExportFormat = "sqlite"
)
