// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/researchlib/internal/validate"
	"github.com/pdiddy/researchlib/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-YAML schema so that
// output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	Issued   *CSLDate  `yaml:"issued,omitempty"`
	ISBN     string    `yaml:"ISBN,omitempty"`
	Keyword  string    `yaml:"keyword,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.Record, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = ToCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// ToCSLItem converts a Record to a CSLItem. Records with a valid ISBN-shaped
// identifier are typed as books; everything else is an article.
func ToCSLItem(r types.Record) CSLItem {
	item := CSLItem{
		ID:       r.ID(),
		Type:     "article",
		Title:    types.Value(r.Title),
		Abstract: types.Value(r.Abstract),
		Keyword:  strings.Join(r.Keywords, ", "),
	}
	if item.Title == "" {
		item.Title = types.Value(r.Name)
	}

	if a := types.Value(r.Author); a != "" {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	year := types.Value(r.Year)
	if year == "" {
		year = types.Value(r.PublicationDate)
	}
	if y, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}

	if id := r.ID(); id != "" {
		if ok, _ := validate.Identifier(id); ok {
			item.Type = "book"
			item.ISBN = id
		}
	}

	return item
}

// parseAuthorName splits a name into CSL family/given parts. A normalized
// "Family, Given" name splits on the comma; otherwise the last token is the
// family name. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{Family: strings.TrimSpace(family), Given: strings.TrimSpace(given)}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
