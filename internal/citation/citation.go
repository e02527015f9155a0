// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation formats records as APA or MLA citations and as CSL-YAML
// bibliography entries.
package citation

import (
	"fmt"
	"strings"

	"github.com/pdiddy/researchlib/pkg/types"
)

const (
	defaultAuthor = "Unknown Author"
	defaultTitle  = "Untitled"
	defaultYear   = "n.d."
)

// ParseStyle maps a style name to a CitationStyle, ignoring case.
func ParseStyle(s string) (types.CitationStyle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(types.StyleAPA):
		return types.StyleAPA, nil
	case string(types.StyleMLA):
		return types.StyleMLA, nil
	}
	return "", types.NewInputError("style", fmt.Sprintf("unsupported citation style: %s", s))
}

// Generate formats r in the given style. Absent author, title, and year
// fields are replaced with "Unknown Author", "Untitled", and "n.d.".
//
//	APA: Author (Year). Title.
//	MLA: Author. "Title." Year.
func Generate(r types.Record, style types.CitationStyle) (string, error) {
	s, err := ParseStyle(string(style))
	if err != nil {
		return "", err
	}

	author := valueOr(r.Author, defaultAuthor)
	title := valueOr(r.Title, defaultTitle)
	year := valueOr(r.Year, defaultYear)

	switch s {
	case types.StyleMLA:
		return fmt.Sprintf("%s. \"%s.\" %s.", author, title, year), nil
	default:
		return fmt.Sprintf("%s (%s). %s.", author, year, title), nil
	}
}

// valueOr returns *p when the field is present, even if empty.
func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
