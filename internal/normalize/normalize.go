// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes person names for display and indexing.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/researchlib/pkg/types"
)

// AuthorName rewrites name into "Last, First Middle" form with each word
// title-cased. A single-token name is returned title-cased on its own.
// Blank input is an error.
func AuthorName(name string) (string, error) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", types.NewInputError(types.FieldAuthor, "author name is empty")
	}

	caser := cases.Title(language.Und)
	for i, p := range parts {
		parts[i] = caser.String(p)
	}

	if len(parts) < 2 {
		return parts[0], nil
	}
	last := parts[len(parts)-1]
	return last + ", " + strings.Join(parts[:len(parts)-1], " "), nil
}
