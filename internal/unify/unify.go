// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package unify maps records with arbitrary field names onto the canonical
// universal record schema.
package unify

import (
	"fmt"
	"time"

	"github.com/pdiddy/researchlib/internal/ids"
	"github.com/pdiddy/researchlib/internal/normalize"
	"github.com/pdiddy/researchlib/internal/textutil"
	"github.com/pdiddy/researchlib/pkg/types"
)

const (
	unknownAuthor = "Unknown"
	noDate        = "n.d."
)

// Unifier builds universal records. Now and NewID are injected so callers
// can pin timestamps and identifiers; nil values use the wall clock and
// ids.Generate with the default prefix.
type Unifier struct {
	Now   func() time.Time
	NewID func() string
}

// New returns a Unifier that stamps records with now and generates
// identifiers with prefix.
func New(now func() time.Time, prefix string) *Unifier {
	return &Unifier{Now: now, NewID: ids.Generator(prefix)}
}

// Generate is Unifier.Generate with the default clock and identifier source.
func Generate(r types.Record) (types.UniversalRecord, error) {
	return (&Unifier{}).Generate(r)
}

// Generate resolves each canonical field through its fallback chain:
//
//	title       title, name
//	author      author, "Unknown"; then normalized to "Last, First"
//	year        year, publication_date, "n.d."
//	identifier  identifier, a generated identifier
//	keywords    keywords, []
//	abstract    abstract, ""
//
// An empty value falls through like an absent one. last_updated is today's
// date. A record whose title is still empty after resolution is rejected.
func (u *Unifier) Generate(r types.Record) (types.UniversalRecord, error) {
	author, err := normalize.AuthorName(firstOf(r.Author, unknownAuthor))
	if err != nil {
		return types.UniversalRecord{}, fmt.Errorf("normalizing author: %w", err)
	}

	identifier := types.Value(r.Identifier)
	if identifier == "" {
		identifier = u.newID()
	}

	keywords := []string{}
	if len(r.Keywords) > 0 {
		keywords = append(keywords, r.Keywords...)
	}

	out := types.UniversalRecord{
		Title:       firstOf(r.Title, types.Value(r.Name)),
		Author:      author,
		Year:        firstOf(r.Year, firstOf(r.PublicationDate, noDate)),
		Identifier:  identifier,
		Keywords:    keywords,
		Abstract:    types.Value(r.Abstract),
		LastUpdated: textutil.Today(u.now()),
	}

	if out.Title == "" {
		return types.UniversalRecord{}, types.NewValidationError(types.FieldTitle, "record must contain a title or name")
	}
	if out.Identifier == "" {
		return types.UniversalRecord{}, types.NewValidationError(types.FieldIdentifier, "record must contain an identifier")
	}
	return out, nil
}

// GenerateAll unifies each record, stopping at the first failure.
func (u *Unifier) GenerateAll(records []types.Record) ([]types.UniversalRecord, error) {
	out := make([]types.UniversalRecord, 0, len(records))
	for i, r := range records {
		ur, err := u.Generate(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, ur)
	}
	return out, nil
}

func (u *Unifier) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u *Unifier) newID() string {
	if u.NewID == nil {
		return ids.Generate(ids.DefaultPrefix)
	}
	return u.NewID()
}

// firstOf returns *p when it is present and non-empty, otherwise fallback.
func firstOf(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}
