// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package unify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/researchlib/pkg/types"
)

func fixedUnifier() *Unifier {
	return &Unifier{
		Now:   func() time.Time { return time.Date(2025, 10, 12, 9, 30, 0, 0, time.UTC) },
		NewID: func() string { return "DOC-0123456789" },
	}
}

func TestGenerateFallbacks(t *testing.T) {
	in := types.Record{
		Name:            types.Str("AI in 2025"),
		Author:          types.Str("jane smith"),
		PublicationDate: types.Str("2025"),
	}

	got, err := fixedUnifier().Generate(in)
	require.NoError(t, err)
	assert.Equal(t, types.UniversalRecord{
		Title:       "AI in 2025",
		Author:      "Smith, Jane",
		Year:        "2025",
		Identifier:  "DOC-0123456789",
		Keywords:    []string{},
		Abstract:    "",
		LastUpdated: "2025-10-12",
	}, got)
}

func TestGeneratePrefersPrimaryFields(t *testing.T) {
	in := types.Record{
		Title:           types.Str("Primary"),
		Name:            types.Str("Secondary"),
		Author:          types.Str("Alice Brown"),
		Year:            types.Str("2024"),
		PublicationDate: types.Str("1999"),
		Identifier:      types.Str("9780135166307"),
		Keywords:        []string{"ai"},
		Abstract:        types.Str("Trends"),
		LastUpdated:     types.Str("2001-01-01"),
	}

	got, err := fixedUnifier().Generate(in)
	require.NoError(t, err)
	assert.Equal(t, "Primary", got.Title)
	assert.Equal(t, "Brown, Alice", got.Author)
	assert.Equal(t, "2024", got.Year)
	assert.Equal(t, "9780135166307", got.Identifier)
	assert.Equal(t, []string{"ai"}, got.Keywords)
	assert.Equal(t, "Trends", got.Abstract)
	assert.Equal(t, "2025-10-12", got.LastUpdated)
}

func TestGenerateDefaults(t *testing.T) {
	got, err := fixedUnifier().Generate(types.Record{Title: types.Str("Alone"), Author: types.Str("")})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.Author)
	assert.Equal(t, "n.d.", got.Year)
}

func TestGenerateMissingTitle(t *testing.T) {
	_, err := fixedUnifier().Generate(types.Record{Author: types.Str("john doe")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrValidation))

	var fe *types.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, types.FieldTitle, fe.Field)
}

func TestGenerateEmptyGeneratedID(t *testing.T) {
	u := fixedUnifier()
	u.NewID = func() string { return "" }
	_, err := u.Generate(types.Record{Title: types.Str("T")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrValidation))
}

func TestGenerateDefaultSources(t *testing.T) {
	got, err := Generate(types.Record{Title: types.Str("T")})
	require.NoError(t, err)
	assert.Regexp(t, `^DOC-[0-9A-F]{10}$`, got.Identifier)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, got.LastUpdated)
}

func TestNew(t *testing.T) {
	u := New(func() time.Time { return time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC) }, "BOOK")
	got, err := u.Generate(types.Record{Title: types.Str("T")})
	require.NoError(t, err)
	assert.Regexp(t, `^BOOK-`, got.Identifier)
	assert.Equal(t, "2030-01-02", got.LastUpdated)
}

func TestGenerateAll(t *testing.T) {
	u := fixedUnifier()
	got, err := u.GenerateAll([]types.Record{{Title: types.Str("A")}, {Name: types.Str("B")}})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Title)

	_, err = u.GenerateAll([]types.Record{{Title: types.Str("A")}, {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestUniversalRecordRoundTrip(t *testing.T) {
	got, err := fixedUnifier().Generate(types.Record{Title: types.Str("A")})
	require.NoError(t, err)

	r := got.Record()
	assert.Equal(t, []string{"title", "author", "year", "identifier", "abstract", "keywords", "last_updated"}, r.FieldNames())
}
