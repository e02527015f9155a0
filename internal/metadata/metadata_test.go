// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/researchlib/pkg/types"
)

func TestParseStructured(t *testing.T) {
	res, err := Parse(`{"title": "AI Research", "year": 2024, "keywords": ["ai", "ml"]}`)
	require.NoError(t, err)

	assert.Equal(t, ModeStructured, res.Mode)
	assert.Equal(t, "AI Research", res.Fields["title"])
	assert.Equal(t, float64(2024), res.Fields["year"])

	rec, err := res.Record()
	require.NoError(t, err)
	assert.Equal(t, "2024", types.Value(rec.Year))
	assert.Equal(t, []string{"ai", "ml"}, rec.Keywords)
}

func TestParseRecordListFields(t *testing.T) {
	rec, mode, err := ParseRecord(`{"title": "T", "editors": ["Ann Lee", "Bo Chan"], "pages": 312}`)
	require.NoError(t, err)
	assert.Equal(t, ModeStructured, mode)
	assert.Equal(t, []string{"Ann Lee", "Bo Chan"}, rec.Extra["editors"])
	assert.Equal(t, int64(312), rec.Extra["pages"])

	v, ok := rec.Get("editors")
	assert.True(t, ok)
	assert.Equal(t, "Ann Lee, Bo Chan", v)
}

func TestParseLines(t *testing.T) {
	text := `
title: AI Research
author: Alice Brown
year: 2024
identifier: 9780135166307
this line has no separator
url:  https://example.org/paper
`
	res, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, ModeLines, res.Mode)
	assert.Equal(t, map[string]any{
		"title":      "AI Research",
		"author":     "Alice Brown",
		"year":       "2024",
		"identifier": "9780135166307",
		"url":        "https://example.org/paper",
	}, res.Fields)
}

func TestParseModesDoNotMix(t *testing.T) {
	// Valid JSON wins outright even though it contains a colon.
	res, err := Parse(`{"note": "a: b"}`)
	require.NoError(t, err)
	assert.Equal(t, ModeStructured, res.Mode)
	assert.Equal(t, map[string]any{"note": "a: b"}, res.Fields)
}

func TestParseNonObjectJSONFallsBack(t *testing.T) {
	res, err := Parse(`["title: not an object"]`)
	require.NoError(t, err)
	assert.Equal(t, ModeLines, res.Mode)
	assert.Equal(t, `not an object"]`, res.Fields[`["title`])
}

func TestParseNoPairs(t *testing.T) {
	res, err := Parse("just some text\nwithout separators")
	require.NoError(t, err)
	assert.Equal(t, ModeLines, res.Mode)
	assert.Empty(t, res.Fields)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}

func TestParseRecord(t *testing.T) {
	rec, mode, err := ParseRecord("title: Quantum Computing\nlast_updated: 2025-02-01\nvenue: Nature")
	require.NoError(t, err)
	assert.Equal(t, ModeLines, mode)
	assert.Equal(t, "Quantum Computing", types.Value(rec.Title))
	assert.Equal(t, "2025-02-01", rec.Timestamp())
	assert.Equal(t, map[string]any{"venue": "Nature"}, rec.Extra)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "structured", ModeStructured.String())
	assert.Equal(t, "lines", ModeLines.String())
	assert.Equal(t, "unknown", Mode(0).String())
}
