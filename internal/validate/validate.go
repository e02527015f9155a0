// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks identifiers and the required fields of research
// records.
package validate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/researchlib/pkg/types"
)

// RequiredFields lists the fields a research record must carry, in the
// order they are checked.
var RequiredFields = []string{
	types.FieldTitle,
	types.FieldAuthor,
	types.FieldYear,
	types.FieldIdentifier,
}

// Identifier reports whether id has the shape of an ISBN-10 or ISBN-13
// once hyphens and surrounding whitespace are removed: ten characters whose
// first nine are digits, or thirteen digits. Length counts runes, not bytes.
// An empty id is an input error; any other malformed id returns false.
func Identifier(id string) (bool, error) {
	if id == "" {
		return false, types.NewInputError(types.FieldIdentifier, "identifier is empty")
	}
	clean := []rune(strings.TrimSpace(strings.ReplaceAll(id, "-", "")))
	switch len(clean) {
	case 10:
		return allDigits(clean[:9]), nil
	case 13:
		return allDigits(clean), nil
	}
	return false, nil
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Record checks that every required field is present and non-empty and that
// the identifier is well formed. It reports the first failing field.
func Record(r types.Record) error {
	for _, f := range RequiredFields {
		v, ok := r.Get(f)
		if !ok || v == "" {
			return types.NewValidationError(f, "missing or empty required field")
		}
	}
	ok, err := Identifier(r.ID())
	if err != nil {
		return types.NewValidationError(types.FieldIdentifier, err.Error())
	}
	if !ok {
		return types.NewValidationError(types.FieldIdentifier, "invalid ISBN/identifier format")
	}
	return nil
}

// Records validates each record and returns the first failure, prefixed
// with the record's position.
func Records(records []types.Record) error {
	for i, r := range records {
		if err := Record(r); err != nil {
			return &IndexedError{Index: i, Err: err}
		}
	}
	return nil
}

// IndexedError locates a validation failure within a collection.
type IndexedError struct {
	Index int
	Err   error
}

func (e *IndexedError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *IndexedError) Unwrap() error {
	return e.Err
}
