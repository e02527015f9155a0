// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Error kinds returned by the record utilities. Callers match them with
// errors.Is.
var (
	// ErrInvalidInput is returned when an argument violates a precondition,
	// such as an empty identifier, name, query, or metadata blob.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation is returned when a record fails the required-field or
	// identifier contract.
	ErrValidation = errors.New("validation failed")

	// ErrExport is returned when an export target could not be written.
	// The underlying I/O error is wrapped alongside it.
	ErrExport = errors.New("export failed")
)

// FieldError names the record field that caused a failure.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a FieldError of kind ErrValidation.
func NewValidationError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: ErrValidation}
}

// NewInputError returns a FieldError of kind ErrInvalidInput.
func NewInputError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: ErrInvalidInput}
}
