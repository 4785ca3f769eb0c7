package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrColumnNotFound signals that a selected column is absent from the table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrEmptyTable signals a table without columns where at least one is required.
	ErrEmptyTable = errors.New("table has no columns")
	// ErrValidation is the root of all input-validation failures.
	ErrValidation = errors.New("validation error")
	// ErrEncoding signals that uploaded bytes could not be parsed as tabular data.
	ErrEncoding = errors.New("encoding error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
