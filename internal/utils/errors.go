package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidValue is matched by every enumeration violation.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidType is matched when a parameter cannot be read as its declared type.
	ErrInvalidType = errors.New("invalid type")
	// ErrMissingColumn is matched when an operation references columns the dataset lacks.
	ErrMissingColumn = errors.New("missing column")
)

// ValidationError represents an error occurring during data validation.
// Field names the option that failed, Value the offending input and Allowed
// the full set of accepted values.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
	Message string
}

// Error returns the error message string.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: '%s'. Allowed values are [%s]",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Unwrap lets errors.Is match ErrInvalidValue.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

// NewInvalidValueError reports value as outside the allowed set for field.
func NewInvalidValueError(field, value string, allowed []string) error {
	cp := make([]string, len(allowed))
	copy(cp, allowed)
	return &ValidationError{
		Field:   field,
		Value:   value,
		Allowed: cp,
	}
}

// TypeError reports a parameter whose value cannot be read as the declared type.
type TypeError struct {
	Field    string
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type for %s: expected %s, got %s", e.Field, e.Expected, e.Got)
}

func (e *TypeError) Unwrap() error {
	return ErrInvalidType
}

// ColumnError lists the columns an operation needed but did not find.
type ColumnError struct {
	Operation string
	Columns   []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: missing columns [%s]", e.Operation, strings.Join(e.Columns, ", "))
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}

// NewColumnError creates a ColumnError for the given operation.
func NewColumnError(operation string, columns ...string) error {
	return &ColumnError{Operation: operation, Columns: columns}
}
