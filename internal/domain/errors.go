package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals a field value that violates its validation rule.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing contact.
	ErrNotFound = errors.New("not found")
)

// ValidationError wraps ErrValidation with the rejected field and value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", ErrValidation.Error(), e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a validation error for the given field value.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
