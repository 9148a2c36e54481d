package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrTranslation   = errors.New("translation failed")
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// TranslationError is the terminal failure of a provider call: either the
// retry budget was exhausted or the attempt was aborted (timeout or caller
// cancellation). Err holds the last underlying failure.
type TranslationError struct {
	Retries int
	Aborted bool
	Err     error
}

func (e *TranslationError) Error() string {
	msg := "<nil>"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Aborted {
		return fmt.Sprintf("translation aborted (retried %d times): %s", e.Retries, msg)
	}
	return fmt.Sprintf("translation failed (retried %d times): %s", e.Retries, msg)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Is reports ErrTranslation as a match so callers can branch on the kind
// without a type assertion.
func (e *TranslationError) Is(target error) bool { return target == ErrTranslation }
