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

	// ErrUpstream marks a failed call to the configured text-generation API.
	ErrUpstream = errors.New("upstream call failed")
	// ErrMalformedResponse marks generation output that is not the expected JSON shape.
	ErrMalformedResponse = errors.New("malformed response")

	ErrExtraction           = errors.New("media extraction failed")
	ErrExtractorUnavailable = errors.New("media extractor not configured")
)

// Validation-class errors with a fixed meaning.
var (
	ErrNotAVerb        = fmt.Errorf("word is not a verb: %w", ErrValidation)
	ErrEmptyExtraction = fmt.Errorf("no text found in media: %w", ErrValidation)
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

// IsGenerationFailure reports whether err came from a configured
// text-generation call that failed or returned unusable output.
func IsGenerationFailure(err error) bool {
	return errors.Is(err, ErrUpstream) || errors.Is(err, ErrMalformedResponse)
}
