package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrValidationFailed indicates that an inbound payload does not match the analysis schema.
	ErrValidationFailed = errors.New("validation failed")
)

// Validation messages shared by the request decoder and its tests.
const (
	MsgFieldRequired = "field required"
	MsgMustBeString  = "must be a string"
	MsgInvalidJSON   = "invalid JSON body"
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// errors.Is(err, ErrValidationFailed) reports true for every ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
