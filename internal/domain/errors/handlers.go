package errors

import (
	"net/http"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ValidationError is a 400 carrying per-field problems.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a ValidationError from field problems.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewFieldError is a shorthand for a single-field ValidationError.
func NewFieldError(field, message string) *ValidationError {
	return NewValidationError(FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	return e.Message()
}

func (e *ValidationError) HTTPCode() int { return http.StatusBadRequest }

func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }

// Message joins the field messages, so clients that only read "message" still see the cause.
func (e *ValidationError) Message() string {
	if len(e.fields) == 0 {
		return ErrValidationFailed.Message()
	}

	msgs := make([]string, len(e.fields))
	for i, f := range e.fields {
		msgs[i] = f.Message
	}

	return strings.Join(msgs, ", ")
}

// Fields returns the per-field problems.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
