package validation

import (
	"strings"

	"github.com/kbukum/fnkit/errors"
)

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the error returned when validation fails.
type Errors struct {
	Fields []FieldError `json:"fields"`
}

// Error joins the field errors as "field: message; field: message".
func (e *Errors) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Field + ": " + f.Message
	}
	return strings.Join(messages, "; ")
}

// ErrorCode returns the Validation code.
func (e *Errors) ErrorCode() string { return string(errors.CodeValidation) }

// Unwrap exposes the failure as a structured errors.Error.
func (e *Errors) Unwrap() error { return errors.Validation(e.Error()) }

// Details returns the field errors for inclusion in error responses.
func (e *Errors) Details() any { return e.Fields }
