package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is a structured, comparable error value: a code plus a message.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
}

// Error returns the string representation of the error.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the code as a plain string.
func (e Error) ErrorCode() string { return string(e.Code) }

// Is reports whether target is an Error with the same code, so that
// errors.Is(err, errors.Error{Code: c}) matches by code regardless of message
// when the target message is empty.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// New creates an Error using the global settings for blank codes and messages.
func New(code ErrorCode, message string) Error {
	return Factory{}.New(code, message)
}

// Newf creates an Error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) Error {
	return Factory{}.New(code, fmt.Sprintf(format, args...))
}

// FromError converts err into an Error, deriving the code from its type.
func FromError(err error) Error {
	return Factory{}.FromError(err)
}

// FromEnum creates an Error whose code is derived from an enum-like value.
func FromEnum(v fmt.Stringer, message string) Error {
	return Factory{}.FromEnum(v, message)
}

// --- Common Error Constructors ---

// Validation creates an Error for input that failed validation.
func Validation(message string) Error {
	return New(CodeValidation, message)
}

// NotFound creates an Error for a resource that was not found.
func NotFound(resource string) Error {
	return New(CodeNotFound, fmt.Sprintf("The requested %s was not found.", resource))
}

// Conflict creates an Error for a conflict with the current state of a resource.
func Conflict(reason string) Error {
	return New(CodeConflict, reason)
}

// Internal creates an Error for an unexpected failure. The cause only
// contributes its message.
func Internal(cause error) Error {
	msg := "An unexpected error occurred."
	if cause != nil {
		msg = cause.Error()
	}
	return New(CodeInternal, msg)
}

// As is errors.As from the standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Is is errors.Is from the standard library.
func Is(err, target error) bool { return stderrors.Is(err, target) }
