package errors

import (
	"fmt"
	"strings"

	"github.com/kbukum/fnkit/config"
)

// ErrorCode is a short, stable string classifying an error independently of
// its message.
type ErrorCode string

// Well-known codes.
const (
	// CodeUnspecified is the default fallback code for blank codes.
	CodeUnspecified ErrorCode = config.DefaultFallbackErrorCode
	// CodeValidation marks input that failed validation.
	CodeValidation ErrorCode = "Validation"
	// CodeNotFound marks a missing resource.
	CodeNotFound ErrorCode = "NotFound"
	// CodeConflict marks a conflict with the current state of a resource.
	CodeConflict ErrorCode = "Conflict"
	// CodeUnauthorized marks a request lacking authentication.
	CodeUnauthorized ErrorCode = "Unauthorized"
	// CodeForbidden marks a request lacking permission.
	CodeForbidden ErrorCode = "Forbidden"
	// CodeTimeout marks an operation that ran out of time.
	CodeTimeout ErrorCode = "Timeout"
	// CodeInternal marks an unexpected failure.
	CodeInternal ErrorCode = "Internal"
)

// String returns the code value.
func (c ErrorCode) String() string { return string(c) }

// NewCode trims s and falls back to the configured fallback code when the
// result is blank.
func NewCode(s string) ErrorCode {
	return Factory{}.Code(s)
}

// CodeFromEnum derives a code from an enum-like value, "{TypeName}.{Member}"
// with the default strategy.
func CodeFromEnum(v fmt.Stringer) ErrorCode {
	return Factory{}.CodeFromEnum(v)
}

// CodeFromError derives a code from the type of err: the type name with a
// trailing "Error" suffix stripped, with the default strategy. Error values
// keep their own code.
func CodeFromError(err error) ErrorCode {
	return Factory{}.CodeFromError(err)
}

// Factory constructs codes and errors against a specific Settings instance.
// The zero Factory uses config.Global().
type Factory struct {
	Settings *config.Settings
}

func (f Factory) settings() *config.Settings {
	if f.Settings != nil {
		return f.Settings
	}
	return config.Global()
}

// Code trims s, substituting the fallback code when blank.
func (f Factory) Code(s string) ErrorCode {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrorCode(f.settings().FallbackErrorCode())
	}
	return ErrorCode(s)
}

// CodeFromEnum derives a code from an enum-like value.
func (f Factory) CodeFromEnum(v fmt.Stringer) ErrorCode {
	if v == nil {
		return f.Code("")
	}
	return f.Code(f.settings().ErrorCodeFactory().FromEnum(v))
}

// CodeFromError derives a code from err.
func (f Factory) CodeFromError(err error) ErrorCode {
	var e Error
	if As(err, &e) {
		return f.Code(string(e.Code))
	}
	if err == nil {
		return f.Code("")
	}
	return f.Code(f.settings().ErrorCodeFactory().FromError(err))
}

// New builds an Error, normalising blank codes and messages to the fallbacks.
func (f Factory) New(code ErrorCode, message string) Error {
	if strings.TrimSpace(message) == "" {
		message = f.settings().FallbackErrorMessage()
	}
	return Error{Code: f.Code(string(code)), Message: message}
}

// FromError converts err into an Error. Errors that already are Error values
// (directly or wrapped) are returned unchanged.
func (f Factory) FromError(err error) Error {
	var e Error
	if As(err, &e) {
		return e
	}
	if err == nil {
		return f.New("", "")
	}
	return f.New(f.CodeFromError(err), err.Error())
}

// FromEnum builds an Error whose code is derived from an enum-like value.
func (f Factory) FromEnum(v fmt.Stringer, message string) Error {
	return f.New(f.CodeFromEnum(v), message)
}
