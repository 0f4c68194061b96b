// Package errors provides the structured error values used as Result error
// payloads, and the error types raised when the Option and Result APIs are
// misused.
//
// Error and ErrorCode are plain comparable values: a short stable code that
// classifies a failure and a human-readable message. Codes can be derived
// from enum-like values ("{TypeName}.{Member}") or from Go error types, via
// the strategy held in package config.
//
// UnwrapError, UnwrapValueError, UnmetExpectationError and InvalidStateError
// signal programmer errors. They are raised with panic and match the
// ErrUnwrap, ErrUnmetExpectation and ErrInvalidState sentinels with errors.Is.
package errors
