package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinels matched by the programmer-error types.
var (
	ErrUnwrap           = stderrors.New("unwrap failed")
	ErrUnmetExpectation = stderrors.New("unmet expectation")
	ErrInvalidState     = stderrors.New("invalid state")
)

// UnwrapError is raised when a value is unwrapped from the wrong variant and
// there is no payload to report (Option's None).
type UnwrapError struct {
	// Variant is the variant the value actually held.
	Variant string
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("called unwrap on a %s value", e.Variant)
}

func (e *UnwrapError) Is(target error) bool { return target == ErrUnwrap }

// UnwrapValueError is raised when a Result is unwrapped from the wrong
// variant. It carries the payload the Result actually held.
type UnwrapValueError[T any] struct {
	Variant string
	Value   T
}

func (e *UnwrapValueError[T]) Error() string {
	return fmt.Sprintf("called unwrap on an %s value: %v", e.Variant, e.Value)
}

func (e *UnwrapValueError[T]) Is(target error) bool { return target == ErrUnwrap }

// Unwrap exposes the payload when it is itself an error.
func (e *UnwrapValueError[T]) Unwrap() error {
	if err, ok := any(e.Value).(error); ok {
		return err
	}
	return nil
}

// UnmetExpectationError is raised by Expect and ExpectErr.
type UnmetExpectationError struct {
	Message string
	// Value is the payload of the variant that was present instead, if any.
	Value    any
	HasValue bool
}

func (e *UnmetExpectationError) Error() string {
	if e.HasValue {
		return fmt.Sprintf("%s: %v", e.Message, e.Value)
	}
	return e.Message
}

func (e *UnmetExpectationError) Is(target error) bool { return target == ErrUnmetExpectation }

// Unwrap exposes the payload when it is itself an error.
func (e *UnmetExpectationError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// InvalidStateError is raised when a value is constructed in a state its
// type forbids, such as Some wrapping a default value.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// PanicError carries a value recovered from a panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
