package result

import (
	"fmt"
	"reflect"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/option"
)

// Variant names.
const (
	VariantOk  = "Ok"
	VariantErr = "Err"
)

// Result holds either a success value of type T or an error payload of type
// E. The zero value is Err with the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// Of converts Go's (value, error) convention: a non-nil err yields Err(err).
//
//	r := result.Of(os.ReadFile(path))
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether r is Ok.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether r is Err.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// IsOkAnd reports whether r is Ok with a value satisfying predicate.
func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

// IsErrAnd reports whether r is Err with a payload satisfying predicate.
func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.err)
}

// Get returns the value and whether r is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Ok converts r into an Option of its value, discarding the error payload.
func (r Result[T, E]) Ok() option.Option[T] {
	return option.FromOk(r.value, r.ok)
}

// Err converts r into an Option of its error payload.
func (r Result[T, E]) Err() option.Option[E] {
	return option.FromOk(r.err, !r.ok)
}

// Expect returns the value or panics with an *errors.UnmetExpectationError
// carrying msg and the error payload.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&errors.UnmetExpectationError{Message: msg, Value: r.err, HasValue: true})
	}
	return r.value
}

// ExpectErr returns the error payload or panics with an
// *errors.UnmetExpectationError carrying msg and the value.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&errors.UnmetExpectationError{Message: msg, Value: r.value, HasValue: true})
	}
	return r.err
}

// Unwrap returns the value or panics with an *errors.UnwrapValueError[E].
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&errors.UnwrapValueError[E]{Variant: VariantErr, Value: r.err})
	}
	return r.value
}

// UnwrapErr returns the error payload or panics with an
// *errors.UnwrapValueError[T].
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&errors.UnwrapValueError[T]{Variant: VariantOk, Value: r.value})
	}
	return r.err
}

// UnwrapOr returns the value or fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrDefault returns the value or the zero T.
func (r Result[T, E]) UnwrapOrDefault() T {
	if r.ok {
		return r.value
	}
	var zero T
	return zero
}

// UnwrapOrElse returns the value or derives one from the error payload.
func (r Result[T, E]) UnwrapOrElse(handle func(E) T) T {
	if r.ok {
		return r.value
	}
	return handle(r.err)
}

// Inspect calls action with the value when r is Ok and returns r unchanged.
func (r Result[T, E]) Inspect(action func(T)) Result[T, E] {
	if r.ok {
		action(r.value)
	}
	return r
}

// InspectErr calls action with the error payload when r is Err and returns r
// unchanged.
func (r Result[T, E]) InspectErr(action func(E)) Result[T, E] {
	if !r.ok {
		action(r.err)
	}
	return r
}

// Switch runs exactly one of the branches.
func (r Result[T, E]) Switch(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// Variant returns "Ok" or "Err".
func (r Result[T, E]) Variant() string {
	if r.ok {
		return VariantOk
	}
	return VariantErr
}

// Equal reports whether r and other hold the same variant and deeply equal
// payloads.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

// String renders "Ok(value)" or "Err(payload)".
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
