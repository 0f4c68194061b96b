package option

import (
	"fmt"
	"reflect"

	"github.com/kbukum/fnkit/errors"
)

// Variant names.
const (
	VariantSome = "Some"
	VariantNone = "None"
)

// Option represents presence (Some) or absence (None) of a value of type T.
// The zero value is None.
//
// The rule that Some never holds the default value of T is enforced only by
// Some and From. FromOk, and the combinators and decoders built on it (Map,
// ZipWith, Unzip, JSON decoding, Result.Ok and Result.Err), can yield
// Some(zero), which is not Equal to From(zero).
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v. It panics with an *errors.InvalidStateError when v is the
// default value of T.
func Some[T any](v T) Option[T] {
	if IsDefault(v) {
		panic(&errors.InvalidStateError{
			Message: fmt.Sprintf("option: Some cannot wrap the default value of %s", reflect.TypeFor[T]()),
		})
	}
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From converts a plain value: the default value of T becomes None, every
// other value becomes Some. The conversion is lossy for legitimately
// zero-like values such as 0 or "".
func From[T any](v T) Option[T] {
	if IsDefault(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// FromOk builds an Option from a value and a presence flag, mirroring Go's
// comma-ok idiom. Presence is explicit, so default values are accepted.
//
//	v, ok := m["port"]
//	port := option.FromOk(v, ok)
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return FromOk(*p, true)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// IsZero reports whether o is None. encoding/json's omitzero option uses it.
func (o Option[T]) IsZero() bool { return !o.some }

// IsSomeAnd reports whether o holds a value satisfying predicate. The
// predicate is not invoked on None.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.some && predicate(o.value)
}

// IsNoneOr reports whether o is None or holds a value satisfying predicate.
func (o Option[T]) IsNoneOr(predicate func(T) bool) bool {
	return !o.some || predicate(o.value)
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Expect returns the value or panics with an *errors.UnmetExpectationError
// carrying msg. Use it where absence is a programmer error.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&errors.UnmetExpectationError{Message: msg})
	}
	return o.value
}

// Unwrap returns the value or panics with an *errors.UnwrapError.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&errors.UnwrapError{Variant: VariantNone})
	}
	return o.value
}

// UnwrapOr returns the value or fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrDefault returns the value or the default value of T.
func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// UnwrapOrElse returns the value or the result of factory, which only runs on None.
func (o Option[T]) UnwrapOrElse(factory func() T) T {
	if o.some {
		return o.value
	}
	return factory()
}

// Inspect calls action with the value when present and returns o unchanged.
func (o Option[T]) Inspect(action func(T)) Option[T] {
	if o.some {
		action(o.value)
	}
	return o
}

// Filter returns o if it holds a value satisfying predicate, None otherwise.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o if it is Some, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns o if it is Some, otherwise the result of factory.
func (o Option[T]) OrElse(factory func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return factory()
}

// Xor returns whichever of o and other is Some when exactly one of them is,
// None otherwise.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Switch runs exactly one of the branches.
func (o Option[T]) Switch(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Variant returns "Some" or "None".
func (o Option[T]) Variant() string {
	if o.some {
		return VariantSome
	}
	return VariantNone
}

// Equal reports whether o and other hold the same variant and, for Some,
// deeply equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	return !o.some || reflect.DeepEqual(o.value, other.value)
}

// String renders "Some(value)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return VariantNone
}
