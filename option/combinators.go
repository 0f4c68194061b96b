package option

import "fmt"

// Pair holds two values produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String renders "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Match returns onSome(value) for Some and onNone() for None.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the value of a Some. Whatever the mapper returns is wrapped,
// default values included, so Map(o, identity) == o holds for every o.
func Map[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return FromOk(mapper(o.value), true)
}

// MapOr returns mapper(value) for Some and fallback for None.
func MapOr[T, U any](o Option[T], fallback U, mapper func(T) U) U {
	if !o.some {
		return fallback
	}
	return mapper(o.value)
}

// MapOrElse returns mapper(value) for Some and fallback() for None.
func MapOrElse[T, U any](o Option[T], fallback func() U, mapper func(T) U) U {
	if !o.some {
		return fallback()
	}
	return mapper(o.value)
}

// And returns None if o is None, other otherwise.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

// AndThen chains an Option-returning step. The binder does not run on None.
func AndThen[T, U any](o Option[T], binder func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return binder(o.value)
}

// Zip pairs two values when both are present.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if !a.some || !b.some {
		return None[Pair[A, B]]()
	}
	return FromOk(Pair[A, B]{First: a.value, Second: b.value}, true)
}

// ZipWith combines two values when both are present.
func ZipWith[A, B, C any](a Option[A], b Option[B], combine func(A, B) C) Option[C] {
	if !a.some || !b.some {
		return None[C]()
	}
	return FromOk(combine(a.value, b.value), true)
}

// Unzip splits a zipped Option back into its parts.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if !o.some {
		return None[A](), None[B]()
	}
	return FromOk(o.value.First, true), FromOk(o.value.Second, true)
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}
