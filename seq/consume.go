package seq

import (
	"cmp"
	"iter"
	"strconv"

	"github.com/kbukum/fnkit/option"
)

const maxPrealloc = 1 << 16

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	lower, _ := it.SizeHint()
	out := make([]T, 0, min(lower, maxPrealloc))
	for {
		v, ok := it.Next().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// CollectSome drains an iterator of options, dropping the None holes.
func CollectSome[T any](it Iterator[option.Option[T]]) []T {
	return Collect(FilterMap(it, func(o option.Option[T]) option.Option[T] { return o }))
}

// Fold combines every element into an accumulator, left to right.
func Fold[T, A any](it Iterator[T], seed A, combine func(A, T) A) A {
	acc := seed
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = combine(acc, v)
	}
}

// ForEach calls action on every element.
func ForEach[T any](it Iterator[T], action func(T)) {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		action(v)
	}
}

// All reports whether every element satisfies pred. It stops at the first
// failure and is true for an empty sequence.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return true
		}
		if !pred(v) {
			return false
		}
	}
}

// Any reports whether some element satisfies pred, stopping at the first match.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, pred).IsSome()
}

// Find returns the first element satisfying pred.
func Find[T any](it Iterator[T], pred func(T) bool) option.Option[T] {
	for {
		v := it.Next()
		if v.IsNoneOr(pred) {
			return v
		}
	}
}

// Position returns the index of the first element satisfying pred.
func Position[T any](it Iterator[T], pred func(T) bool) option.Option[int] {
	found := Find(Enumerate(it), func(e Indexed[T]) bool { return pred(e.Value) })
	return option.Map(found, func(e Indexed[T]) int { return e.Index })
}

// Count drains it and returns the number of elements.
func Count[T any](it Iterator[T]) int {
	return Fold(it, 0, func(n int, _ T) int { return n + 1 })
}

// Last drains it and returns the final element.
func Last[T any](it Iterator[T]) option.Option[T] {
	return Fold(it, option.None[T](), func(_ option.Option[T], v T) option.Option[T] { return some(v) })
}

// Nth returns the element at zero-based index n, consuming the elements
// before it.
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	if n < 0 {
		return option.None[T]()
	}
	return Skip(it, n).Next()
}

// Values adapts it to a range-over-func sequence. Breaking out of the loop
// leaves it open; call Close once it is no longer needed.
//
//	for v := range seq.Values(it) { ... }
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Ordering is the outcome of a three-way comparison.
type Ordering int

// Orderings.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}

// Compare orders a and b lexicographically: the first unequal pair of
// elements decides, and a sequence that is a proper prefix of the other is
// Less.
func Compare[T cmp.Ordered](a, b Iterator[T]) Ordering {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a custom element comparison returning a
// negative, zero or positive int.
func CompareFunc[T any](a, b Iterator[T], compare func(T, T) int) Ordering {
	for {
		x, okA := a.Next().Get()
		y, okB := b.Next().Get()
		switch {
		case !okA && !okB:
			return Equal
		case !okA:
			return Less
		case !okB:
			return Greater
		}
		if c := compare(x, y); c != 0 {
			return Ordering(cmp.Compare(c, 0))
		}
	}
}
