package seq

import (
	"errors"
	"io"
	"iter"
	"math"
	"runtime"

	"github.com/kbukum/fnkit/option"
)

// Iterator is a stateful, single-consumer cursor over a sequence of T.
type Iterator[T any] interface {
	// Next advances the iterator and returns the next element, or None once
	// the sequence is exhausted.
	Next() option.Option[T]
	// SizeHint returns a lower bound on the remaining elements and, when
	// known, an upper bound.
	SizeHint() (int, option.Option[int])
}

// Cloneable is an Iterator that can duplicate its current position.
type Cloneable[T any] interface {
	Iterator[T]
	Clone() Iterator[T]
}

// Cloner is implemented by element types that can deep-copy themselves.
type Cloner[T any] interface {
	Clone() T
}

// Elements and bounds are wrapped with FromOk: a yielded zero value is
// still an element.
func some[T any](v T) option.Option[T] { return option.FromOk(v, true) }

func exact(n int) (int, option.Option[int]) { return n, some(n) }

func unknown() (int, option.Option[int]) { return 0, option.None[int]() }

func infinite() (int, option.Option[int]) { return math.MaxInt, option.None[int]() }

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func checkedAdd(a, b int) option.Option[int] {
	return option.FromOk(a+b, a <= math.MaxInt-b)
}

// SliceIter iterates over a slice.
type SliceIter[T any] struct {
	items []T
	pos   int
}

// FromSlice returns an iterator over items. The slice is not copied.
func FromSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

// Of returns an iterator over its arguments.
func Of[T any](items ...T) *SliceIter[T] {
	return FromSlice(items)
}

func (s *SliceIter[T]) Next() option.Option[T] {
	if s.pos >= len(s.items) {
		return option.None[T]()
	}
	v := s.items[s.pos]
	s.pos++
	return some(v)
}

func (s *SliceIter[T]) SizeHint() (int, option.Option[int]) {
	return exact(len(s.items) - s.pos)
}

// Clone returns an independent iterator at the same position.
func (s *SliceIter[T]) Clone() Iterator[T] {
	c := *s
	return &c
}

// Close releases the resources held by it and by every iterator it wraps,
// such as the coroutine behind FromSeq. Iterators holding nothing are left
// untouched. Take, TakeWhile and Fuse release their source themselves once
// they stop yielding.
func Close[T any](it Iterator[T]) error {
	return release(it)
}

func release(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func releaseAll(vs ...any) error {
	var errs []error
	for _, v := range vs {
		errs = append(errs, release(v))
	}
	return errors.Join(errs...)
}

// pullState is kept apart from pullIter so a cleanup can stop the coroutine
// without keeping the iterator reachable.
type pullState[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *pullState[T]) release() { s.stop() }

type pullIter[T any] struct {
	seq     iter.Seq[T]
	state   *pullState[T]
	cleanup runtime.Cleanup
	done    bool
}

// FromSeq adapts a range-over-func sequence. The sequence is started on the
// first call to Next and released once it is exhausted, on Close, or when
// the iterator is garbage collected.
func FromSeq[T any](s iter.Seq[T]) Iterator[T] {
	return &pullIter[T]{seq: s}
}

func (p *pullIter[T]) Next() option.Option[T] {
	if p.done {
		return option.None[T]()
	}
	if p.state == nil {
		next, stop := iter.Pull(p.seq)
		p.state = &pullState[T]{next: next, stop: stop}
		p.cleanup = runtime.AddCleanup(p, (*pullState[T]).release, p.state)
	}
	v, ok := p.state.next()
	if !ok {
		_ = p.Close()
		return option.None[T]()
	}
	return some(v)
}

func (p *pullIter[T]) SizeHint() (int, option.Option[int]) {
	if p.done {
		return exact(0)
	}
	return unknown()
}

// Close stops the underlying sequence. Later calls to Next return None.
func (p *pullIter[T]) Close() error {
	if p.done {
		return nil
	}
	p.done = true
	if p.state != nil {
		p.cleanup.Stop()
		p.state.stop()
		p.state = nil
	}
	return nil
}

type funcIter[T any] struct {
	next func() option.Option[T]
}

// FromFunc returns an iterator that calls next for every element. It keeps
// calling next after a None, so the function decides whether to resume.
func FromFunc[T any](next func() option.Option[T]) Iterator[T] {
	return &funcIter[T]{next: next}
}

func (f *funcIter[T]) Next() option.Option[T] { return f.next() }

func (f *funcIter[T]) SizeHint() (int, option.Option[int]) { return unknown() }

// Empty returns an exhausted iterator.
func Empty[T any]() *SliceIter[T] {
	return FromSlice[T](nil)
}

// Once returns an iterator yielding v exactly once.
func Once[T any](v T) *SliceIter[T] {
	return FromSlice([]T{v})
}

// RepeatIter yields the same value forever.
type RepeatIter[T any] struct {
	value T
}

// Repeat returns an endless iterator yielding v.
func Repeat[T any](v T) *RepeatIter[T] {
	return &RepeatIter[T]{value: v}
}

func (r *RepeatIter[T]) Next() option.Option[T] { return some(r.value) }

func (r *RepeatIter[T]) SizeHint() (int, option.Option[int]) { return infinite() }

func (r *RepeatIter[T]) Clone() Iterator[T] { return &RepeatIter[T]{value: r.value} }

// RangeIter yields consecutive integers from a half-open interval.
type RangeIter struct {
	next, end int
}

// Range returns an iterator over [start, end). It is empty when end <= start.
func Range(start, end int) *RangeIter {
	return &RangeIter{next: start, end: end}
}

func (r *RangeIter) Next() option.Option[int] {
	if r.next >= r.end {
		return option.None[int]()
	}
	v := r.next
	r.next++
	return some(v)
}

func (r *RangeIter) SizeHint() (int, option.Option[int]) {
	if r.next >= r.end {
		return exact(0)
	}
	if n := uint(r.end) - uint(r.next); n <= math.MaxInt {
		return exact(int(n))
	}
	return math.MaxInt, option.None[int]()
}

func (r *RangeIter) Clone() Iterator[int] {
	c := *r
	return &c
}
