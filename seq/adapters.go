package seq

import "github.com/kbukum/fnkit/option"

type mapIter[T, U any] struct {
	src Iterator[T]
	f   func(T) U
}

// Map transforms every element with f.
func Map[T, U any](it Iterator[T], f func(T) U) Iterator[U] {
	return &mapIter[T, U]{src: it, f: f}
}

func (m *mapIter[T, U]) Next() option.Option[U] {
	v, ok := m.src.Next().Get()
	if !ok {
		return option.None[U]()
	}
	return some(m.f(v))
}

func (m *mapIter[T, U]) SizeHint() (int, option.Option[int]) { return m.src.SizeHint() }

func (m *mapIter[T, U]) Close() error { return release(m.src) }

type filterMapIter[T, U any] struct {
	src Iterator[T]
	f   func(T) option.Option[U]
}

// FilterMap transforms elements with f and skips those mapped to None.
func FilterMap[T, U any](it Iterator[T], f func(T) option.Option[U]) Iterator[U] {
	return &filterMapIter[T, U]{src: it, f: f}
}

func (m *filterMapIter[T, U]) Next() option.Option[U] {
	for {
		v, ok := m.src.Next().Get()
		if !ok {
			return option.None[U]()
		}
		if out := m.f(v); out.IsSome() {
			return out
		}
	}
}

func (m *filterMapIter[T, U]) SizeHint() (int, option.Option[int]) {
	_, upper := m.src.SizeHint()
	return 0, upper
}

func (m *filterMapIter[T, U]) Close() error { return release(m.src) }

// Filter yields the elements satisfying pred.
func Filter[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return FilterMap(it, func(v T) option.Option[T] {
		return option.FromOk(v, pred(v))
	})
}

type flattenIter[T any] struct {
	outer Iterator[Iterator[T]]
	inner Iterator[T]
}

// Flatten yields the elements of each inner iterator in turn.
func Flatten[T any](it Iterator[Iterator[T]]) Iterator[T] {
	return &flattenIter[T]{outer: it}
}

// FlatMap maps every element to an iterator and flattens the result.
func FlatMap[T, U any](it Iterator[T], f func(T) Iterator[U]) Iterator[U] {
	return Flatten(Map(it, f))
}

func (f *flattenIter[T]) Next() option.Option[T] {
	for {
		if f.inner != nil {
			if v := f.inner.Next(); v.IsSome() {
				return v
			}
			f.inner = nil
		}
		next, ok := f.outer.Next().Get()
		if !ok {
			return option.None[T]()
		}
		f.inner = next
	}
}

func (f *flattenIter[T]) SizeHint() (int, option.Option[int]) {
	lower, upper := 0, option.FromOk(0, true)
	if f.inner != nil {
		lower, upper = f.inner.SizeHint()
	}
	if _, outerUpper := f.outer.SizeHint(); !outerUpper.Equal(some(0)) {
		return lower, option.None[int]()
	}
	return lower, upper
}

func (f *flattenIter[T]) Close() error { return releaseAll(f.inner, f.outer) }

type chainIter[T any] struct {
	first, second Iterator[T]
}

// Chain yields every element of first, then every element of second.
func Chain[T any](first, second Iterator[T]) Iterator[T] {
	return &chainIter[T]{first: first, second: second}
}

func (c *chainIter[T]) Next() option.Option[T] {
	if c.first != nil {
		if v := c.first.Next(); v.IsSome() {
			return v
		}
		c.first = nil
	}
	return c.second.Next()
}

func (c *chainIter[T]) SizeHint() (int, option.Option[int]) {
	if c.first == nil {
		return c.second.SizeHint()
	}
	lo1, hi1 := c.first.SizeHint()
	lo2, hi2 := c.second.SizeHint()
	upper := option.AndThen(option.Zip(hi1, hi2), func(p option.Pair[int, int]) option.Option[int] {
		return checkedAdd(p.First, p.Second)
	})
	return saturatingAdd(lo1, lo2), upper
}

func (c *chainIter[T]) Close() error { return releaseAll(c.first, c.second) }

// Indexed pairs an element with its zero-based position.
type Indexed[T any] struct {
	Index int
	Value T
}

type enumerateIter[T any] struct {
	src   Iterator[T]
	index int
}

// Enumerate pairs every element with its zero-based index.
func Enumerate[T any](it Iterator[T]) Iterator[Indexed[T]] {
	return &enumerateIter[T]{src: it}
}

func (e *enumerateIter[T]) Next() option.Option[Indexed[T]] {
	v, ok := e.src.Next().Get()
	if !ok {
		return option.None[Indexed[T]]()
	}
	out := Indexed[T]{Index: e.index, Value: v}
	e.index++
	return some(out)
}

func (e *enumerateIter[T]) SizeHint() (int, option.Option[int]) { return e.src.SizeHint() }

func (e *enumerateIter[T]) Close() error { return release(e.src) }

type takeIter[T any] struct {
	src       Iterator[T]
	remaining int
	closed    bool
	err       error
}

// Take yields at most n elements. Once n elements were yielded, or the
// source ran out, it returns None without pulling the source again and
// releases the source.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	return &takeIter[T]{src: it, remaining: max(n, 0)}
}

func (t *takeIter[T]) Next() option.Option[T] {
	if t.remaining == 0 {
		return option.None[T]()
	}
	v := t.src.Next()
	if v.IsNone() {
		t.remaining = 0
	} else {
		t.remaining--
	}
	if t.remaining == 0 {
		_ = t.Close()
	}
	return v
}

func (t *takeIter[T]) Close() error {
	t.remaining = 0
	if !t.closed {
		t.closed = true
		t.err = release(t.src)
	}
	return t.err
}

func (t *takeIter[T]) SizeHint() (int, option.Option[int]) {
	if t.remaining == 0 {
		return exact(0)
	}
	lower, upper := t.src.SizeHint()
	return min(lower, t.remaining), some(min(upper.UnwrapOr(t.remaining), t.remaining))
}

type skipIter[T any] struct {
	src Iterator[T]
	n   int
}

// Skip discards the first n elements, lazily on the first pull.
func Skip[T any](it Iterator[T], n int) Iterator[T] {
	return &skipIter[T]{src: it, n: max(n, 0)}
}

func (s *skipIter[T]) Next() option.Option[T] {
	for ; s.n > 0; s.n-- {
		if s.src.Next().IsNone() {
			s.n = 0
			return option.None[T]()
		}
	}
	return s.src.Next()
}

func (s *skipIter[T]) SizeHint() (int, option.Option[int]) {
	lower, upper := s.src.SizeHint()
	return max(lower-s.n, 0), option.Map(upper, func(n int) int { return max(n-s.n, 0) })
}

func (s *skipIter[T]) Close() error { return release(s.src) }

type takeWhileIter[T any] struct {
	src    Iterator[T]
	pred   func(T) bool
	done   bool
	closed bool
	err    error
}

// TakeWhile yields elements until pred first fails, then releases the
// source.
func TakeWhile[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return &takeWhileIter[T]{src: it, pred: pred}
}

func (t *takeWhileIter[T]) Next() option.Option[T] {
	if t.done {
		return option.None[T]()
	}
	v := t.src.Next()
	if !v.IsSomeAnd(t.pred) {
		t.done = true
		_ = t.Close()
		return option.None[T]()
	}
	return v
}

func (t *takeWhileIter[T]) Close() error {
	t.done = true
	if !t.closed {
		t.closed = true
		t.err = release(t.src)
	}
	return t.err
}

func (t *takeWhileIter[T]) SizeHint() (int, option.Option[int]) {
	if t.done {
		return exact(0)
	}
	_, upper := t.src.SizeHint()
	return 0, upper
}

type skipWhileIter[T any] struct {
	src     Iterator[T]
	pred    func(T) bool
	skipped bool
}

// SkipWhile discards elements while pred holds, then yields the rest.
func SkipWhile[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return &skipWhileIter[T]{src: it, pred: pred}
}

func (s *skipWhileIter[T]) Next() option.Option[T] {
	if s.skipped {
		return s.src.Next()
	}
	for {
		v := s.src.Next()
		if !v.IsSomeAnd(s.pred) {
			s.skipped = true
			return v
		}
	}
}

func (s *skipWhileIter[T]) SizeHint() (int, option.Option[int]) {
	lower, upper := s.src.SizeHint()
	if s.skipped {
		return lower, upper
	}
	return 0, upper
}

func (s *skipWhileIter[T]) Close() error { return release(s.src) }

type zipIter[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
}

// Zip pairs elements of a and b until either is exhausted.
func Zip[A, B any](a Iterator[A], b Iterator[B]) Iterator[option.Pair[A, B]] {
	return &zipIter[A, B]{a: a, b: b}
}

func (z *zipIter[A, B]) Next() option.Option[option.Pair[A, B]] {
	a := z.a.Next()
	if a.IsNone() {
		return option.None[option.Pair[A, B]]()
	}
	return option.Zip(a, z.b.Next())
}

func (z *zipIter[A, B]) SizeHint() (int, option.Option[int]) {
	loA, hiA := z.a.SizeHint()
	loB, hiB := z.b.SizeHint()
	upper := option.ZipWith(hiA, hiB, func(x, y int) int { return min(x, y) }).Or(hiA).Or(hiB)
	return min(loA, loB), upper
}

func (z *zipIter[A, B]) Close() error { return releaseAll(z.a, z.b) }

// Inspect calls action on every element as it passes through.
func Inspect[T any](it Iterator[T], action func(T)) Iterator[T] {
	return Map(it, func(v T) T {
		action(v)
		return v
	})
}

// Cloned yields a deep copy of every element, so mutating a yielded element
// does not affect the source.
func Cloned[T Cloner[T]](it Iterator[T]) Iterator[T] {
	return Map(it, func(v T) T { return v.Clone() })
}

// Copied dereferences every element. A nil pointer yields the zero T.
func Copied[T any](it Iterator[*T]) Iterator[T] {
	return Map(it, func(p *T) T {
		if p == nil {
			var zero T
			return zero
		}
		return *p
	})
}

// Peekable is an iterator that can look at its next element without
// consuming it.
type Peekable[T any] struct {
	src    Iterator[T]
	peeked option.Option[option.Option[T]]
}

// NewPeekable wraps it.
func NewPeekable[T any](it Iterator[T]) *Peekable[T] {
	return &Peekable[T]{src: it}
}

// Peek returns the element the next call to Next will return.
func (p *Peekable[T]) Peek() option.Option[T] {
	if v, ok := p.peeked.Get(); ok {
		return v
	}
	v := p.src.Next()
	p.peeked = option.Some(v)
	return v
}

// NextIf consumes and returns the next element only when it satisfies pred.
func (p *Peekable[T]) NextIf(pred func(T) bool) option.Option[T] {
	if v := p.Peek(); v.IsSomeAnd(pred) {
		return p.Next()
	}
	return option.None[T]()
}

func (p *Peekable[T]) Next() option.Option[T] {
	if v, ok := p.peeked.Get(); ok {
		p.peeked = option.None[option.Option[T]]()
		return v
	}
	return p.src.Next()
}

func (p *Peekable[T]) SizeHint() (int, option.Option[int]) {
	v, ok := p.peeked.Get()
	if !ok {
		return p.src.SizeHint()
	}
	if v.IsNone() {
		return exact(0)
	}
	lower, upper := p.src.SizeHint()
	return saturatingAdd(lower, 1), option.Map(upper, func(n int) int { return saturatingAdd(n, 1) })
}

func (p *Peekable[T]) Close() error { return release(p.src) }
