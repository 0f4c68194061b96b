package seq

import (
	"math"

	"github.com/kbukum/fnkit/option"
)

type cycleIter[T any] struct {
	orig Cloneable[T] // pristine clone, nil when buffering
	live Iterator[T]

	// Used when the source cannot be cloned: the first pass is recorded and
	// replayed afterwards.
	buf     []T
	pos     int
	drained bool
}

// Cycle repeats the sequence of it endlessly. If it implements Cloneable,
// a pristine clone is taken up front and cloned again each time the live
// iterator runs out. Otherwise the elements of the first pass are buffered
// and replayed. Cycling an empty sequence yields nothing.
func Cycle[T any](it Iterator[T]) Iterator[T] {
	if c, ok := it.(Cloneable[T]); ok {
		if orig, ok := c.Clone().(Cloneable[T]); ok {
			return &cycleIter[T]{orig: orig, live: it}
		}
	}
	return &cycleIter[T]{live: it}
}

func (c *cycleIter[T]) Next() option.Option[T] {
	if c.orig != nil {
		if v := c.live.Next(); v.IsSome() {
			return v
		}
		c.live = c.orig.Clone()
		return c.live.Next()
	}

	if !c.drained {
		if v, ok := c.live.Next().Get(); ok {
			c.buf = append(c.buf, v)
			return some(v)
		}
		c.drained = true
		c.live = nil
	}
	if len(c.buf) == 0 {
		return option.None[T]()
	}
	v := c.buf[c.pos]
	c.pos = (c.pos + 1) % len(c.buf)
	return some(v)
}

func (c *cycleIter[T]) SizeHint() (int, option.Option[int]) {
	var lower int
	var upper option.Option[int]
	switch {
	case c.orig != nil:
		lower, upper = c.orig.SizeHint()
	case c.drained:
		lower, upper = exact(len(c.buf))
	default:
		lower, upper = c.live.SizeHint()
		lower = saturatingAdd(lower, len(c.buf))
		upper = option.Map(upper, func(n int) int { return saturatingAdd(n, len(c.buf)) })
	}

	switch {
	case upper.Equal(some(0)):
		return exact(0)
	case lower > 0:
		return math.MaxInt, some(math.MaxInt)
	default:
		return unknown()
	}
}

func (c *cycleIter[T]) Close() error { return releaseAll(c.live, c.orig) }
