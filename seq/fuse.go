package seq

import "github.com/kbukum/fnkit/option"

type fuseIter[T any] struct {
	src  Iterator[T]
	done bool
	err  error
}

// Fuse returns an iterator that keeps returning None after the first None,
// without pulling the source again. The source is released at that point.
func Fuse[T any](it Iterator[T]) Iterator[T] {
	if f, ok := it.(*fuseIter[T]); ok {
		return f
	}
	return &fuseIter[T]{src: it}
}

func (f *fuseIter[T]) Next() option.Option[T] {
	if f.done {
		return option.None[T]()
	}
	v := f.src.Next()
	if v.IsNone() {
		_ = f.Close()
	}
	return v
}

func (f *fuseIter[T]) Close() error {
	if !f.done {
		f.done = true
		f.err = release(f.src)
		f.src = nil
	}
	return f.err
}

func (f *fuseIter[T]) SizeHint() (int, option.Option[int]) {
	if f.done {
		return exact(0)
	}
	return f.src.SizeHint()
}
