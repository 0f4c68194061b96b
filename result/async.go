package result

import (
	"context"

	"github.com/kbukum/fnkit/option"
)

// The Async variants thread ctx to their callback and return the callback's
// error alongside the outcome. A failing callback yields the zero outcome.

// IsOkAndAsync is the context-aware form of IsOkAnd.
func (r Result[T, E]) IsOkAndAsync(ctx context.Context, predicate func(context.Context, T) (bool, error)) (bool, error) {
	if !r.ok {
		return false, nil
	}
	return predicate(ctx, r.value)
}

// IsErrAndAsync is the context-aware form of IsErrAnd.
func (r Result[T, E]) IsErrAndAsync(ctx context.Context, predicate func(context.Context, E) (bool, error)) (bool, error) {
	if r.ok {
		return false, nil
	}
	return predicate(ctx, r.err)
}

// UnwrapOrElseAsync is the context-aware form of UnwrapOrElse.
func (r Result[T, E]) UnwrapOrElseAsync(ctx context.Context, handle func(context.Context, E) (T, error)) (T, error) {
	if r.ok {
		return r.value, nil
	}
	return handle(ctx, r.err)
}

// InspectAsync is the context-aware form of Inspect.
func (r Result[T, E]) InspectAsync(ctx context.Context, action func(context.Context, T) error) (Result[T, E], error) {
	if !r.ok {
		return r, nil
	}
	if err := action(ctx, r.value); err != nil {
		return Result[T, E]{}, err
	}
	return r, nil
}

// InspectErrAsync is the context-aware form of InspectErr.
func (r Result[T, E]) InspectErrAsync(ctx context.Context, action func(context.Context, E) error) (Result[T, E], error) {
	if r.ok {
		return r, nil
	}
	if err := action(ctx, r.err); err != nil {
		return Result[T, E]{}, err
	}
	return r, nil
}

// SwitchAsync is the context-aware form of Switch.
func (r Result[T, E]) SwitchAsync(ctx context.Context, onOk func(context.Context, T) error, onErr func(context.Context, E) error) error {
	if r.ok {
		return onOk(ctx, r.value)
	}
	return onErr(ctx, r.err)
}

// MatchAsync is the context-aware form of Match.
func MatchAsync[T, E, U any](ctx context.Context, r Result[T, E], onOk func(context.Context, T) (U, error), onErr func(context.Context, E) (U, error)) (U, error) {
	if r.ok {
		return onOk(ctx, r.value)
	}
	return onErr(ctx, r.err)
}

// MapAsync is the context-aware form of Map.
func MapAsync[T, E, U any](ctx context.Context, r Result[T, E], mapper func(context.Context, T) (U, error)) (Result[U, E], error) {
	if !r.ok {
		return Err[U](r.err), nil
	}
	v, err := mapper(ctx, r.value)
	if err != nil {
		return Result[U, E]{}, err
	}
	return Ok[U, E](v), nil
}

// MapErrAsync is the context-aware form of MapErr.
func MapErrAsync[T, E, F any](ctx context.Context, r Result[T, E], mapper func(context.Context, E) (F, error)) (Result[T, F], error) {
	if r.ok {
		return Ok[T, F](r.value), nil
	}
	e, err := mapper(ctx, r.err)
	if err != nil {
		return Result[T, F]{}, err
	}
	return Err[T](e), nil
}

// MapOrAsync is the context-aware form of MapOr.
func MapOrAsync[T, E, U any](ctx context.Context, r Result[T, E], fallback U, mapper func(context.Context, T) (U, error)) (U, error) {
	if !r.ok {
		return fallback, nil
	}
	return mapper(ctx, r.value)
}

// MapOrElseAsync is the context-aware form of MapOrElse.
func MapOrElseAsync[T, E, U any](ctx context.Context, r Result[T, E], fallback func(context.Context, E) (U, error), mapper func(context.Context, T) (U, error)) (U, error) {
	if !r.ok {
		return fallback(ctx, r.err)
	}
	return mapper(ctx, r.value)
}

// AndThenAsync is the context-aware form of AndThen.
func AndThenAsync[T, E, U any](ctx context.Context, r Result[T, E], binder func(context.Context, T) (Result[U, E], error)) (Result[U, E], error) {
	if !r.ok {
		return Err[U](r.err), nil
	}
	return binder(ctx, r.value)
}

// OrElseAsync is the context-aware form of OrElse.
func OrElseAsync[T, E, F any](ctx context.Context, r Result[T, E], handle func(context.Context, E) (Result[T, F], error)) (Result[T, F], error) {
	if r.ok {
		return Ok[T, F](r.value), nil
	}
	return handle(ctx, r.err)
}

// OkOrElseAsync is the context-aware form of OkOrElse.
func OkOrElseAsync[T, E any](ctx context.Context, o option.Option[T], factory func(context.Context) (E, error)) (Result[T, E], error) {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v), nil
	}
	e, err := factory(ctx)
	if err != nil {
		return Result[T, E]{}, err
	}
	return Err[T](e), nil
}
