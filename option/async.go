package option

import "context"

// When an async callback fails, the error is returned together with the
// zero value of the result (None for Option results).

// IsSomeAndAsync is the context-aware form of IsSomeAnd.
func (o Option[T]) IsSomeAndAsync(ctx context.Context, predicate func(context.Context, T) (bool, error)) (bool, error) {
	if !o.some {
		return false, nil
	}
	return predicate(ctx, o.value)
}

// IsNoneOrAsync is the context-aware form of IsNoneOr.
func (o Option[T]) IsNoneOrAsync(ctx context.Context, predicate func(context.Context, T) (bool, error)) (bool, error) {
	if !o.some {
		return true, nil
	}
	return predicate(ctx, o.value)
}

// UnwrapOrElseAsync is the context-aware form of UnwrapOrElse.
func (o Option[T]) UnwrapOrElseAsync(ctx context.Context, factory func(context.Context) (T, error)) (T, error) {
	if o.some {
		return o.value, nil
	}
	return factory(ctx)
}

// InspectAsync is the context-aware form of Inspect.
func (o Option[T]) InspectAsync(ctx context.Context, action func(context.Context, T) error) (Option[T], error) {
	if !o.some {
		return o, nil
	}
	if err := action(ctx, o.value); err != nil {
		return None[T](), err
	}
	return o, nil
}

// FilterAsync is the context-aware form of Filter.
func (o Option[T]) FilterAsync(ctx context.Context, predicate func(context.Context, T) (bool, error)) (Option[T], error) {
	if !o.some {
		return o, nil
	}
	keep, err := predicate(ctx, o.value)
	if err != nil || !keep {
		return None[T](), err
	}
	return o, nil
}

// OrElseAsync is the context-aware form of OrElse.
func (o Option[T]) OrElseAsync(ctx context.Context, factory func(context.Context) (Option[T], error)) (Option[T], error) {
	if o.some {
		return o, nil
	}
	return factory(ctx)
}

// SwitchAsync is the context-aware form of Switch.
func (o Option[T]) SwitchAsync(ctx context.Context, onSome func(context.Context, T) error, onNone func(context.Context) error) error {
	if o.some {
		return onSome(ctx, o.value)
	}
	return onNone(ctx)
}

// MatchAsync is the context-aware form of Match.
func MatchAsync[T, U any](ctx context.Context, o Option[T], onSome func(context.Context, T) (U, error), onNone func(context.Context) (U, error)) (U, error) {
	if o.some {
		return onSome(ctx, o.value)
	}
	return onNone(ctx)
}

// MapAsync is the context-aware form of Map.
func MapAsync[T, U any](ctx context.Context, o Option[T], mapper func(context.Context, T) (U, error)) (Option[U], error) {
	if !o.some {
		return None[U](), nil
	}
	v, err := mapper(ctx, o.value)
	if err != nil {
		return None[U](), err
	}
	return FromOk(v, true), nil
}

// MapOrAsync is the context-aware form of MapOr.
func MapOrAsync[T, U any](ctx context.Context, o Option[T], fallback U, mapper func(context.Context, T) (U, error)) (U, error) {
	if !o.some {
		return fallback, nil
	}
	return mapper(ctx, o.value)
}

// MapOrElseAsync is the context-aware form of MapOrElse.
func MapOrElseAsync[T, U any](ctx context.Context, o Option[T], fallback func(context.Context) (U, error), mapper func(context.Context, T) (U, error)) (U, error) {
	if !o.some {
		return fallback(ctx)
	}
	return mapper(ctx, o.value)
}

// AndThenAsync is the context-aware form of AndThen.
func AndThenAsync[T, U any](ctx context.Context, o Option[T], binder func(context.Context, T) (Option[U], error)) (Option[U], error) {
	if !o.some {
		return None[U](), nil
	}
	return binder(ctx, o.value)
}

// ZipWithAsync is the context-aware form of ZipWith.
func ZipWithAsync[A, B, C any](ctx context.Context, a Option[A], b Option[B], combine func(context.Context, A, B) (C, error)) (Option[C], error) {
	if !a.some || !b.some {
		return None[C](), nil
	}
	v, err := combine(ctx, a.value, b.value)
	if err != nil {
		return None[C](), err
	}
	return FromOk(v, true), nil
}
