package result

// Match returns onOk(value) for Ok and onErr(payload) for Err.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map transforms the value of an Ok.
func Map[T, E, U any](r Result[T, E], mapper func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](mapper(r.value))
}

// MapErr transforms the payload of an Err.
func MapErr[T, E, F any](r Result[T, E], mapper func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](mapper(r.err))
}

// MapOr returns mapper(value) for Ok and fallback for Err.
func MapOr[T, E, U any](r Result[T, E], fallback U, mapper func(T) U) U {
	if !r.ok {
		return fallback
	}
	return mapper(r.value)
}

// MapOrElse returns mapper(value) for Ok and fallback(payload) for Err.
func MapOrElse[T, E, U any](r Result[T, E], fallback func(E) U, mapper func(T) U) U {
	if !r.ok {
		return fallback(r.err)
	}
	return mapper(r.value)
}

// And returns other if r is Ok, otherwise r's error.
func And[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return other
}

// AndThen chains a fallible step. The binder does not run on Err.
func AndThen[T, E, U any](r Result[T, E], binder func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return binder(r.value)
}

// Or returns r if it is Ok, other otherwise.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return other
}

// OrElse recovers from an Err by running handle on its payload.
func OrElse[T, E, F any](r Result[T, E], handle func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return handle(r.err)
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Err[T](r.err)
	}
	return r.value
}

// Collect gathers the values of results, stopping at the first Err.
func Collect[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// Partition splits results into their values and error payloads, keeping
// the original order within each group.
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	var values []T
	var errs []E
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
		} else {
			errs = append(errs, r.err)
		}
	}
	return values, errs
}

// Unpack converts back to Go's (value, error) convention.
func Unpack[T any](r Result[T, error]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
