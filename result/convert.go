package result

import "github.com/kbukum/fnkit/option"

// OkOr converts an Option into a Result, using err for None.
func OkOr[T, E any](o option.Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](err)
}

// OkOrElse converts an Option into a Result, calling factory for None only.
func OkOrElse[T, E any](o option.Option[T], factory func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](factory())
}

// Transpose turns a Result of an Option into an Option of a Result:
//
//	Ok(None)    -> None
//	Ok(Some(v)) -> Some(Ok(v))
//	Err(e)      -> Some(Err(e))
//
// Absence is only expressible as Ok(None); an Err is always kept.
func Transpose[T, E any](r Result[option.Option[T], E]) option.Option[Result[T, E]] {
	if !r.ok {
		return option.Some(Err[T](r.err))
	}
	v, ok := r.value.Get()
	if !ok {
		return option.None[Result[T, E]]()
	}
	return option.Some(Ok[T, E](v))
}

// TransposeOption is the inverse of Transpose:
//
//	None         -> Ok(None)
//	Some(Ok(v))  -> Ok(Some(v))
//	Some(Err(e)) -> Err(e)
func TransposeOption[T, E any](o option.Option[Result[T, E]]) Result[option.Option[T], E] {
	r, ok := o.Get()
	if !ok {
		return Ok[option.Option[T], E](option.None[T]())
	}
	if !r.ok {
		return Err[option.Option[T]](r.err)
	}
	return Ok[option.Option[T], E](option.FromOk(r.value, true))
}
