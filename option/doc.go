// Package option implements Option, a value that is either Some(value) or
// None.
//
// An Option never wraps the default (zero) value of its type: Some panics
// with an *errors.InvalidStateError when given one, and From maps default
// values to None. This makes From an unambiguous bridge from plain Go values.
// Code that needs to represent legitimately zero values states presence
// explicitly with FromOk, the comma-ok bridge, which performs no default
// check. Default detection is pluggable per type, see RegisterZeroCheck.
//
// Options are immutable values. Methods cover the operations that keep the
// element type; operations that change it (Map, AndThen, Zip, ...) are
// package-level functions because Go methods cannot declare type parameters.
//
//	host := option.Map(
//	    option.From(os.Getenv("HOST")).Filter(isValidHost),
//	    strings.ToLower,
//	).UnwrapOr("localhost")
//
// Every operation taking a callback has an Async variant that threads a
// context.Context to the callback and reports the callback's error. The
// callback only runs when the variant needs it; None resolves immediately.
package option
