// Package result implements Result, a value that is either Ok(value) or
// Err(error payload).
//
// The error payload type E is free: it can be Go's error interface, the
// structured errors.Error of this module, a string or any domain type.
// Results are immutable values; type-changing operations are package-level
// functions.
//
//	user := result.AndThen(
//	    result.Of(strconv.Atoi(raw)),
//	    repo.FindByID,
//	)
//
// Try and Bind form the boundary between panicking or error-returning Go code
// and Results. They recover panics, project the failure into E and report it
// once to the exception logger configured in package config, together with
// the captured call site.
package result
