// Package validation validates input and reports the outcome as a Result.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are returned as
// *Errors, which lists the offending fields and unwraps to an errors.Error
// with the Validation code.
//
// # Struct Tag Validation
//
//	type CreateUserCmd struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	r := validation.Struct(cmd)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).MaxLength("name", name, 64)
//	r := validation.Into(v, name)
package validation
