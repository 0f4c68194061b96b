package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrorCodeFactory derives error codes from enum values and errors.
type ErrorCodeFactory interface {
	// FromEnum derives a code from an enum-like value: a named type with a
	// String method.
	FromEnum(v fmt.Stringer) string
	// FromError derives a code from the dynamic type of err.
	FromError(err error) string
}

// DefaultErrorCodeFactory renders enums as "{TypeName}.{Member}" and errors
// as their type name with a trailing "Error" or "Exception" suffix stripped.
type DefaultErrorCodeFactory struct{}

// FromEnum implements ErrorCodeFactory.
func (DefaultErrorCodeFactory) FromEnum(v fmt.Stringer) string {
	if v == nil {
		return ""
	}
	member := v.String()
	name := typeName(reflect.TypeOf(v))
	if name == "" {
		return member
	}
	return name + "." + member
}

// FromError implements ErrorCodeFactory. Wrapping errors with unexported
// types (such as those built by fmt.Errorf) are skipped in favour of the
// first exported type in the chain; an error chain without one yields "".
func (DefaultErrorCodeFactory) FromError(err error) string {
	for err != nil {
		name := typeName(reflect.TypeOf(err))
		if name != "" && isExported(name) {
			return stripErrorSuffix(name)
		}
		err = errors.Unwrap(err)
	}
	return ""
}

func typeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	name := t.Name()
	// Generic instantiations carry their type arguments in brackets.
	if idx := strings.IndexByte(name, '['); idx != -1 {
		name = name[:idx]
	}
	return name
}

func isExported(name string) bool {
	return name[0] >= 'A' && name[0] <= 'Z'
}

func stripErrorSuffix(name string) string {
	for _, suffix := range []string{"Exception", "Error"} {
		if name != suffix && strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
