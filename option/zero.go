package option

import (
	"reflect"
	"sync"
)

var zeroChecks sync.Map // reflect.Type -> func(T) bool

// variant is implemented by Option and result.Result. Their values are never
// treated as defaults, so None and Err(zero) can themselves be wrapped.
type variant interface {
	Variant() string
}

// RegisterZeroCheck overrides default detection for T. It is typically
// called from an init function.
func RegisterZeroCheck[T any](isDefault func(T) bool) {
	zeroChecks.Store(reflect.TypeFor[T](), isDefault)
}

// AllowZero makes Some and From accept every value of T, including its zero value.
func AllowZero[T any]() {
	RegisterZeroCheck(func(T) bool { return false })
}

// IsDefault reports whether v counts as the default value of T. Lookup order:
// a check registered with RegisterZeroCheck, nil for interface and nillable
// kinds, an IsZero() bool method, then reflect.Value.IsZero.
func IsDefault[T any](v T) bool {
	t := reflect.TypeFor[T]()
	if check, ok := zeroChecks.Load(t); ok {
		return check.(func(T) bool)(v)
	}

	boxed := any(v)
	if t.Kind() == reflect.Interface {
		return boxed == nil
	}

	rv := reflect.ValueOf(boxed)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	}

	switch x := boxed.(type) {
	case variant:
		return false
	case interface{ IsZero() bool }:
		return x.IsZero()
	}
	return rv.IsZero()
}
