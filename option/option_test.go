package option

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/fnkit/errors"
)

func expectPanic[E error](t *testing.T, fn func()) E {
	t.Helper()
	var caught E
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic, got none")
			}
			err, ok := r.(error)
			if !ok || !stderrors.As(err, &caught) {
				t.Fatalf("expected panic of type %T, got %T: %v", caught, r, r)
			}
		}()
		fn()
	}()
	return caught
}

func TestSome(t *testing.T) {
	for _, v := range []int{1, -1, 42} {
		o := Some(v)
		if !o.IsSome() || o.IsNone() {
			t.Errorf("expected Some(%d) to be Some", v)
		}
		if got := o.Unwrap(); got != v {
			t.Errorf("expected %d, got %d", v, got)
		}
	}
}

func TestSome_DefaultPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"int", func() { Some(0) }},
		{"string", func() { Some("") }},
		{"pointer", func() { Some[*int](nil) }},
		{"slice", func() { Some[[]int](nil) }},
		{"error interface", func() { Some[error](nil) }},
		{"struct", func() { Some(struct{ A int }{}) }},
		{"time", func() { Some(time.Time{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := expectPanic[*errors.InvalidStateError](t, tt.fn)
			if !strings.Contains(err.Error(), "default value") {
				t.Errorf("unexpected message: %s", err.Error())
			}
			if !stderrors.Is(err, errors.ErrInvalidState) {
				t.Error("expected error to match ErrInvalidState")
			}
		})
	}
}

func TestSome_NonDefaultValues(t *testing.T) {
	x := 0
	if !Some(&x).IsSome() {
		t.Error("expected pointer to zero int to be accepted")
	}
	if !Some([]int{}).IsSome() {
		t.Error("expected empty non-nil slice to be accepted")
	}
	if !Some[error](stderrors.New("boom")).IsSome() {
		t.Error("expected non-nil error to be accepted")
	}
	if !Some(None[int]()).IsSome() {
		t.Error("expected nested None to be accepted")
	}
}

type celsius float64

func TestRegisterZeroCheck(t *testing.T) {
	RegisterZeroCheck(func(c celsius) bool { return c < -273.15 })
	defer zeroChecks.Delete(reflect.TypeFor[celsius]())

	if !From(celsius(0)).IsSome() {
		t.Error("expected 0°C to be a value once a custom check is registered")
	}
	if From(celsius(-300)).IsSome() {
		t.Error("expected below absolute zero to be treated as default")
	}
}

type port int

func TestAllowZero(t *testing.T) {
	AllowZero[port]()
	defer zeroChecks.Delete(reflect.TypeFor[port]())

	if got := Some(port(0)).Unwrap(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestFrom(t *testing.T) {
	if From("").IsSome() {
		t.Error("expected empty string to become None")
	}
	if From(0).IsSome() {
		t.Error("expected 0 to become None")
	}
	if got := From("x"); !got.Equal(Some("x")) {
		t.Errorf("expected Some(x), got %v", got)
	}
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"zero": 0}

	v, ok := m["zero"]
	if got := FromOk(v, ok); !got.IsSome() || got.Unwrap() != 0 {
		t.Errorf("expected Some(0), got %v", got)
	}
	v, ok = m["missing"]
	if got := FromOk(v, ok); got.IsSome() {
		t.Errorf("expected None, got %v", got)
	}

	mapped := Map(Some(1), func(int) int { return 0 })
	if !mapped.IsSome() || mapped.Equal(From(0)) {
		t.Errorf("expected Map to keep Some(0) distinct from From(0), got %v", mapped)
	}
}

func TestFromPtrToPtr(t *testing.T) {
	if FromPtr[int](nil).IsSome() {
		t.Error("expected nil pointer to become None")
	}
	n := 0
	o := FromPtr(&n)
	if !o.IsSome() {
		t.Fatal("expected pointer to zero to be Some")
	}
	p := o.ToPtr()
	if p == &n || *p != 0 {
		t.Error("expected ToPtr to return a copy")
	}
	if None[int]().ToPtr() != nil {
		t.Error("expected nil pointer for None")
	}
}

func TestUnwrapFamily(t *testing.T) {
	none := None[int]()

	err := expectPanic[*errors.UnwrapError](t, func() { none.Unwrap() })
	if err.Variant != VariantNone {
		t.Errorf("expected variant None, got %s", err.Variant)
	}

	if got := none.UnwrapOr(7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := none.UnwrapOrDefault(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	calls := 0
	if got := none.UnwrapOrElse(func() int { calls++; return 9 }); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if calls != 1 {
		t.Errorf("expected factory to be invoked once, got %d", calls)
	}

	calls = 0
	Some(3).UnwrapOrElse(func() int { calls++; return 9 })
	if calls != 0 {
		t.Error("expected factory not to run for Some")
	}
}

func TestExpect(t *testing.T) {
	if got := Some("a").Expect("must be set"); got != "a" {
		t.Errorf("expected a, got %s", got)
	}
	err := expectPanic[*errors.UnmetExpectationError](t, func() { None[string]().Expect("must be set") })
	if err.Message != "must be set" {
		t.Errorf("expected message to be kept, got %q", err.Message)
	}
	if err.HasValue {
		t.Error("expected no payload for None")
	}
}

func TestPredicates(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	tests := []struct {
		name    string
		o       Option[int]
		someAnd bool
		noneOr  bool
	}{
		{"some even", Some(2), true, true},
		{"some odd", Some(3), false, false},
		{"none", None[int](), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.IsSomeAnd(even); got != tt.someAnd {
				t.Errorf("IsSomeAnd: expected %v, got %v", tt.someAnd, got)
			}
			if got := tt.o.IsNoneOr(even); got != tt.noneOr {
				t.Errorf("IsNoneOr: expected %v, got %v", tt.noneOr, got)
			}
		})
	}
}

func TestFilterInspect(t *testing.T) {
	seen := 0
	got := Some(4).Inspect(func(v int) { seen = v }).Filter(func(v int) bool { return v > 3 })
	if !got.Equal(Some(4)) || seen != 4 {
		t.Errorf("expected Some(4) and inspected 4, got %v and %d", got, seen)
	}
	if Some(2).Filter(func(v int) bool { return v > 3 }).IsSome() {
		t.Error("expected filter to reject 2")
	}

	None[int]().Inspect(func(int) { t.Error("inspect must not run on None") })
}

func TestOrXor(t *testing.T) {
	a, b, n := Some(1), Some(2), None[int]()

	tests := []struct {
		name string
		got  Option[int]
		want Option[int]
	}{
		{"some or some", a.Or(b), a},
		{"none or some", n.Or(b), b},
		{"none or else", n.OrElse(func() Option[int] { return b }), b},
		{"xor both", a.Xor(b), n},
		{"xor left", a.Xor(n), a},
		{"xor right", n.Xor(b), b},
		{"xor none", n.Xor(n), n},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestSwitch(t *testing.T) {
	var branch string
	Some(1).Switch(func(int) { branch = "some" }, func() { branch = "none" })
	if branch != "some" {
		t.Errorf("expected some branch, got %s", branch)
	}
	None[int]().Switch(func(int) { branch = "some" }, func() { branch = "none" })
	if branch != "none" {
		t.Errorf("expected none branch, got %s", branch)
	}
}

func TestStringVariant(t *testing.T) {
	if got := Some(5).String(); got != "Some(5)" {
		t.Errorf("expected Some(5), got %s", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Errorf("expected None, got %s", got)
	}
	if Some("x").Variant() != VariantSome || None[string]().Variant() != VariantNone {
		t.Error("unexpected variant names")
	}
	var zero Option[int]
	if !zero.IsNone() || !zero.IsZero() {
		t.Error("expected zero value to be None")
	}
}

func TestEqual(t *testing.T) {
	if !Some([]int{1, 2}).Equal(Some([]int{1, 2})) {
		t.Error("expected structural equality for slices")
	}
	if Some(1).Equal(None[int]()) {
		t.Error("expected Some and None to differ")
	}
	if !None[int]().Equal(None[int]()) {
		t.Error("expected None values to be equal")
	}
}
