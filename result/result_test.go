package result

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/option"
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

func TestVariants(t *testing.T) {
	ok := Ok[int, string](1)
	bad := Err[int]("boom")

	if !ok.IsOk() || ok.IsErr() || ok.Variant() != VariantOk {
		t.Error("expected Ok(1) to be Ok")
	}
	if bad.IsOk() || !bad.IsErr() || bad.Variant() != VariantErr {
		t.Error("expected Err(boom) to be Err")
	}
	if ok.String() != "Ok(1)" || bad.String() != "Err(boom)" {
		t.Errorf("unexpected rendering: %s, %s", ok, bad)
	}

	var zero Result[int, string]
	if !zero.IsErr() {
		t.Error("expected zero Result to be Err")
	}
}

func TestOf(t *testing.T) {
	r := Of(strconv.Atoi("42"))
	if !r.Equal(Ok[int, error](42)) {
		t.Errorf("expected Ok(42), got %v", r)
	}

	r = Of(strconv.Atoi("x"))
	var numErr *strconv.NumError
	if !r.IsErrAnd(func(err error) bool { return stderrors.As(err, &numErr) }) {
		t.Errorf("expected NumError, got %v", r)
	}

	v, err := Unpack(r)
	if err == nil || v != 0 {
		t.Errorf("expected (0, err), got (%d, %v)", v, err)
	}
}

func TestPredicates(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	isTimeout := func(s string) bool { return s == "timeout" }

	tests := []struct {
		name   string
		r      Result[int, string]
		okAnd  bool
		errAnd bool
	}{
		{"ok positive", Ok[int, string](1), true, false},
		{"ok negative", Ok[int, string](-1), false, false},
		{"err timeout", Err[int]("timeout"), false, true},
		{"err other", Err[int]("refused"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsOkAnd(positive); got != tt.okAnd {
				t.Errorf("IsOkAnd: expected %v, got %v", tt.okAnd, got)
			}
			if got := tt.r.IsErrAnd(isTimeout); got != tt.errAnd {
				t.Errorf("IsErrAnd: expected %v, got %v", tt.errAnd, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	if got := Ok[string, int]("v").Unwrap(); got != "v" {
		t.Errorf("expected v, got %s", got)
	}

	cause := stderrors.New("disk full")
	err := expectPanic[*errors.UnwrapValueError[error]](t, func() { Err[string](cause).Unwrap() })
	if err.Variant != VariantErr || err.Value != cause {
		t.Errorf("expected Err payload to be carried, got %+v", err)
	}
	if !stderrors.Is(err, errors.ErrUnwrap) {
		t.Error("expected ErrUnwrap sentinel to match")
	}

	okErr := expectPanic[*errors.UnwrapValueError[int]](t, func() { Ok[int, string](7).UnwrapErr() })
	if okErr.Value != 7 {
		t.Errorf("expected Ok payload 7, got %d", okErr.Value)
	}
	if got := Err[int]("e").UnwrapErr(); got != "e" {
		t.Errorf("expected e, got %s", got)
	}
}

func TestExpect(t *testing.T) {
	err := expectPanic[*errors.UnmetExpectationError](t, func() {
		Err[int]("missing key").Expect("config must load")
	})
	if err.Error() != "config must load: missing key" {
		t.Errorf("unexpected message %q", err.Error())
	}

	err = expectPanic[*errors.UnmetExpectationError](t, func() {
		Ok[int, string](3).ExpectErr("should have failed")
	})
	if !err.HasValue || err.Value != 3 {
		t.Errorf("expected Ok payload 3, got %+v", err)
	}
}

func TestUnwrapOr(t *testing.T) {
	bad := Err[int]("nope")
	if got := bad.UnwrapOr(5); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
	if got := bad.UnwrapOrDefault(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := bad.UnwrapOrElse(func(s string) int { return len(s) }); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := Ok[int, string](1).UnwrapOrElse(func(string) int { t.Error("must not run"); return 0 }); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestOkErrOptions(t *testing.T) {
	if got := Ok[int, string](0).Ok(); !got.IsSome() || got.Unwrap() != 0 {
		t.Errorf("expected Some(0), got %v", got)
	}
	if got := Ok[int, string](0).Err(); got.IsSome() {
		t.Errorf("expected None, got %v", got)
	}
	if got := Err[int]("x").Err(); !got.Equal(option.Some("x")) {
		t.Errorf("expected Some(x), got %v", got)
	}
}

func TestInspectSwitch(t *testing.T) {
	var seen []string
	Ok[int, string](1).
		Inspect(func(v int) { seen = append(seen, "ok:"+strconv.Itoa(v)) }).
		InspectErr(func(e string) { seen = append(seen, "err:"+e) })
	Err[int]("x").
		Inspect(func(v int) { seen = append(seen, "ok:"+strconv.Itoa(v)) }).
		InspectErr(func(e string) { seen = append(seen, "err:"+e) })

	if len(seen) != 2 || seen[0] != "ok:1" || seen[1] != "err:x" {
		t.Errorf("unexpected inspection order %v", seen)
	}

	var branch string
	Err[int]("x").Switch(func(int) { branch = "ok" }, func(string) { branch = "err" })
	if branch != "err" {
		t.Errorf("expected err branch, got %s", branch)
	}
}

func TestEqual(t *testing.T) {
	if !Ok[[]int, string]([]int{1}).Equal(Ok[[]int, string]([]int{1})) {
		t.Error("expected structural equality")
	}
	if Ok[int, int](1).Equal(Err[int](1)) {
		t.Error("expected different variants to differ")
	}
}
