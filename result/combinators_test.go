package result

import (
	"strconv"
	"testing"

	"github.com/kbukum/fnkit/option"
)

func parse(s string) Result[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Err[int]("not a number: " + s)
	}
	return Ok[int, string](n)
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if got := Map(parse("4"), double); !got.Equal(Ok[int, string](8)) {
		t.Errorf("expected Ok(8), got %v", got)
	}
	if got := Map(parse("x"), double); !got.Equal(Err[int]("not a number: x")) {
		t.Errorf("expected error to pass through, got %v", got)
	}

	upper := MapErr(parse("x"), func(s string) int { return len(s) })
	if !upper.Equal(Err[int](len("not a number: x"))) {
		t.Errorf("expected mapped error, got %v", upper)
	}
}

func TestMatchAndMapOr(t *testing.T) {
	describe := func(r Result[int, string]) string {
		return Match(r, strconv.Itoa, func(e string) string { return "error: " + e })
	}
	if got := describe(parse("3")); got != "3" {
		t.Errorf("expected 3, got %s", got)
	}
	if got := describe(parse("?")); got != "error: not a number: ?" {
		t.Errorf("unexpected %s", got)
	}

	if got := MapOr(parse("?"), -1, func(n int) int { return n }); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	if got := MapOrElse(parse("?"), func(e string) int { return len(e) }, func(n int) int { return n }); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}

func TestAndThen(t *testing.T) {
	positive := func(n int) Result[int, string] {
		if n <= 0 {
			return Err[int]("not positive")
		}
		return Ok[int, string](n)
	}

	tests := []struct {
		in   string
		want Result[int, string]
	}{
		{"5", Ok[int, string](5)},
		{"-5", Err[int]("not positive")},
		{"x", Err[int]("not a number: x")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := AndThen(parse(tt.in), positive); !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := And(parse("1"), Ok[string, string]("next")); !got.Equal(Ok[string, string]("next")) {
		t.Errorf("expected Ok(next), got %v", got)
	}
}

func TestOrElse(t *testing.T) {
	fallback := func(string) Result[int, error] { return Ok[int, error](0) }
	if got := OrElse(parse("x"), fallback); !got.Equal(Ok[int, error](0)) {
		t.Errorf("expected Ok(0), got %v", got)
	}
	if got := Or(parse("2"), Err[int](3)); !got.Equal(Ok[int, int](2)) {
		t.Errorf("expected Ok(2), got %v", got)
	}
	if got := Or(parse("x"), Err[int](3)); !got.Equal(Err[int](3)) {
		t.Errorf("expected Err(3), got %v", got)
	}
}

func TestFlatten(t *testing.T) {
	nested := Ok[Result[int, string], string](Ok[int, string](1))
	if got := Flatten(nested); !got.Equal(Ok[int, string](1)) {
		t.Errorf("expected Ok(1), got %v", got)
	}
	outer := Err[Result[int, string]]("outer")
	if got := Flatten(outer); !got.Equal(Err[int]("outer")) {
		t.Errorf("expected Err(outer), got %v", got)
	}
}

func TestCollectPartition(t *testing.T) {
	all := []Result[int, string]{parse("1"), parse("2")}
	if got := Collect(all); !got.Equal(Ok[[]int, string]([]int{1, 2})) {
		t.Errorf("expected Ok([1 2]), got %v", got)
	}

	mixed := []Result[int, string]{parse("1"), parse("a"), parse("2"), parse("b")}
	if got := Collect(mixed); !got.Equal(Err[[]int]("not a number: a")) {
		t.Errorf("expected first error, got %v", got)
	}

	values, errs := Partition(mixed)
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Errorf("unexpected values %v", values)
	}
	if len(errs) != 2 || errs[1] != "not a number: b" {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestOkOr(t *testing.T) {
	if got := OkOr(option.Some(1), "missing"); !got.Equal(Ok[int, string](1)) {
		t.Errorf("expected Ok(1), got %v", got)
	}
	if got := OkOr(option.None[int](), "missing"); !got.Equal(Err[int]("missing")) {
		t.Errorf("expected Err(missing), got %v", got)
	}
	calls := 0
	OkOrElse(option.Some(1), func() string { calls++; return "" })
	if calls != 0 {
		t.Error("expected factory not to run for Some")
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		name string
		in   Result[option.Option[int], string]
		want option.Option[Result[int, string]]
	}{
		{"ok none", Ok[option.Option[int], string](option.None[int]()), option.None[Result[int, string]]()},
		{"ok some", Ok[option.Option[int], string](option.Some(4)), option.Some(Ok[int, string](4))},
		{"err", Err[option.Option[int]]("e"), option.Some(Err[int]("e"))},
		{"err zero payload", Err[option.Option[int]](""), option.Some(Err[int](""))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transpose(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if back := TransposeOption(got); !back.Equal(tt.in) {
				t.Errorf("expected round trip to %v, got %v", tt.in, back)
			}
		})
	}
}
