package result

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kbukum/fnkit/option"
)

func TestMapAsync(t *testing.T) {
	ctx := context.Background()
	calls := 0
	mapper := func(_ context.Context, n int) (int, error) {
		calls++
		return n + 1, nil
	}

	got, err := MapAsync(ctx, Ok[int, string](1), mapper)
	if err != nil || !got.Equal(Ok[int, string](2)) {
		t.Errorf("expected Ok(2), got %v (%v)", got, err)
	}
	got, err = MapAsync(ctx, Err[int]("e"), mapper)
	if err != nil || !got.Equal(Err[int]("e")) {
		t.Errorf("expected Err(e), got %v (%v)", got, err)
	}
	if calls != 1 {
		t.Errorf("expected mapper to run once, got %d", calls)
	}
}

func TestMapOrAsync(t *testing.T) {
	ctx := context.Background()
	calls := 0
	length := func(_ context.Context, s string) (int, error) {
		calls++
		return len(s), nil
	}

	tests := []struct {
		name string
		r    Result[string, error]
		want int
	}{
		{"ok", Ok[string, error]("abc"), 3},
		{"err", Err[string](stderrors.New("e")), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapOrAsync(ctx, tt.r, -1, length)
			if err != nil || got != tt.want {
				t.Errorf("expected %d, got %d (%v)", tt.want, got, err)
			}
		})
	}
	if calls != 1 {
		t.Errorf("expected mapper to run only for Ok, got %d calls", calls)
	}

	failing := func(context.Context, string) (int, error) { return 0, context.Canceled }
	if _, err := MapOrAsync(ctx, Ok[string, error]("abc"), -1, failing); !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestMapErrAsync(t *testing.T) {
	wrap := func(_ context.Context, s string) (error, error) { return stderrors.New(s), nil }
	got, err := MapErrAsync(context.Background(), Err[int]("denied"), wrap)
	if err != nil || got.UnwrapErr().Error() != "denied" {
		t.Errorf("expected mapped error, got %v (%v)", got, err)
	}

	failing := func(context.Context, string) (error, error) { return nil, context.DeadlineExceeded }
	_, err = MapErrAsync(context.Background(), Err[int]("denied"), failing)
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestAndThenAsync(t *testing.T) {
	ctx := context.Background()
	load := func(_ context.Context, id int) (Result[string, string], error) {
		if id == 1 {
			return Ok[string, string]("alice"), nil
		}
		return Err[string]("unknown user"), nil
	}

	tests := []struct {
		name string
		in   Result[int, string]
		want Result[string, string]
	}{
		{"found", Ok[int, string](1), Ok[string, string]("alice")},
		{"missing", Ok[int, string](2), Err[string]("unknown user")},
		{"upstream error", Err[int]("bad id"), Err[string]("bad id")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AndThenAsync(ctx, tt.in, load)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecoveryAsync(t *testing.T) {
	ctx := context.Background()

	v, err := Err[int]("e").UnwrapOrElseAsync(ctx, func(_ context.Context, e string) (int, error) { return len(e), nil })
	if err != nil || v != 1 {
		t.Errorf("expected 1, got %d (%v)", v, err)
	}

	r, err := OrElseAsync(ctx, Err[int]("e"), func(context.Context, string) (Result[int, error], error) {
		return Ok[int, error](9), nil
	})
	if err != nil || !r.Equal(Ok[int, error](9)) {
		t.Errorf("expected Ok(9), got %v (%v)", r, err)
	}

	m, err := MatchAsync(ctx, Ok[int, string](2),
		func(_ context.Context, n int) (string, error) { return "ok", nil },
		func(_ context.Context, e string) (string, error) { return "err", nil })
	if err != nil || m != "ok" {
		t.Errorf("expected ok, got %s (%v)", m, err)
	}
}

func TestOkOrElseAsync(t *testing.T) {
	ctx := context.Background()
	calls := 0
	factory := func(context.Context) (string, error) {
		calls++
		return "absent", nil
	}

	if got, _ := OkOrElseAsync(ctx, option.Some(3), factory); !got.Equal(Ok[int, string](3)) {
		t.Errorf("expected Ok(3), got %v", got)
	}
	if got, _ := OkOrElseAsync(ctx, option.None[int](), factory); !got.Equal(Err[int]("absent")) {
		t.Errorf("expected Err(absent), got %v", got)
	}
	if calls != 1 {
		t.Errorf("expected factory to run once, got %d", calls)
	}
}

func TestInspectAsync(t *testing.T) {
	ctx := context.Background()
	var audited []string
	audit := func(_ context.Context, e string) error {
		audited = append(audited, e)
		return nil
	}

	if _, err := Ok[int, string](1).InspectErrAsync(ctx, audit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Err[int]("x").InspectErrAsync(ctx, audit)
	if err != nil || !got.Equal(Err[int]("x")) {
		t.Errorf("expected Err(x), got %v (%v)", got, err)
	}
	if len(audited) != 1 {
		t.Errorf("expected one audit entry, got %v", audited)
	}

	ok, _ := Ok[int, string](4).IsOkAndAsync(ctx, func(_ context.Context, n int) (bool, error) { return n > 3, nil })
	if !ok {
		t.Error("expected IsOkAndAsync to hold")
	}
}
