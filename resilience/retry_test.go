package resilience

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kbukum/fnkit/caller"
	"github.com/kbukum/fnkit/config"
	fnerrors "github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/result"
)

func fastConfig[E any](attempts int) RetryConfig[E] {
	return RetryConfig[E]{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		BackoffFactor:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	callCount := 0

	r, err := Retry(context.Background(), DefaultRetryConfig[error](), func(context.Context) result.Result[string, error] {
		callCount++
		return result.Ok[string, error]("success")
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if got := r.UnwrapOr(""); got != "success" {
		t.Errorf("expected 'success', got %s", got)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}
}

func TestRetry_SucceedsAfterRetry(t *testing.T) {
	callCount := 0

	r, err := Retry(context.Background(), fastConfig[string](3), func(context.Context) result.Result[string, string] {
		callCount++
		if callCount < 3 {
			return result.Err[string]("temporary error")
		}
		return result.Ok[string, string]("success")
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !r.Equal(result.Ok[string, string]("success")) {
		t.Errorf("expected Ok(success), got %v", r)
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestRetry_ExceedsMaxAttempts(t *testing.T) {
	callCount := 0
	testErr := errors.New("persistent error")

	r, err := Retry(context.Background(), fastConfig[error](3), func(context.Context) result.Result[string, error] {
		callCount++
		return result.Err[string](testErr)
	})

	if err != nil {
		t.Errorf("expected no loop error, got %v", err)
	}
	if !r.IsErrAnd(func(e error) bool { return errors.Is(e, testErr) }) {
		t.Errorf("expected Err(testErr), got %v", r)
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestRetry_RespectsContext(t *testing.T) {
	cfg := RetryConfig[error]{
		MaxAttempts:    10,
		InitialBackoff: 100 * time.Millisecond,
		BackoffFactor:  2.0,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	callCount := 0
	r, err := Retry(ctx, cfg, func(context.Context) result.Result[string, error] {
		callCount++
		return result.Err[string](errors.New("error"))
	})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if !r.IsErr() {
		t.Errorf("expected the last Err to be kept, got %v", r)
	}
	if callCount >= 10 {
		t.Errorf("expected fewer than 10 calls, got %d", callCount)
	}
}

func TestRetry_CanceledBeforeFirstAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := Retry(ctx, fastConfig[error](3), func(context.Context) result.Result[int, error] {
		called = true
		return result.Ok[int, error](1)
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("expected fn not to run")
	}
}

func TestRetry_RetryIfFilter(t *testing.T) {
	retryable := fnerrors.New("Upstream.Timeout", "timed out")
	permanent := fnerrors.New("Upstream.NotFound", "missing")

	cfg := fastConfig[fnerrors.Error](3)
	cfg.RetryIf = func(e fnerrors.Error) bool { return e.Code == retryable.Code }

	tests := []struct {
		name      string
		payload   fnerrors.Error
		wantCalls int
	}{
		{"retryable", retryable, 3},
		{"permanent", permanent, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			callCount := 0
			r, _ := Retry(context.Background(), cfg, func(context.Context) result.Result[int, fnerrors.Error] {
				callCount++
				return result.Err[int](tt.payload)
			})
			if callCount != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, callCount)
			}
			if !r.Equal(result.Err[int](tt.payload)) {
				t.Errorf("expected Err(%v), got %v", tt.payload, r)
			}
		})
	}
}

func TestRetry_OnRetryCallback(t *testing.T) {
	var retries []int
	var payloads []string
	var mu sync.Mutex

	cfg := fastConfig[string](3)
	cfg.OnRetry = func(attempt int, err string, backoff time.Duration) {
		mu.Lock()
		retries = append(retries, attempt)
		payloads = append(payloads, err)
		mu.Unlock()
	}

	_, _ = Retry(context.Background(), cfg, func(context.Context) result.Result[int, string] {
		return result.Err[int]("boom")
	})

	mu.Lock()
	defer mu.Unlock()

	// OnRetry called before each retry, not before first attempt
	if len(retries) != 2 {
		t.Fatalf("expected 2 OnRetry calls, got %d", len(retries))
	}
	if retries[0] != 1 || retries[1] != 2 {
		t.Errorf("expected attempts [1, 2], got %v", retries)
	}
	if payloads[0] != "boom" {
		t.Errorf("expected payload 'boom', got %q", payloads[0])
	}
}

func TestRetryBind_RecoversPanicsAndLogs(t *testing.T) {
	var mu sync.Mutex
	logged := 0
	s := config.New(func(b *config.Builder) {
		b.SetExceptionLogger(func(context.Context, error, caller.Info) {
			mu.Lock()
			logged++
			mu.Unlock()
		})
	})

	callCount := 0
	r, err := RetryBind(context.Background(), fastConfig[error](3), func(context.Context) (int, error) {
		callCount++
		switch callCount {
		case 1:
			panic("flaky")
		case 2:
			return 0, errors.New("still flaky")
		}
		return 42, nil
	}, result.WithSettings(s))

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if got := r.UnwrapOr(0); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if logged != 2 {
		t.Errorf("expected 2 logged failures, got %d", logged)
	}
}

func TestRetryBind_PanicPayload(t *testing.T) {
	r, _ := RetryBind(context.Background(), fastConfig[error](1), func(context.Context) (int, error) {
		panic("always")
	}, result.WithSettings(config.New(nil)))

	var pe *fnerrors.PanicError
	if !r.IsErrAnd(func(e error) bool { return errors.As(e, &pe) }) {
		t.Fatalf("expected a PanicError, got %v", r)
	}
	if pe.Value != "always" {
		t.Errorf("expected panic value 'always', got %v", pe.Value)
	}
}

func TestCalculateBackoff(t *testing.T) {
	cfg := RetryConfig[error]{
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     1 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0, // No jitter for predictable testing
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 100 * time.Millisecond}, // 100 * 2^0
		{2, 200 * time.Millisecond}, // 100 * 2^1
		{3, 400 * time.Millisecond}, // 100 * 2^2
		{4, 800 * time.Millisecond}, // 100 * 2^3
		{5, 1 * time.Second},        // Capped at max
		{6, 1 * time.Second},        // Still capped
	}

	for _, tt := range tests {
		got := calculateBackoff(tt.attempt, cfg)
		if got != tt.expected {
			t.Errorf("attempt %d: expected %v, got %v", tt.attempt, tt.expected, got)
		}
	}
}
