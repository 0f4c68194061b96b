package resilience

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/kbukum/fnkit/result"
)

// RetryConfig configures retry behavior for operations whose error payload
// has type E.
type RetryConfig[E any] struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int
	// InitialBackoff is the initial delay between retries.
	InitialBackoff time.Duration
	// MaxBackoff is the maximum delay between retries.
	MaxBackoff time.Duration
	// BackoffFactor is the multiplier for exponential backoff.
	BackoffFactor float64
	// Jitter adds randomness to backoff (0.0 to 1.0).
	Jitter float64
	// RetryIf determines if an error payload should be retried. Nil retries
	// every Err.
	RetryIf func(E) bool
	// OnRetry is called before each retry.
	OnRetry func(attempt int, err E, backoff time.Duration)
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig[E any]() RetryConfig[E] {
	return RetryConfig[E]{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.1,
	}
}

func (c RetryConfig[E]) withDefaults() RetryConfig[E] {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 100 * time.Millisecond
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 10 * time.Second
	}
	if c.BackoffFactor <= 0 {
		c.BackoffFactor = 2.0
	}
	return c
}

// Retry calls fn until it returns Ok, RetryIf rejects the error payload or
// MaxAttempts is reached, and returns the last Result. The error is the
// context's error when ctx ends before that; the Result is then the last
// one observed, or the zero Result if fn never ran.
func Retry[T, E any](ctx context.Context, cfg RetryConfig[E], fn func(context.Context) result.Result[T, E]) (result.Result[T, E], error) {
	cfg = cfg.withDefaults()

	var last result.Result[T, E]
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		last = fn(ctx)
		if last.IsOk() {
			return last, nil
		}
		payload := last.UnwrapErr()
		if cfg.RetryIf != nil && !cfg.RetryIf(payload) {
			return last, nil
		}

		// Don't sleep after the last attempt
		if attempt == cfg.MaxAttempts {
			break
		}

		backoff := calculateBackoff(attempt, cfg)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, payload, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, ctx.Err()
		case <-timer.C:
		}
	}
	return last, nil
}

// RetryBind retries a Go-style fallible function. Each attempt runs through
// result.BindAsync, so panics are recovered and every failed attempt reaches
// the exception logger.
func RetryBind[T any](ctx context.Context, cfg RetryConfig[error], fn func(context.Context) (T, error), opts ...result.TryOption) (result.Result[T, error], error) {
	return Retry(ctx, cfg, func(ctx context.Context) result.Result[T, error] {
		return result.BindAsync(ctx, fn, identity, opts...)
	})
}

func identity(err error) error { return err }

// calculateBackoff calculates the backoff duration for an attempt.
func calculateBackoff[E any](attempt int, cfg RetryConfig[E]) time.Duration {
	// Exponential backoff: initial * factor^(attempt-1)
	backoffFloat := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffFactor, float64(attempt-1))

	if cfg.Jitter > 0 {
		jitterRange := backoffFloat * cfg.Jitter
		backoffFloat += (rand.Float64()*2 - 1) * jitterRange
	}

	if backoffFloat > float64(cfg.MaxBackoff) {
		backoffFloat = float64(cfg.MaxBackoff)
	}
	if backoffFloat < 0 {
		backoffFloat = float64(cfg.InitialBackoff)
	}
	return time.Duration(backoffFloat)
}
