package result

import (
	"context"
	"runtime/debug"

	"github.com/kbukum/fnkit/caller"
	"github.com/kbukum/fnkit/config"
	"github.com/kbukum/fnkit/errors"
)

// TryOption customizes Try, Bind and their Async forms.
type TryOption func(*tryConfig)

type tryConfig struct {
	expression string
	settings   *config.Settings
}

// WithExpression records the stringified expression being guarded. It is
// reported to the exception logger as part of the call site.
func WithExpression(expr string) TryOption {
	return func(c *tryConfig) { c.expression = expr }
}

// WithSettings uses s instead of the global settings.
func WithSettings(s *config.Settings) TryOption {
	return func(c *tryConfig) { c.settings = s }
}

func newTryConfig(opts []TryOption) *tryConfig {
	c := &tryConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.settings == nil {
		c.settings = config.Global()
	}
	return c
}

// Try runs fn and returns its value as Ok. A panic inside fn is recovered,
// reported to the exception logger and projected into Err.
//
//	r := result.Try(func() int { return mustParse(s) }, errors.FromError)
func Try[T, E any](fn func() T, project func(error) E, opts ...TryOption) Result[T, E] {
	cfg := newTryConfig(opts)
	site := caller.Capture(1).WithExpression(cfg.expression)
	v, err := guard(func() (T, error) { return fn(), nil })
	return settle(context.Background(), cfg, site, v, err, project)
}

// Bind runs a Go-style fallible function. A returned error or a panic is
// reported to the exception logger and projected into Err.
func Bind[T, E any](fn func() (T, error), project func(error) E, opts ...TryOption) Result[T, E] {
	cfg := newTryConfig(opts)
	site := caller.Capture(1).WithExpression(cfg.expression)
	v, err := guard(fn)
	return settle(context.Background(), cfg, site, v, err, project)
}

// TryAsync is the context-aware form of Try. ctx is passed to fn and to the
// exception logger; observing cancellation is left to fn.
func TryAsync[T, E any](ctx context.Context, fn func(context.Context) T, project func(error) E, opts ...TryOption) Result[T, E] {
	cfg := newTryConfig(opts)
	site := caller.Capture(1).WithExpression(cfg.expression)
	v, err := guard(func() (T, error) { return fn(ctx), nil })
	return settle(ctx, cfg, site, v, err, project)
}

// BindAsync is the context-aware form of Bind.
func BindAsync[T, E any](ctx context.Context, fn func(context.Context) (T, error), project func(error) E, opts ...TryOption) Result[T, E] {
	cfg := newTryConfig(opts)
	site := caller.Capture(1).WithExpression(cfg.expression)
	v, err := guard(func() (T, error) { return fn(ctx) })
	return settle(ctx, cfg, site, v, err, project)
}

// guard runs fn and turns a panic into a *errors.PanicError. Only fn is
// guarded: a panic in the projection or the exception logger propagates.
func guard[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = recovered(p)
		}
	}()
	return fn()
}

// settle logs a failure exactly once and projects it into Err.
func settle[T, E any](ctx context.Context, cfg *tryConfig, site caller.Info, v T, err error, project func(error) E) Result[T, E] {
	if err == nil {
		return Ok[T, E](v)
	}
	cfg.settings.LogException(ctx, err, site)
	return Err[T](project(err))
}

// recovered wraps a recovered panic value. The returned *errors.PanicError
// unwraps to the panic value when that value is an error.
func recovered(v any) error {
	if pe, ok := v.(*errors.PanicError); ok {
		return pe
	}
	return &errors.PanicError{Value: v, Stack: debug.Stack()}
}
