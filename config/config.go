package config

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/kbukum/fnkit/caller"
	"github.com/kbukum/fnkit/logger"
)

const (
	// DefaultFallbackErrorCode is used when an error code is blank.
	DefaultFallbackErrorCode = "Unspecified"
	// DefaultFallbackErrorMessage is used when an error message is blank.
	DefaultFallbackErrorMessage = "An unspecified error occurred."
)

// ExceptionLogger is invoked with every failure that result.Try and
// result.Bind convert into an error value.
type ExceptionLogger func(ctx context.Context, err error, info caller.Info)

// Settings is an immutable snapshot of the library configuration.
// A nil *Settings behaves like the defaults.
type Settings struct {
	exceptionLogger ExceptionLogger
	codeFactory     ErrorCodeFactory
	fallbackCode    string
	fallbackMessage string
}

// ExceptionLogger returns the configured exception logger, or nil.
func (s *Settings) ExceptionLogger() ExceptionLogger {
	if s == nil {
		return nil
	}
	return s.exceptionLogger
}

// ErrorCodeFactory returns the error-code derivation strategy.
func (s *Settings) ErrorCodeFactory() ErrorCodeFactory {
	if s == nil || s.codeFactory == nil {
		return DefaultErrorCodeFactory{}
	}
	return s.codeFactory
}

// FallbackErrorCode returns the code used when an error code is blank.
func (s *Settings) FallbackErrorCode() string {
	if s == nil || s.fallbackCode == "" {
		return DefaultFallbackErrorCode
	}
	return s.fallbackCode
}

// FallbackErrorMessage returns the message used when an error message is blank.
func (s *Settings) FallbackErrorMessage() string {
	if s == nil || s.fallbackMessage == "" {
		return DefaultFallbackErrorMessage
	}
	return s.fallbackMessage
}

// LogException forwards err to the configured exception logger, if any.
func (s *Settings) LogException(ctx context.Context, err error, info caller.Info) {
	if l := s.ExceptionLogger(); l != nil && err != nil {
		l(ctx, err, info)
	}
}

// Builder accumulates settings changes inside Configure or New.
type Builder struct {
	s Settings
}

// SetExceptionLogger installs the hook invoked for swallowed failures.
// Passing nil disables exception logging.
func (b *Builder) SetExceptionLogger(l ExceptionLogger) *Builder {
	b.s.exceptionLogger = l
	return b
}

// SetErrorCodeFactory overrides the error-code derivation strategy.
// Passing nil restores DefaultErrorCodeFactory.
func (b *Builder) SetErrorCodeFactory(f ErrorCodeFactory) *Builder {
	b.s.codeFactory = f
	return b
}

// SetFallbackErrorCode sets the code used for blank error codes.
// Blank values restore DefaultFallbackErrorCode.
func (b *Builder) SetFallbackErrorCode(code string) *Builder {
	b.s.fallbackCode = strings.TrimSpace(code)
	return b
}

// SetFallbackErrorMessage sets the message used for blank error messages.
// Blank values restore DefaultFallbackErrorMessage.
func (b *Builder) SetFallbackErrorMessage(msg string) *Builder {
	if strings.TrimSpace(msg) == "" {
		msg = ""
	}
	b.s.fallbackMessage = msg
	return b
}

// New builds an independent Settings instance starting from the defaults.
func New(configure func(*Builder)) *Settings {
	var b Builder
	if configure != nil {
		configure(&b)
	}
	s := b.s
	return &s
}

var (
	global   atomic.Pointer[Settings]
	initOnce sync.Once
	writeMu  sync.Mutex
)

// Global returns the process-wide settings, initialising them with the
// defaults on first access.
func Global() *Settings {
	initOnce.Do(func() {
		global.CompareAndSwap(nil, New(nil))
	})
	return global.Load()
}

// Configure applies configure to a copy of the current global settings and
// publishes the result. Applying the same callback twice yields the same
// settings.
func Configure(configure func(*Builder)) {
	writeMu.Lock()
	defer writeMu.Unlock()

	b := Builder{s: *Global()}
	if configure != nil {
		configure(&b)
	}
	s := b.s
	global.Store(&s)

	logger.Get(logger.ComponentConfig).Debug("fnkit settings configured", logger.Fields(
		"fallback_code", s.FallbackErrorCode(),
		"exception_logger", s.exceptionLogger != nil,
	))
}

// Reset restores the global settings to the defaults.
func Reset() {
	writeMu.Lock()
	defer writeMu.Unlock()
	Global()
	global.Store(New(nil))
}

// ChainExceptionLoggers returns an ExceptionLogger that invokes every non-nil
// logger in order.
func ChainExceptionLoggers(loggers ...ExceptionLogger) ExceptionLogger {
	active := make([]ExceptionLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			active = append(active, l)
		}
	}
	return func(ctx context.Context, err error, info caller.Info) {
		for _, l := range active {
			l(ctx, err, info)
		}
	}
}
