// Package logger provides structured logging for fnkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. A Logger can also act as
// the exception logger of the configuration layer, recording every failure
// swallowed by result.Try and result.Bind.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("billing")
//	log.Info("invoice loaded", logger.Fields("id", id))
//
//	config.Configure(func(b *config.Builder) {
//	    b.SetExceptionLogger(log.LogException)
//	})
package logger
