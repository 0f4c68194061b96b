package logger

import (
	"context"
	"fmt"

	"github.com/kbukum/fnkit/caller"
)

// LogException records a failure that was converted into a result value
// instead of propagating. Its signature matches config.ExceptionLogger, so
// the method value can be installed directly:
//
//	b.SetExceptionLogger(log.LogException)
func (l *Logger) LogException(ctx context.Context, err error, info caller.Info) {
	if err == nil {
		return
	}
	event := l.WithContext(ctx).logger.Error().
		Err(err).
		Str(FieldErrorType, fmt.Sprintf("%T", err)).
		Str(FieldMember, info.Member).
		Str(FieldFile, info.File).
		Int(FieldLine, info.Line)
	if info.Expression != "" {
		event = event.Str(FieldExpression, info.Expression)
	}
	if coded, ok := err.(interface{ ErrorCode() string }); ok {
		event = event.Str(FieldErrorCode, coded.ErrorCode())
	}
	event.Msg("failure captured as result")
}
