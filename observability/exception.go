package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/fnkit/caller"
	"github.com/kbukum/fnkit/errors"
	"github.com/kbukum/fnkit/result"
)

// ExceptionRecorder reports failures captured by result.Try and result.Bind
// to the span in the caller's context and to the exceptions counter. Its
// LogException method satisfies config.ExceptionLogger.
type ExceptionRecorder struct {
	metrics *Metrics
	codes   errors.Factory
}

// NewExceptionRecorder creates a recorder. metrics may be nil, in which case
// only spans are annotated.
func NewExceptionRecorder(metrics *Metrics) *ExceptionRecorder {
	return &ExceptionRecorder{metrics: metrics}
}

// LogException records err on the active span and increments the
// exceptions counter.
func (r *ExceptionRecorder) LogException(ctx context.Context, err error, info caller.Info) {
	if err == nil {
		return
	}
	code := r.codes.CodeFromError(err)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		attrs := []attribute.KeyValue{
			attribute.String(AttrErrorCode, code.String()),
			attribute.String(AttrCodeFunction, info.Member),
			attribute.String(AttrCodeFilepath, info.File),
			attribute.Int(AttrCodeLineno, info.Line),
		}
		if info.Expression != "" {
			attrs = append(attrs, attribute.String(AttrCodeExpr, info.Expression))
		}
		span.RecordError(err, trace.WithAttributes(attrs...))
		span.SetStatus(otelcodes.Error, err.Error())
	}

	if r.metrics != nil {
		r.metrics.RecordException(ctx, code.String(), info.Member)
	}
}

// TraceResult runs fn inside a span named name. An Err outcome marks the span
// as failed; when the payload is an error it is recorded on the span. The
// outcome is counted on metrics unless metrics is nil.
func TraceResult[T, E any](ctx context.Context, metrics *Metrics, name string, fn func(context.Context) result.Result[T, E]) result.Result[T, E] {
	ctx, span := StartSpan(ctx, name)
	defer span.End()

	r := fn(ctx)
	span.SetAttributes(attribute.String(AttrVariant, r.Variant()))

	r.InspectErr(func(e E) {
		msg := fmt.Sprint(e)
		if err, ok := any(e).(error); ok {
			span.RecordError(err)
			span.SetAttributes(attribute.String(AttrErrorCode, errors.CodeFromError(err).String()))
		}
		span.SetAttributes(attribute.String(AttrErrorMessage, msg))
		span.SetStatus(otelcodes.Error, msg)
	})

	if metrics != nil {
		metrics.RecordResult(ctx, name, r.Variant())
	}
	return r
}
