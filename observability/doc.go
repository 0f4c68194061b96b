// Package observability connects fnkit failures to OpenTelemetry tracing and
// metrics.
//
// Tracing:
//
//	tp, err := observability.InitTracer(observability.DefaultTracerConfig("my-service"), exporter)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(observability.DefaultMeterConfig("my-service"), reader)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//
// Exception recording, chained with structured logging:
//
//	rec := observability.NewExceptionRecorder(metrics)
//	config.Configure(func(b *config.Builder) {
//	    b.SetExceptionLogger(config.ChainExceptionLoggers(log.LogException, rec.LogException))
//	})
//
// Traced operations:
//
//	r := observability.TraceResult(ctx, "users.load", func(ctx context.Context) result.Result[User, error] {
//	    return repo.Load(ctx, id)
//	})
package observability
