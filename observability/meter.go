package observability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/fnkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
	}
}

// InitMeter installs a meter provider collecting through reader as the
// global provider. The provider should be shut down on application exit.
func InitMeter(config MeterConfig, reader sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	if reader == nil {
		return nil, errors.New("metric reader is required")
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Debug("meter initialized", logger.Fields(
		"service", config.ServiceName,
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricExceptions = "fnkit.exceptions"
	MetricResults    = "fnkit.results"
)

// Metrics holds the instruments fnkit reports to.
type Metrics struct {
	exceptionTotal metric.Int64Counter
	resultTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	exceptionTotal, err := meter.Int64Counter(MetricExceptions,
		metric.WithDescription("Failures captured by Try and Bind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricExceptions, err)
	}

	resultTotal, err := meter.Int64Counter(MetricResults,
		metric.WithDescription("Traced operation outcomes by variant"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricResults, err)
	}

	return &Metrics{
		exceptionTotal: exceptionTotal,
		resultTotal:    resultTotal,
	}, nil
}

// RecordException counts a captured failure by error code and call site.
func (m *Metrics) RecordException(ctx context.Context, code, function string) {
	m.exceptionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorCode, code),
		attribute.String(AttrCodeFunction, function),
	))
}

// RecordResult counts the outcome of a traced operation.
func (m *Metrics) RecordResult(ctx context.Context, operation, variant string) {
	m.resultTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String(AttrVariant, variant),
	))
}
