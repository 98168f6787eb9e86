package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLookup records a key lookup and whether it hit an existing entry.
	RecordLookup(ctx context.Context, key string, hit bool)

	// RecordConstruction records a factory invocation with its duration and
	// error status.
	RecordConstruction(ctx context.Context, key string, duration time.Duration, err error)

	// RecordSize records the current number of entries after a mutation.
	RecordSize(ctx context.Context, entries int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	lookups            metric.Int64Counter
	constructions      metric.Int64Counter
	constructionErrors metric.Int64Counter
	constructLatency   metric.Float64Histogram
	entries            metric.Int64Gauge
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("singleton")

	lookups, err := meter.Int64Counter("singleton.lookups",
		metric.WithDescription("Number of key lookups"),
	)
	if err != nil {
		return nil, err
	}

	constructions, err := meter.Int64Counter("singleton.constructions",
		metric.WithDescription("Number of factory invocations"),
	)
	if err != nil {
		return nil, err
	}

	constructionErrors, err := meter.Int64Counter("singleton.construction.errors",
		metric.WithDescription("Number of failed factory invocations"),
	)
	if err != nil {
		return nil, err
	}

	constructLatency, err := meter.Float64Histogram("singleton.construction.latency_ms",
		metric.WithDescription("Factory invocation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64Gauge("singleton.entries",
		metric.WithDescription("Current number of registry entries"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		lookups:            lookups,
		constructions:      constructions,
		constructionErrors: constructionErrors,
		constructLatency:   constructLatency,
		entries:            entries,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLookup records a key lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, key string, hit bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
		attribute.Bool("hit", hit),
	))
}

// RecordConstruction records a factory invocation.
func (m *otelMetrics) RecordConstruction(ctx context.Context, key string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("key", key),
	}

	m.constructions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.constructLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.constructionErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSize records the current entry count.
func (m *otelMetrics) RecordSize(ctx context.Context, entries int) {
	m.entries.Record(ctx, int64(entries))
}
