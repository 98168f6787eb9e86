package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the singleton tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("singleton")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartGetOrCreateSpan starts a span for a get-or-create operation.
	// Returns the context with span and the span itself.
	StartGetOrCreateSpan(ctx context.Context, registryID, key string) (context.Context, trace.Span)

	// StartConstructSpan starts a span for a factory invocation.
	// The construct span should be a child of the get-or-create span.
	StartConstructSpan(ctx context.Context, key string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartGetOrCreateSpan starts a span for a get-or-create operation.
func (m *otelSpanManager) StartGetOrCreateSpan(ctx context.Context, registryID, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "singleton.get_or_create",
		trace.WithAttributes(
			attribute.String("registry.id", registryID),
			attribute.String("registry.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartConstructSpan starts a span for a factory invocation.
func (m *otelSpanManager) StartConstructSpan(ctx context.Context, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "singleton.construct",
		trace.WithAttributes(
			attribute.String("registry.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartGetOrCreateSpan starts a span for a get-or-create operation.
// Uses the global OTel tracer.
func StartGetOrCreateSpan(ctx context.Context, registryID, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "singleton.get_or_create",
		trace.WithAttributes(
			attribute.String("registry.id", registryID),
			attribute.String("registry.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartConstructSpan starts a span for a factory invocation.
// Uses the global OTel tracer.
func StartConstructSpan(ctx context.Context, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "singleton.construct",
		trace.WithAttributes(
			attribute.String("registry.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
