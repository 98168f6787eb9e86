package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ MetricsRecorder = NoopMetrics{}
}

func TestNoopMetrics_RecordLookup(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic on hit or miss", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordLookup(context.Background(), "key", true)
			m.RecordLookup(context.Background(), "key", false)
		})
	})

	t.Run("does not panic with empty key", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordLookup(context.Background(), "", false)
		})
	})
}

func TestNoopMetrics_RecordConstruction(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordConstruction(context.Background(), "key", 100*time.Millisecond, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordConstruction(context.Background(), "key", 100*time.Millisecond, errors.New("test"))
		})
	})
}

func TestNoopMetrics_RecordSize(t *testing.T) {
	m := NoopMetrics{}

	assert.NotPanics(t, func() {
		m.RecordSize(context.Background(), 0)
		m.RecordSize(context.Background(), 100)
	})
}

func TestNoopSpanManager_ImplementsInterface(t *testing.T) {
	var _ SpanManager = NoopSpanManager{}
}

func TestNoopSpanManager_StartGetOrCreateSpan(t *testing.T) {
	m := NoopSpanManager{}
	ctx := context.Background()

	newCtx, span := m.StartGetOrCreateSpan(ctx, "reg-123", "key")

	// Context passes through unchanged.
	assert.Equal(t, ctx, newCtx)
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())
}

func TestNoopSpanManager_StartConstructSpan(t *testing.T) {
	m := NoopSpanManager{}
	ctx := context.Background()

	newCtx, span := m.StartConstructSpan(ctx, "key")

	assert.Equal(t, ctx, newCtx)
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())
}

func TestNoopSpanManager_EndSpanWithError(t *testing.T) {
	m := NoopSpanManager{}

	assert.NotPanics(t, func() {
		m.EndSpanWithError(noopSpan, errors.New("test"))
		m.EndSpanWithError(nil, nil)
	})
}

func TestNoopSpanManager_AddSpanEvent(t *testing.T) {
	m := NoopSpanManager{}

	assert.NotPanics(t, func() {
		m.AddSpanEvent(context.Background(), "event", attribute.String("k", "v"))
	})
}
