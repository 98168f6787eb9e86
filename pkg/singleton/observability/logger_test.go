package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf    *bytes.Buffer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	// Build a map from the record
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}

	// Add pre-configured attrs
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}

	// Add record attrs
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})

	// Encode as JSON
	enc := json.NewEncoder(h.buf)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return nil
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:    h.buf,
		level:  h.level,
		attrs:  make([]slog.Attr, len(h.attrs)+len(attrs)),
		groups: h.groups,
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(name string) slog.Handler {
	newH := &testHandler{
		buf:    h.buf,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(h.groups, name),
	}
	return newH
}

// records decodes every captured log line.
func (h *testHandler) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(h.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var data map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &data))
		out = append(out, data)
	}
	return out
}

func TestEnrichLogger(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	enriched := EnrichLogger(logger, "reg-123")
	require.NotNil(t, enriched)

	enriched.Info("hello")

	recs := h.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "reg-123", recs[0]["registry_id"])
}

func TestEnrichLoggerNil(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "reg-123"))
}

func TestLogHit(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogHit(logger, "users_db")

	recs := h.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "registry hit", recs[0]["msg"])
	assert.Equal(t, "DEBUG", recs[0]["level"])
	assert.Equal(t, "users_db", recs[0]["key"])
}

func TestLogCreate(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogCreate(logger, "users_db", 12.0, true)

	recs := h.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "entry constructed", recs[0]["msg"])
	assert.Equal(t, "users_db", recs[0]["key"])
	assert.Equal(t, 12.0, recs[0]["duration_ms"])
	assert.Equal(t, true, recs[0]["installed"])
}

func TestLogPutRemoveClear(t *testing.T) {
	h := newTestHandler()
	logger := slog.New(h)

	LogPut(logger, "k")
	LogRemove(logger, "k")
	LogClear(logger, 7)

	recs := h.records(t)
	require.Len(t, recs, 3)
	assert.Equal(t, "entry put", recs[0]["msg"])
	assert.Equal(t, "entry removed", recs[1]["msg"])
	assert.Equal(t, "registry cleared", recs[2]["msg"])
	assert.Equal(t, float64(7), recs[2]["entries_removed"])
}

func TestLogHelpersNilLogger(t *testing.T) {
	// All helpers tolerate a nil logger.
	assert.NotPanics(t, func() {
		LogHit(nil, "k")
		LogCreate(nil, "k", 0, false)
		LogPut(nil, "k")
		LogRemove(nil, "k")
		LogClear(nil, 0)
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(10 * time.Millisecond)
	elapsed := done()

	assert.GreaterOrEqual(t, elapsed, 10.0)
	assert.Less(t, elapsed, 5000.0)
}
