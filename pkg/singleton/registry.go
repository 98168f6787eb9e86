package singleton

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/singleton/pkg/singleton/construct"
	"github.com/randalmurphal/singleton/pkg/singleton/observability"
)

// Factory constructs a new value on demand. The context carries the trace
// span for the construction; it is never cancelled by the registry itself.
type Factory func(ctx context.Context) (any, error)

// Constructor produces a new instance of a type from construction parameters.
// construct.Catalog is the default implementation.
type Constructor interface {
	New(t reflect.Type, params ...any) (any, error)
}

// Resolver resolves a type name to a type.
// construct.Catalog is the default implementation.
type Resolver interface {
	Resolve(name string) (reflect.Type, error)
}

// Compile-time interface checks.
var (
	_ Constructor = (*construct.Catalog)(nil)
	_ Resolver    = (*construct.Catalog)(nil)
)

// Registry is a concurrent mapping from string keys to constructed values.
// It supports get-or-create by key, by type, and by type name, plus explicit
// put, existence checks, removal, and clear.
//
// Reads and writes of individual keys are linearizable. No lock is held
// while a factory runs, so factories that reentrantly use the registry
// cannot deadlock; see GetOrCreate for the resulting race semantics.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any

	id          string
	constructor Constructor
	resolver    Resolver
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
}

// New creates an empty registry. With no options it uses a fresh
// construct.Catalog for typed construction and no-op observability.
func New(opts ...Option) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.New().String()
	return &Registry{
		entries:     make(map[string]any),
		id:          id,
		constructor: cfg.constructor,
		resolver:    cfg.resolver,
		logger:      observability.EnrichLogger(cfg.logger, id),
		metrics:     cfg.metrics,
		spans:       cfg.spans,
	}
}

// ID returns the registry's unique instance identifier.
func (r *Registry) ID() string {
	return r.id
}

// GetOrCreate returns the value stored for key, constructing and installing
// one with factory if the key is absent.
//
// The check-then-act sequence deliberately tolerates a benign race: two
// callers observing the key absent may both invoke their factories, but only
// the first install wins and both return the winning value. The losing value
// is discarded. No lock is held across the factory invocation, so a factory
// that reads or writes this registry, even for the same key, cannot
// deadlock.
//
// A factory error is returned to the caller and leaves the key absent; a
// failed attempt does not poison the key for future calls. GetOrCreate never
// overwrites an existing entry.
func (r *Registry) GetOrCreate(ctx context.Context, key string, factory Factory) (any, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	ctx, span := r.spans.StartGetOrCreateSpan(ctx, r.id, key)

	if v, ok := r.load(ctx, key); ok {
		r.spans.EndSpanWithError(span, nil)
		return v, nil
	}

	start := time.Now()
	cctx, cspan := r.spans.StartConstructSpan(ctx, key)
	created, err := factory(cctx)
	elapsed := time.Since(start)
	r.metrics.RecordConstruction(cctx, key, elapsed, err)
	r.spans.EndSpanWithError(cspan, err)
	if err == nil && created == nil {
		err = fmt.Errorf("factory for key %q: %w", key, ErrNilValue)
	}
	if err != nil {
		r.spans.EndSpanWithError(span, err)
		return nil, err
	}

	v, won := r.installIfAbsent(ctx, key, created)
	if won {
		r.spans.AddSpanEvent(ctx, "install.won")
	} else {
		r.spans.AddSpanEvent(ctx, "install.lost")
	}
	observability.LogCreate(r.logger, key, float64(elapsed.Milliseconds()), won)
	r.spans.EndSpanWithError(span, nil)
	return v, nil
}

// GetOrCreateType returns the instance stored for t and params, constructing
// one through the registry's Constructor if absent. The key is derived from
// the type's string form and the stringified parameters, so the same type
// with different parameters yields distinct instances.
//
// Construction failures are wrapped in a *ConstructionError and leave the
// key absent.
func (r *Registry) GetOrCreateType(ctx context.Context, t reflect.Type, params ...any) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	return r.GetOrCreate(ctx, TypeKey(t, params...), func(context.Context) (any, error) {
		v, err := r.constructor.New(t, params...)
		if err != nil {
			return nil, &ConstructionError{TypeName: t.String(), Err: err}
		}
		return v, nil
	})
}

// GetOrCreateNamed resolves name through the registry's Resolver and
// delegates to GetOrCreateType. A name that cannot be resolved fails with a
// *ResolutionError and inserts nothing.
func (r *Registry) GetOrCreateNamed(ctx context.Context, name string, params ...any) (any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankTypeName
	}
	t, err := r.resolver.Resolve(name)
	if err != nil {
		return nil, &ResolutionError{Name: name, Err: err}
	}
	return r.GetOrCreateType(ctx, t, params...)
}

// Put unconditionally installs value under key, overwriting any prior entry.
// The new value is visible to all subsequent readers of the key.
func (r *Registry) Put(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		return ErrNilValue
	}
	r.mu.Lock()
	r.entries[key] = value
	n := len(r.entries)
	r.mu.Unlock()

	r.metrics.RecordSize(context.Background(), n)
	observability.LogPut(r.logger, key)
	return nil
}

// PutValue installs value under a key derived from its runtime type, with no
// parameters.
func (r *Registry) PutValue(value any) error {
	if value == nil {
		return ErrNilValue
	}
	return r.Put(reflect.TypeOf(value).String(), value)
}

// Has returns true if key currently maps to a value.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Exists reports whether an instance is stored for t and params, using the
// same key derivation as GetOrCreateType. A nil type reports false rather
// than erroring.
func (r *Registry) Exists(t reflect.Type, params ...any) bool {
	if t == nil {
		return false
	}
	return r.Has(TypeKey(t, params...))
}

// StoredTypes returns the distinct runtime types of all stored values.
// The order is not guaranteed.
func (r *Registry) StoredTypes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[reflect.Type]struct{}, len(r.entries))
	types := make([]reflect.Type, 0, len(r.entries))
	for _, v := range r.entries {
		t := reflect.TypeOf(v)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types
}

// Keys returns all keys in the registry.
// The order is not guaranteed.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Range iterates over all entries in the registry.
// The function fn is called for each entry. If fn returns false,
// iteration stops.
//
// Range iterates over a snapshot of the registry, so it is safe to mutate
// the registry during iteration without affecting the current iteration.
func (r *Registry) Range(fn func(key string, value any) bool) {
	r.mu.RLock()
	snapshot := make(map[string]any, len(r.entries))
	for k, v := range r.entries {
		snapshot[k] = v
	}
	r.mu.RUnlock()

	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}

// Remove deletes the entry for key if present; no-op if absent.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	_, ok := r.entries[key]
	delete(r.entries, key)
	n := len(r.entries)
	r.mu.Unlock()

	if ok {
		r.metrics.RecordSize(context.Background(), n)
		observability.LogRemove(r.logger, key)
	}
}

// RemoveType deletes the entry keyed by t alone (no parameters).
// No-op if t is nil or absent.
func (r *Registry) RemoveType(t reflect.Type) {
	if t == nil {
		return
	}
	r.Remove(t.String())
}

// Clear removes all entries. Subsequent GetOrCreate calls for any
// previously-known key behave as first-time creation. Clear is not
// instantaneous relative to operations already in flight.
func (r *Registry) Clear() {
	r.mu.Lock()
	removed := len(r.entries)
	r.entries = make(map[string]any)
	r.mu.Unlock()

	r.metrics.RecordSize(context.Background(), 0)
	observability.LogClear(r.logger, removed)
}

// load reads the current value for key under the read lock.
func (r *Registry) load(ctx context.Context, key string) (any, bool) {
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()

	r.metrics.RecordLookup(ctx, key, ok)
	if ok {
		observability.LogHit(r.logger, key)
	}
	return v, ok
}

// installIfAbsent stores value under key unless a racing caller already won,
// and returns the value the key actually holds.
func (r *Registry) installIfAbsent(ctx context.Context, key string, value any) (any, bool) {
	r.mu.Lock()
	if existing, ok := r.entries[key]; ok {
		r.mu.Unlock()
		return existing, false
	}
	r.entries[key] = value
	n := len(r.entries)
	r.mu.Unlock()

	r.metrics.RecordSize(ctx, n)
	return value, true
}
