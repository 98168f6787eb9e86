package singleton

import (
	"context"
	"fmt"

	"github.com/randalmurphal/singleton/pkg/singleton/construct"
)

// GetOrCreate returns the value for key as T, constructing it with factory
// when absent. It has the same race and error semantics as the Registry
// method of the same name, plus a typed result: if the key already holds a
// value of a different type, it fails with ErrWrongType.
func GetOrCreate[T any](ctx context.Context, r *Registry, key string, factory func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := r.GetOrCreate(ctx, key, func(ctx context.Context) (any, error) {
		return factory(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("key %q holds %T: %w", key, v, ErrWrongType)
	}
	return typed, nil
}

// For returns the instance of T stored for the given construction
// parameters, constructing one through the registry's Constructor if absent.
func For[T any](ctx context.Context, r *Registry, params ...any) (T, error) {
	var zero T
	v, err := r.GetOrCreateType(ctx, construct.TypeOf[T](), params...)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("type %s holds %T: %w", construct.TypeOf[T](), v, ErrWrongType)
	}
	return typed, nil
}

// Lookup returns the value for key as T without constructing anything.
// The second result is false if the key is absent or holds another type.
func Lookup[T any](r *Registry, key string) (T, bool) {
	var zero T
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
