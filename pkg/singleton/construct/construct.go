package construct

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Sentinel errors for construction and resolution.
var (
	// ErrNilType indicates New or Enroll was called with a nil type.
	ErrNilType = errors.New("type must not be nil")

	// ErrUnknownType indicates Resolve was called with a name that no
	// enrolled type matches.
	ErrUnknownType = errors.New("type not enrolled")

	// ErrNoBuilder indicates parameterized construction was requested for a
	// type that has no builder enrolled.
	ErrNoBuilder = errors.New("no builder enrolled for parameterized construction")

	// ErrAbstractType indicates zero-instance construction was requested for
	// an interface type, which has no concrete zero instance.
	ErrAbstractType = errors.New("cannot construct interface type without builder")
)

// Builder constructs a new instance from construction parameters.
type Builder func(params ...any) (any, error)

// Catalog is a thread-safe index of constructible types. It maps types to
// optional builders and type names to types.
type Catalog struct {
	mu       sync.RWMutex
	builders map[reflect.Type]Builder
	names    map[string]reflect.Type
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		builders: make(map[reflect.Type]Builder),
		names:    make(map[string]reflect.Type),
	}
}

// Enroll adds a type to the catalog under its type name. builder may be nil,
// in which case parameterless construction yields a zero instance. Enrolling
// the same type again replaces its builder.
func (c *Catalog) Enroll(t reflect.Type, builder Builder) error {
	if t == nil {
		return ErrNilType
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.builders[t] = builder
	c.names[t.String()] = t
	return nil
}

// New constructs a new instance of t using params as construction arguments.
//
// If t has an enrolled builder, the builder is invoked. Types without a
// builder can still be constructed with no parameters, yielding a zero
// instance (a pointer to a zeroed element for pointer types). Parameterized
// construction without a builder fails with ErrNoBuilder.
func (c *Catalog) New(t reflect.Type, params ...any) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}

	c.mu.RLock()
	builder := c.builders[t]
	c.mu.RUnlock()

	if builder != nil {
		return builder(params...)
	}
	if len(params) > 0 {
		return nil, fmt.Errorf("%s: %w", t, ErrNoBuilder)
	}
	return zeroInstance(t)
}

// Resolve returns the enrolled type for a type name, such as "*mypkg.Client".
func (c *Catalog) Resolve(name string) (reflect.Type, error) {
	c.mu.RLock()
	t, ok := c.names[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownType)
	}
	return t, nil
}

// Types returns all enrolled types. The order is not guaranteed.
func (c *Catalog) Types() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	types := make([]reflect.Type, 0, len(c.builders))
	for t := range c.builders {
		types = append(types, t)
	}
	return types
}

// Len returns the number of enrolled types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.builders)
}

// zeroInstance constructs a zero value of t. Pointer types yield a pointer
// to a zeroed element so the result is usable.
func zeroInstance(t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.Interface:
		return nil, fmt.Errorf("%s: %w", t, ErrAbstractType)
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface(), nil
	default:
		return reflect.New(t).Elem().Interface(), nil
	}
}

// TypeOf returns the reflect.Type for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register enrolls T with a typed builder.
func Register[T any](c *Catalog, builder func(params ...any) (T, error)) error {
	return c.Enroll(TypeOf[T](), func(params ...any) (any, error) {
		return builder(params...)
	})
}

// EnrollType enrolls T without a builder. Parameterless construction yields
// a zero instance of T.
func EnrollType[T any](c *Catalog) error {
	return c.Enroll(TypeOf[T](), nil)
}
