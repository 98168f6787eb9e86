package singleton

import (
	"errors"
	"fmt"
)

// Sentinel errors for argument validation.
var (
	// ErrEmptyKey indicates a registry operation was called with an empty key.
	ErrEmptyKey = errors.New("key must not be empty")

	// ErrNilType indicates a type-keyed operation was called with a nil type.
	ErrNilType = errors.New("type must not be nil")

	// ErrBlankTypeName indicates a name-keyed operation was called with an
	// empty or all-whitespace type name.
	ErrBlankTypeName = errors.New("type name must not be blank")

	// ErrNilValue indicates a nil value was supplied where an instance is
	// required. The registry never stores nil; absence of a key is the only
	// representation of "not present".
	ErrNilValue = errors.New("value must not be nil")

	// ErrWrongType indicates a stored value does not have the type the
	// caller asked for.
	ErrWrongType = errors.New("stored value has unexpected type")
)

// ConstructionError wraps a failure from the construction collaborator.
// The registry is left unchanged for the requested key.
type ConstructionError struct {
	// TypeName identifies the type that failed to construct.
	TypeName string
	// Err is the underlying error from the constructor.
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %s: %v", e.TypeName, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// ResolutionError wraps a failure to resolve a type name to a type.
// Nothing is inserted for the requested name.
type ResolutionError struct {
	// Name is the type name that could not be resolved.
	Name string
	// Err is the underlying error from the resolver.
	Err error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
