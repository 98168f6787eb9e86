package singleton

import (
	"fmt"
	"reflect"
	"strings"
)

// Key builds a registry key from a logical name and optional construction
// parameters. With no parameters the key is the name itself; otherwise the
// parameters are stringified and appended:
//
//	Key("Foo")           // "Foo"
//	Key("Foo", "a", "b") // "Foo#a_b"
//	Key("Pool", 5)       // "Pool#5"
//
// Parameters are stringified with fmt.Sprint, so two distinct values that
// print identically share a key. That is accepted behavior: the key captures
// the printed form of the construction arguments, not their identity.
func Key(name string, params ...any) string {
	if len(params) == 0 {
		return name
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprint(p)
	}
	return name + "#" + strings.Join(parts, "_")
}

// TypeKey builds a registry key from a type and optional construction
// parameters, using the type's string form as the name.
func TypeKey(t reflect.Type, params ...any) string {
	return Key(t.String(), params...)
}
