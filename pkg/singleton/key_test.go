package singleton

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNoParams(t *testing.T) {
	assert.Equal(t, "Foo", Key("Foo"))
}

func TestKeyWithParams(t *testing.T) {
	assert.Equal(t, "Foo#a_b", Key("Foo", "a", "b"))
	assert.Equal(t, "Pool#5", Key("Pool", 5))
	assert.Equal(t, "Mixed#1_x_true", Key("Mixed", 1, "x", true))
}

func TestKeyStringifyCollision(t *testing.T) {
	// Distinct values that print identically share a key. Accepted behavior.
	assert.Equal(t, Key("Foo", 1), Key("Foo", "1"))
}

func TestTypeKey(t *testing.T) {
	wt := reflect.TypeOf(&widget{})

	assert.Equal(t, "*singleton.widget", TypeKey(wt))
	assert.Equal(t, "*singleton.widget#a_b", TypeKey(wt, "a", "b"))
}
