package force

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	var v any = 42
	assert.Equal(t, 42, Cast[int](v, RegisteredType))

	var s fmt.Stringer = stringer("hi")
	assert.Equal(t, "hi", Cast[fmt.Stringer](s, "stringer was stored").String())
}

func TestCast_Panics(t *testing.T) {
	assert.PanicsWithValue(t,
		"force casting 42 to string did not work. justification given: it was a string yesterday",
		func() { Cast[string](42, "it was a string yesterday") })

	assert.PanicsWithValue(t,
		"force casting nil to int did not work. justification given: value was registered under this type",
		func() { Cast[int](nil, RegisteredType) })
}

func TestUnwrap(t *testing.T) {
	n := 7
	assert.Equal(t, 7, Unwrap(&n, InitializedBefore))

	assert.PanicsWithValue(t,
		"force unwrapping nil *int did not work. justification given: value is initialized before use",
		func() { Unwrap[int](nil, InitializedBefore) })
}

type stringer string

func (s stringer) String() string { return string(s) }
