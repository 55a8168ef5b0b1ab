// Package force performs casts and dereferences that the caller asserts can
// not fail. Each call carries a justification that ends up in the panic
// message when the assertion turns out to be wrong.
package force

import (
	"fmt"
	"reflect"
)

// CastJustification explains why a Cast is expected to succeed.
type CastJustification string

// UnwrapJustification explains why an Unwrap is expected to find a value.
type UnwrapJustification string

const (
	// RegisteredType is used when a value comes back from a registry keyed by its type.
	RegisteredType CastJustification = "value was registered under this type"
	// InitializedBefore is used when the pointer is set up before any caller can observe it.
	InitializedBefore UnwrapJustification = "value is initialized before use"
)

// Cast converts obj to U or panics with the justification.
func Cast[U any](obj any, justification CastJustification) U {
	v, ok := obj.(U)
	if !ok {
		panic(fmt.Sprintf("force casting %s to %v did not work. justification given: %s",
			describe(obj), reflect.TypeFor[U](), justification))
	}
	return v
}

// Unwrap dereferences p or panics with the justification.
func Unwrap[T any](p *T, justification UnwrapJustification) T {
	if p == nil {
		panic(fmt.Sprintf("force unwrapping nil %v did not work. justification given: %s",
			reflect.TypeFor[*T](), justification))
	}
	return *p
}

func describe(obj any) string {
	if obj == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", obj)
}
