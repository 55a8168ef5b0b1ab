package inject

import (
	"reflect"
)

// serviceKey identifies a registration by its service type and optional name
type serviceKey struct {
	typ  reflect.Type
	name string
}

func keyOf[T any](name string) serviceKey {
	return serviceKey{typ: reflect.TypeFor[T](), name: name}
}

func (k serviceKey) String() string {
	if k.name == "" {
		return k.typ.String()
	}
	return k.typ.String() + "(" + k.name + ")"
}

func nameOrNil(name string) string {
	if name == "" {
		return "nil"
	}
	return name
}
