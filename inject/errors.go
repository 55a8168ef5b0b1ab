package inject

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotRegistered means no factory or injector exists for the requested service
	ErrNotRegistered = errors.New("service not registered")
	// ErrCircularDependency means a factory (indirectly) requested its own service
	ErrCircularDependency = errors.New("circular dependency")
	// ErrDisposed means the container has been disposed
	ErrDisposed = errors.New("container disposed")
)

// ResolveError reports a failed resolution together with the chain of
// services that led to it.
type ResolveError struct {
	Service string
	Path    []string
	Cause   error
}

func (e *ResolveError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("resolve %s (via %s): %v", e.Service, strings.Join(e.Path, " -> "), e.Cause)
	}
	return fmt.Sprintf("resolve %s: %v", e.Service, e.Cause)
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}

func newResolveError(key serviceKey, path []serviceKey, cause error) *ResolveError {
	var re *ResolveError
	if errors.As(cause, &re) {
		return re
	}

	names := make([]string, len(path))
	for i, k := range path {
		names[i] = k.String()
	}

	return &ResolveError{
		Service: key.String(),
		Path:    names,
		Cause:   cause,
	}
}

// typeAssert converts a resolved value to T with a proper error
func typeAssert[T any](value any) (T, error) {
	if value == nil {
		var zero T
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("type assertion error: expected %T, got %T", zero, value)
	}

	return typed, nil
}
