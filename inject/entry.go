package inject

import "sync"

// Lifetime controls how long a resolved instance is reused
type Lifetime string

const (
	// TransientLifetime creates a new instance on every resolution
	TransientLifetime Lifetime = "transient"
	// GraphLifetime shares one instance within a single resolution graph
	GraphLifetime Lifetime = "graph"
	// ContainerLifetime shares one instance for the lifetime of the owning container
	ContainerLifetime Lifetime = "container"
)

// AnyEntry is a type-erased registration, used by tags and extensions
type AnyEntry interface {
	Key() string
	Lifetime() Lifetime
	GetTag(tag any) (any, bool)
	SetTag(tag any, val any)
}

type entry struct {
	key      serviceKey
	lifetime Lifetime
	factory  func(*ResolveCtx) (any, error)
	injectFn func(*ResolveCtx, any) error
	owner    *Container

	tagsMu sync.RWMutex
	tags   map[any]any
}

func (e *entry) Key() string {
	return e.key.String()
}

func (e *entry) Lifetime() Lifetime {
	return e.lifetime
}

func (e *entry) GetTag(tag any) (any, bool) {
	e.tagsMu.RLock()
	defer e.tagsMu.RUnlock()
	val, ok := e.tags[tag]
	return val, ok
}

func (e *entry) SetTag(tag any, val any) {
	e.tagsMu.Lock()
	defer e.tagsMu.Unlock()
	e.tags[tag] = val
}

// Entry is the typed handle returned by Register
type Entry[T any] struct {
	*entry
}

// Name returns the registration name ("" when unnamed)
func (e *Entry[T]) Name() string {
	return e.key.name
}

// RegisterOption is a modifier for registrations
type RegisterOption func(*entry)

// Named registers the service under a name, so several
// registrations of the same type can coexist
func Named(name string) RegisterOption {
	return func(e *entry) {
		e.key.name = name
	}
}

// InScope sets the lifetime of the registration (default GraphLifetime)
func InScope(l Lifetime) RegisterOption {
	return func(e *entry) {
		e.lifetime = l
	}
}

// WithTag returns an option that sets a tag on a registration
func WithTag[T any](tag Tag[T], val T) RegisterOption {
	return func(e *entry) {
		tag.Set(e, val)
	}
}
