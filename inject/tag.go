package inject

// Tag is a type-safe key for metadata on registrations and containers
type Tag[T any] struct {
	key string
}

// NewTag creates a new tag with the given key
func NewTag[T any](key string) Tag[T] {
	return Tag[T]{key: key}
}

// Key returns the tag's key (for debugging)
func (t Tag[T]) Key() string {
	return t.key
}

// Get retrieves the tag value from a registration
func (t Tag[T]) Get(e AnyEntry) (T, bool) {
	val, ok := e.GetTag(t)
	if !ok {
		var zero T
		return zero, false
	}
	typed, _ := val.(T)
	return typed, true
}

// GetOrDefault retrieves the tag value or returns a default
func (t Tag[T]) GetOrDefault(e AnyEntry, defaultVal T) T {
	if val, ok := t.Get(e); ok {
		return val
	}
	return defaultVal
}

// Set stores the tag value on a registration
func (t Tag[T]) Set(e AnyEntry, val T) {
	e.SetTag(t, val)
}

// GetFromContainer retrieves the tag value from a container
func (t Tag[T]) GetFromContainer(c *Container) (T, bool) {
	val, ok := c.GetTag(t)
	if !ok {
		var zero T
		return zero, false
	}
	typed, _ := val.(T)
	return typed, true
}

// SetOnContainer stores the tag value on a container
func (t Tag[T]) SetOnContainer(c *Container, val T) {
	c.SetTag(t, val)
}
