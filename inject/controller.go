package inject

// Controller provides lifecycle control for a registration's instance
type Controller[T any] struct {
	entry     *Entry[T]
	container *Container
}

// Accessor creates a controller for a registration, resolving through c
func Accessor[T any](c *Container, e *Entry[T]) *Controller[T] {
	return &Controller[T]{
		entry:     e,
		container: c,
	}
}

// Get resolves the instance (cached for ContainerLifetime registrations)
func (c *Controller[T]) Get() (T, error) {
	return ResolveNamed[T](c.container, c.entry.Name())
}

// Peek returns the cached instance without resolving
func (c *Controller[T]) Peek() (T, bool) {
	val, ok := c.entry.owner.cache.Load(c.entry.key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, err := typeAssert[T](val)
	if err != nil {
		return typed, false
	}
	return typed, true
}

// IsCached checks if an instance is currently cached
func (c *Controller[T]) IsCached() bool {
	_, ok := c.entry.owner.cache.Load(c.entry.key)
	return ok
}

// Release drops the cached instance, running its cleanups, and also releases
// every cached instance that was built from it
func (c *Controller[T]) Release() {
	c.container.release(c.entry.key)
}

// Reload releases and immediately re-resolves
func (c *Controller[T]) Reload() (T, error) {
	c.Release()
	return c.Get()
}
