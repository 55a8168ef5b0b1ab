package inject

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Resolver is anything services can be resolved from: a *Container, or the
// *ResolveCtx handed to factories and injectors.
type Resolver interface {
	resolveKey(key serviceKey) (any, error)
}

// Container holds service registrations and the instances they produce
type Container struct {
	id     string
	parent *Container
	logger *slog.Logger

	mu         sync.RWMutex
	entries    map[serviceKey]*entry
	injectors  map[serviceKey]*entry
	presets    map[serviceKey]any
	extensions []Extension
	disposed   bool

	cache sync.Map
	tags  sync.Map

	cleanupMu       sync.Mutex
	cleanupRegistry map[serviceKey][]cleanupEntry
	cleanupOrder    []serviceKey

	graph *dependencyGraph
}

// ContainerOption is a modifier for containers
type ContainerOption func(*Container)

// WithParent makes the container fall back to parent for services it does
// not register itself. Container-lifetime services owned by parent are built
// against parent, so registrations and presets of the child never leak into
// them.
func WithParent(parent *Container) ContainerOption {
	return func(c *Container) {
		c.parent = parent
	}
}

// WithLogger sets the logger used for registration and resolution events
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithExtension returns an option that registers an extension to a container
func WithExtension(ext Extension) ContainerOption {
	return func(c *Container) {
		if err := c.UseExtension(ext); err != nil {
			panic(err)
		}
	}
}

// WithPreset replaces the unnamed registration of T with a fixed value
func WithPreset[T any](value T) ContainerOption {
	return WithNamedPreset(value, "")
}

// WithNamedPreset replaces the registration of T under name with a fixed value
func WithNamedPreset[T any](value T, name string) ContainerOption {
	return func(c *Container) {
		c.presets[keyOf[T](name)] = value
	}
}

// WithContainerTag returns an option that sets a tag on a container
func WithContainerTag[T any](tag Tag[T], val T) ContainerOption {
	return func(c *Container) {
		tag.SetOnContainer(c, val)
	}
}

// NewContainer creates a new container with optional configuration
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		id:              uuid.NewString(),
		logger:          slog.New(slog.DiscardHandler),
		entries:         make(map[serviceKey]*entry),
		injectors:       make(map[serviceKey]*entry),
		presets:         make(map[serviceKey]any),
		extensions:      []Extension{},
		cleanupRegistry: make(map[serviceKey][]cleanupEntry),
		graph:           newDependencyGraph(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ID returns the container's unique identifier
func (c *Container) ID() string {
	return c.id
}

// Parent returns the parent container, or nil
func (c *Container) Parent() *Container {
	return c.parent
}

func newEntry(c *Container, key serviceKey, opts []RegisterOption) *entry {
	e := &entry{
		key:      key,
		lifetime: GraphLifetime,
		owner:    c,
		tags:     make(map[any]any),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Register adds a factory for T. Registering the same type and name again
// replaces the previous registration, drops its cached instance and runs the
// cleanups of the instances it built.
func Register[T any](c *Container, factory func(*ResolveCtx) (T, error), opts ...RegisterOption) *Entry[T] {
	e := newEntry(c, keyOf[T](""), opts)
	e.factory = func(ctx *ResolveCtx) (any, error) {
		val, err := factory(ctx)
		if err != nil {
			return nil, err
		}
		return val, nil
	}

	c.mu.Lock()
	_, replaced := c.entries[e.key]
	c.entries[e.key] = e
	c.mu.Unlock()

	if replaced {
		c.cache.Delete(e.key)
		c.cleanupService(e.key, "replace")
	}

	c.logger.Debug("service registered",
		"service", e.key.String(),
		"lifetime", string(e.lifetime),
		"container", c.id,
	)

	return &Entry[T]{entry: e}
}

// RegisterInjector adds a handler that completes objects of type T which
// were constructed outside the container. See FinishConstruction.
func RegisterInjector[T any](c *Container, handler func(*ResolveCtx, T) error, opts ...RegisterOption) *Entry[T] {
	e := newEntry(c, keyOf[T](""), opts)
	e.injectFn = func(ctx *ResolveCtx, obj any) error {
		return handler(ctx, obj.(T))
	}

	c.mu.Lock()
	c.injectors[e.key] = e
	c.mu.Unlock()

	c.logger.Debug("injector registered",
		"service", e.key.String(),
		"container", c.id,
	)

	return &Entry[T]{entry: e}
}

// Resolve resolves the unnamed registration of T
func Resolve[T any](r Resolver) (T, error) {
	return ResolveNamed[T](r, "")
}

// ResolveNamed resolves the registration of T under name
func ResolveNamed[T any](r Resolver, name string) (T, error) {
	val, err := r.resolveKey(keyOf[T](name))
	if err != nil {
		var zero T
		return zero, err
	}
	return typeAssert[T](val)
}

// MustResolve is like Resolve but panics if T cannot be materialized
func MustResolve[T any](r Resolver) T {
	return MustResolveNamed[T](r, "")
}

// MustResolveNamed is like ResolveNamed but panics if T cannot be materialized
func MustResolveNamed[T any](r Resolver, name string) T {
	val, err := ResolveNamed[T](r, name)
	if err != nil {
		panic(fmt.Sprintf("could not materialize %s with name %s: %v", reflect.TypeFor[T](), nameOrNil(name), err))
	}
	return val
}

// FinishConstruction runs the injector registered for T on obj
func FinishConstruction[T any](c *Container, obj T) error {
	return FinishConstructionNamed(c, obj, "")
}

// FinishConstructionNamed runs the injector registered for T under name on obj
func FinishConstructionNamed[T any](c *Container, obj T, name string) error {
	key := keyOf[T](name)

	if c.isDisposed() {
		return newResolveError(key, nil, ErrDisposed)
	}

	e, ok := c.lookupInjector(key)
	if !ok {
		return newResolveError(key, nil, ErrNotRegistered)
	}

	ctx := newResolveCtx(c).child(key)
	op := &Operation{
		Kind:      OpInject,
		Service:   key.String(),
		Entry:     e,
		Container: c,
	}

	_, err := c.wrap(op, func() (any, error) {
		return nil, e.injectFn(ctx, obj)
	})
	c.appendCleanups(key, ctx.takeCleanups())

	if err != nil {
		var re *ResolveError
		if errors.As(err, &re) {
			return re
		}
		rerr := newResolveError(key, nil, err)
		c.notifyError(rerr, op)
		return rerr
	}

	c.logger.Debug("construction finished", "service", key.String(), "container", c.id)
	return nil
}

func (c *Container) resolveKey(key serviceKey) (any, error) {
	return newResolveCtx(c).resolveKey(key)
}

func (c *Container) resolveIn(ctx *ResolveCtx, key serviceKey) (any, error) {
	if c.isDisposed() {
		return nil, newResolveError(key, ctx.res.path, ErrDisposed)
	}

	if ctx.hasKey {
		c.graph.addDependency(ctx.key, key)
	}

	if val, ok := c.lookupPreset(key); ok {
		return val, nil
	}

	e, ok := c.lookup(key)
	if !ok {
		rerr := newResolveError(key, ctx.res.path, ErrNotRegistered)
		c.notifyError(rerr, &Operation{Kind: OpResolve, Service: key.String(), Container: c})
		return nil, rerr
	}

	if ctx.inPath(key) {
		rerr := newResolveError(key, ctx.res.path, ErrCircularDependency)
		c.notifyError(rerr, &Operation{Kind: OpResolve, Service: key.String(), Entry: e, Container: c})
		return nil, rerr
	}

	if e.lifetime == ContainerLifetime && e.owner != c {
		return e.owner.resolveIn(ctx.rootedAt(e.owner), key)
	}

	switch e.lifetime {
	case ContainerLifetime:
		if val, ok := e.owner.cache.Load(key); ok {
			return val, nil
		}
	case GraphLifetime:
		if val, ok := ctx.res.instances[key]; ok {
			return val, nil
		}
	}

	op := &Operation{
		Kind:      OpResolve,
		Service:   key.String(),
		Entry:     e,
		Container: c,
	}

	frame := ctx.child(key)
	ctx.res.path = append(ctx.res.path, key)
	val, err := c.wrap(op, func() (any, error) {
		return e.factory(frame)
	})
	ctx.res.path = ctx.res.path[:len(ctx.res.path)-1]

	if err != nil {
		// already reported where it happened
		var re *ResolveError
		if errors.As(err, &re) {
			return nil, re
		}
		rerr := newResolveError(key, ctx.res.path, err)
		c.notifyError(rerr, op)
		return nil, rerr
	}

	cleanups := frame.takeCleanups()
	switch e.lifetime {
	case ContainerLifetime:
		actual, loaded := e.owner.cache.LoadOrStore(key, val)
		if loaded {
			// lost a race with a concurrent resolution
			c.runCleanups(cleanups, key, "release")
			return actual, nil
		}
		e.owner.appendCleanups(key, cleanups)
	case GraphLifetime:
		ctx.res.instances[key] = val
		c.appendCleanups(key, cleanups)
	default:
		c.appendCleanups(key, cleanups)
	}

	c.logger.Debug("service resolved",
		"service", key.String(),
		"lifetime", string(e.lifetime),
		"container", c.id,
	)

	return val, nil
}

// wrap chains extensions around next (middleware pattern)
func (c *Container) wrap(op *Operation, next func() (any, error)) (any, error) {
	c.mu.RLock()
	exts := c.extensions
	c.mu.RUnlock()

	// Apply extensions in reverse order (last registered wraps first)
	for i := len(exts) - 1; i >= 0; i-- {
		ext := exts[i]
		currentNext := next
		next = func() (any, error) {
			return ext.Wrap(context.Background(), currentNext, op)
		}
	}

	return next()
}

func (c *Container) notifyError(err error, op *Operation) {
	c.mu.RLock()
	exts := make([]Extension, len(c.extensions))
	copy(exts, c.extensions)
	c.mu.RUnlock()

	c.logger.Error("operation failed",
		"operation", string(op.Kind),
		"service", op.Service,
		"container", c.id,
		"error", err,
	)

	for _, ext := range exts {
		ext.OnError(err, op, c)
	}
}

func (c *Container) lookup(key serviceKey) (*entry, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		e, ok := cur.entries[key]
		cur.mu.RUnlock()
		if ok {
			return e, true
		}
	}
	return nil, false
}

func (c *Container) lookupInjector(key serviceKey) (*entry, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		e, ok := cur.injectors[key]
		cur.mu.RUnlock()
		if ok {
			return e, true
		}
	}
	return nil, false
}

func (c *Container) lookupPreset(key serviceKey) (any, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		val, ok := cur.presets[key]
		cur.mu.RUnlock()
		if ok {
			return val, true
		}
	}
	return nil, false
}

func (c *Container) isDisposed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.disposed
}

// UseExtension registers an extension to the container
func (c *Container) UseExtension(ext Extension) error {
	c.mu.Lock()
	c.extensions = append(c.extensions, ext)
	sort.SliceStable(c.extensions, func(i, j int) bool {
		return c.extensions[i].Order() < c.extensions[j].Order()
	})
	c.mu.Unlock()

	return ext.Init(c)
}

func (c *Container) appendCleanups(key serviceKey, entries []cleanupEntry) {
	if len(entries) == 0 {
		return
	}

	c.cleanupMu.Lock()
	defer c.cleanupMu.Unlock()

	if _, ok := c.cleanupRegistry[key]; !ok {
		c.cleanupOrder = append(c.cleanupOrder, key)
	}
	c.cleanupRegistry[key] = append(c.cleanupRegistry[key], entries...)
}

func (c *Container) cleanupService(key serviceKey, cleanupContext string) {
	c.cleanupMu.Lock()
	entries := c.cleanupRegistry[key]
	delete(c.cleanupRegistry, key)
	for i, k := range c.cleanupOrder {
		if k == key {
			c.cleanupOrder = append(c.cleanupOrder[:i], c.cleanupOrder[i+1:]...)
			break
		}
	}
	c.cleanupMu.Unlock()

	c.runCleanups(entries, key, cleanupContext)
}

func (c *Container) runCleanups(entries []cleanupEntry, key serviceKey, cleanupContext string) {
	if len(entries) == 0 {
		return
	}

	c.mu.RLock()
	exts := make([]Extension, len(c.extensions))
	copy(exts, c.extensions)
	c.mu.RUnlock()

	for i := len(entries) - 1; i >= 0; i-- {
		if err := entries[i].fn(); err != nil {
			cleanupErr := &CleanupError{
				Service: key.String(),
				Err:     err,
				Context: cleanupContext,
			}

			handled := false
			for _, ext := range exts {
				if ext.OnCleanupError(cleanupErr) {
					handled = true
					break
				}
			}
			if !handled {
				c.logger.Warn("cleanup failed",
					"service", cleanupErr.Service,
					"context", cleanupContext,
					"container", c.id,
					"error", err,
				)
			}
		}
	}
}

// release drops the cached instance of key together with every
// container-lifetime instance built from it
func (c *Container) release(key serviceKey) {
	targets := append([]serviceKey{key}, c.graph.findDependents(key)...)

	for _, k := range targets {
		e, ok := c.lookup(k)
		if !ok || e.lifetime != ContainerLifetime {
			continue
		}
		if _, cached := e.owner.cache.LoadAndDelete(k); cached {
			e.owner.cleanupService(k, "release")
			c.logger.Debug("service released", "service", k.String(), "container", c.id)
		}
	}
}

// Dispose runs all registered cleanups (most recent first) and disposes
// extensions. A disposed container refuses further resolutions.
func (c *Container) Dispose() error {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()

	c.cleanupMu.Lock()
	order := c.cleanupOrder
	registry := c.cleanupRegistry
	c.cleanupOrder = nil
	c.cleanupRegistry = make(map[serviceKey][]cleanupEntry)
	c.cleanupMu.Unlock()

	for i := len(order) - 1; i >= 0; i-- {
		c.runCleanups(registry[order[i]], order[i], "dispose")
	}

	c.cache.Range(func(key, _ any) bool {
		c.cache.Delete(key)
		return true
	})

	c.mu.RLock()
	exts := make([]Extension, len(c.extensions))
	copy(exts, c.extensions)
	c.mu.RUnlock()

	for _, ext := range exts {
		if err := ext.Dispose(c); err != nil {
			return fmt.Errorf("disposing extension %s: %w", ext.Name(), err)
		}
	}

	c.logger.Debug("container disposed", "container", c.id)
	return nil
}

// GetTag retrieves a tag value from the container or its parents
func (c *Container) GetTag(tag any) (any, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if val, ok := cur.tags.Load(tag); ok {
			return val, true
		}
	}
	return nil, false
}

// SetTag stores a tag value on the container
func (c *Container) SetTag(tag any, val any) {
	c.tags.Store(tag, val)
}

// DependencyGraph returns, for every service that was resolved as a
// dependency, the sorted names of the services built from it
func (c *Container) DependencyGraph() map[string][]string {
	return c.graph.export()
}
