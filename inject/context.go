package inject

import (
	"slices"
	"sync"
)

type cleanupEntry struct {
	fn    func() error
	order int
}

// resolution is the state shared by every factory call of one top-level
// Resolve: graph-lifetime instances and the current chain of services
type resolution struct {
	instances map[serviceKey]any
	path      []serviceKey
}

// ResolveCtx is passed to factories and injectors. It is a Resolver, so
// factories resolve their own dependencies through it.
type ResolveCtx struct {
	container *Container
	res       *resolution
	key       serviceKey
	hasKey    bool

	cleanups  []cleanupEntry
	cleanupMu sync.Mutex
}

func newResolveCtx(c *Container) *ResolveCtx {
	return &ResolveCtx{
		container: c,
		res: &resolution{
			instances: make(map[serviceKey]any),
		},
	}
}

func (ctx *ResolveCtx) child(key serviceKey) *ResolveCtx {
	return &ResolveCtx{
		container: ctx.container,
		res:       ctx.res,
		key:       key,
		hasKey:    true,
	}
}

// rootedAt starts a fresh resolution on c that keeps the current path, so
// cycles through another container are still detected
func (ctx *ResolveCtx) rootedAt(c *Container) *ResolveCtx {
	return &ResolveCtx{
		container: c,
		res: &resolution{
			instances: make(map[serviceKey]any),
			path:      slices.Clone(ctx.res.path),
		},
	}
}

func (ctx *ResolveCtx) resolveKey(key serviceKey) (any, error) {
	return ctx.container.resolveIn(ctx, key)
}

func (ctx *ResolveCtx) inPath(key serviceKey) bool {
	return slices.Contains(ctx.res.path, key)
}

// Container returns the container the resolution started from
func (ctx *ResolveCtx) Container() *Container {
	return ctx.container
}

// OnCleanup registers a cleanup function to be called when the service is
// released or the container is disposed
func (ctx *ResolveCtx) OnCleanup(fn func() error) {
	ctx.cleanupMu.Lock()
	defer ctx.cleanupMu.Unlock()

	entry := cleanupEntry{
		fn:    fn,
		order: len(ctx.cleanups),
	}
	ctx.cleanups = append(ctx.cleanups, entry)
}

func (ctx *ResolveCtx) takeCleanups() []cleanupEntry {
	ctx.cleanupMu.Lock()
	defer ctx.cleanupMu.Unlock()

	entries := ctx.cleanups
	ctx.cleanups = nil
	return entries
}

// GetTag retrieves a typed tag from the container
func GetTag[T any](ctx *ResolveCtx, tag Tag[T]) (T, bool) {
	return tag.GetFromContainer(ctx.container)
}

// GetTagOrDefault retrieves a typed tag or returns a default value
func GetTagOrDefault[T any](ctx *ResolveCtx, tag Tag[T], defaultVal T) T {
	if val, ok := tag.GetFromContainer(ctx.container); ok {
		return val
	}
	return defaultVal
}
