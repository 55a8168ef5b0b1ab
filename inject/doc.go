// Package inject is a small dependency-injection container.
//
// # Registration and resolution
//
// Services are registered by type, optionally under a name:
//
//	c := inject.NewContainer()
//
//	inject.Register(c, func(ctx *inject.ResolveCtx) (*Config, error) {
//	    return &Config{Port: 8080}, nil
//	}, inject.InScope(inject.ContainerLifetime))
//
//	inject.Register(c, func(ctx *inject.ResolveCtx) (*Server, error) {
//	    cfg, err := inject.Resolve[*Config](ctx)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewServer(cfg.Port), nil
//	})
//
//	srv, err := inject.Resolve[*Server](c)
//
// Factories resolve their dependencies through the *ResolveCtx they receive.
// MustResolve panics instead of returning an error, for wiring code where a
// missing service is a programming mistake.
//
// # Lifetimes
//
//   - TransientLifetime: a new instance on every resolution
//   - GraphLifetime (default): one instance per top-level Resolve call, shared
//     by every factory in that call
//   - ContainerLifetime: one instance per owning container until released
//
// # Manual construction
//
// Objects that cannot be built by the container (created by a framework, for
// instance) are completed by an injector:
//
//	inject.RegisterInjector(c, func(ctx *inject.ResolveCtx, h *Handler) error {
//	    h.Store = inject.MustResolve[Store](ctx)
//	    return nil
//	})
//
//	h := framework.NewHandler()
//	err := inject.FinishConstruction(c, h)
//
// # Child containers
//
// A container created WithParent falls back to its parent for services it
// does not register itself. ContainerLifetime instances live in the
// container that owns the registration.
//
// # Cleanup, extensions, presets
//
// Factories register cleanups with ctx.OnCleanup; they run (most recent
// first) when the instance is released through a Controller or when the
// container is disposed. Extensions wrap every resolve and inject operation.
// WithPreset replaces a registration with a fixed value, mainly for tests.
package inject
