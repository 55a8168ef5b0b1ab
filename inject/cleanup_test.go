package inject

import (
	"errors"
	"testing"
)

func TestCleanup_Basic(t *testing.T) {
	c := NewContainer()

	cleaned := []string{}

	Register(c, func(ctx *ResolveCtx) (string, error) {
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "resource")
			return nil
		})
		return "value", nil
	}, InScope(ContainerLifetime))

	_, err := Resolve[string](c)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	c.Dispose()

	if len(cleaned) != 1 || cleaned[0] != "resource" {
		t.Errorf("expected cleanup to be called once, got %v", cleaned)
	}
}

func TestCleanup_LIFOOrder(t *testing.T) {
	c := NewContainer()

	cleaned := []string{}

	Register(c, func(ctx *ResolveCtx) (string, error) {
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "first")
			return nil
		})
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "second")
			return nil
		})
		return "value", nil
	}, InScope(ContainerLifetime))

	Register(c, func(ctx *ResolveCtx) (int, error) {
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "third")
			return nil
		})
		return 1, nil
	}, InScope(ContainerLifetime))

	MustResolve[string](c)
	MustResolve[int](c)

	c.Dispose()

	expected := []string{"third", "second", "first"}
	if len(cleaned) != len(expected) {
		t.Fatalf("expected %d cleanups, got %d", len(expected), len(cleaned))
	}

	for i, v := range expected {
		if cleaned[i] != v {
			t.Errorf("at index %d: expected %s, got %s", i, v, cleaned[i])
		}
	}
}

func TestCleanup_Release(t *testing.T) {
	c := NewContainer()

	cleaned := []string{}

	db := Register(c, func(ctx *ResolveCtx) (*config, error) {
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "db")
			return nil
		})
		return &config{port: 5432}, nil
	}, InScope(ContainerLifetime))

	Register(c, func(ctx *ResolveCtx) (*server, error) {
		cfg := MustResolve[*config](ctx)
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "server")
			return nil
		})
		return &server{cfg: cfg}, nil
	}, InScope(ContainerLifetime))

	first := MustResolve[*server](c)

	Accessor(c, db).Release()

	if len(cleaned) != 2 {
		t.Fatalf("expected db and server cleanups on release, got %v", cleaned)
	}

	second := MustResolve[*server](c)
	if first == second {
		t.Error("expected dependent server to be rebuilt after releasing db")
	}

	c.Dispose()
	if len(cleaned) != 4 {
		t.Errorf("expected rebuilt instances to be cleaned on dispose, got %v", cleaned)
	}
}

func TestCleanup_TransientRunsOnDispose(t *testing.T) {
	c := NewContainer()

	count := 0
	Register(c, func(ctx *ResolveCtx) (*config, error) {
		ctx.OnCleanup(func() error {
			count++
			return nil
		})
		return &config{}, nil
	}, InScope(TransientLifetime))

	MustResolve[*config](c)
	MustResolve[*config](c)
	MustResolve[*config](c)

	c.Dispose()

	if count != 3 {
		t.Errorf("expected 3 cleanups, got %d", count)
	}
}

type cleanupErrorCollector struct {
	BaseExtension
	errs []*CleanupError
}

func (e *cleanupErrorCollector) OnCleanupError(err *CleanupError) bool {
	e.errs = append(e.errs, err)
	return true
}

func TestCleanup_ErrorReportedToExtension(t *testing.T) {
	collector := &cleanupErrorCollector{BaseExtension: NewBaseExtension("collector")}
	c := NewContainer(WithExtension(collector))

	closeErr := errors.New("close failed")
	Register(c, func(ctx *ResolveCtx) (string, error) {
		ctx.OnCleanup(func() error {
			return closeErr
		})
		return "conn", nil
	}, InScope(ContainerLifetime))

	MustResolve[string](c)
	c.Dispose()

	if len(collector.errs) != 1 {
		t.Fatalf("expected 1 cleanup error, got %d", len(collector.errs))
	}

	got := collector.errs[0]
	if got.Context != "dispose" || got.Service != "string" || !errors.Is(got, closeErr) {
		t.Errorf("unexpected cleanup error %+v", got)
	}
}

func TestCleanup_RunsWhenRegistrationReplaced(t *testing.T) {
	c := NewContainer()

	cleaned := []string{}
	Register(c, func(ctx *ResolveCtx) (string, error) {
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "old")
			return nil
		})
		return "old", nil
	}, InScope(ContainerLifetime))
	MustResolve[string](c)

	Register(c, func(ctx *ResolveCtx) (string, error) {
		ctx.OnCleanup(func() error {
			cleaned = append(cleaned, "new")
			return nil
		})
		return "new", nil
	}, InScope(ContainerLifetime))

	if len(cleaned) != 1 || cleaned[0] != "old" {
		t.Fatalf("expected old cleanup to run on replace, got %v", cleaned)
	}

	if v := MustResolve[string](c); v != "new" {
		t.Errorf("expected new instance, got %q", v)
	}

	c.Dispose()
	if len(cleaned) != 2 || cleaned[1] != "new" {
		t.Errorf("expected only the new cleanup on dispose, got %v", cleaned)
	}
}
