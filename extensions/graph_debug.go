package extensions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/pumped-fn/pumped-kit/inject"
)

// NameTag labels registrations in graph-debug output. Untagged services are
// shown by their type (and name).
var NameTag = inject.NewTag[string]("service.name")

// GraphDebugExtension logs the container's dependency graph when an
// operation fails.
//
// Usage:
//
//	// Human-readable formatted output (with line breaks)
//	handler := extensions.NewHumanHandler(os.Stdout, slog.LevelError)
//	ext := extensions.NewGraphDebugExtension(handler)
//
//	// Structured JSON logging
//	ext := extensions.NewGraphDebugExtension(slog.NewJSONHandler(os.Stdout, nil))
//
//	// Silent (for testing)
//	ext := extensions.NewGraphDebugExtension(extensions.NewSilentHandler())
type GraphDebugExtension struct {
	inject.BaseExtension

	mu       sync.Mutex
	resolved map[string]bool
	failed   map[string]error
	logger   *slog.Logger
}

// NewGraphDebugExtension creates a new graph debug extension logging through logHandler
func NewGraphDebugExtension(logHandler slog.Handler) *GraphDebugExtension {
	return &GraphDebugExtension{
		BaseExtension: inject.NewBaseExtension("graph-debug"),
		resolved:      make(map[string]bool),
		failed:        make(map[string]error),
		logger:        slog.New(logHandler),
	}
}

// Wrap tracks which services resolved and which failed
func (e *GraphDebugExtension) Wrap(ctx context.Context, next func() (any, error), op *inject.Operation) (any, error) {
	result, err := next()

	if op.Kind == inject.OpResolve {
		e.mu.Lock()
		if err == nil {
			e.resolved[op.Service] = true
		} else {
			e.failed[op.Service] = err
		}
		e.mu.Unlock()
	}

	return result, err
}

// OnError logs the dependency graph when an operation fails
func (e *GraphDebugExtension) OnError(err error, op *inject.Operation, c *inject.Container) {
	e.logger.Error("Dependency Resolution Error",
		"service", e.serviceName(op),
		"error", err.Error(),
		"operation", string(op.Kind),
		"container", c.ID(),
		"dependency_graph", e.formatDependencyGraph(c, op.Service, err),
	)
}

func (e *GraphDebugExtension) serviceName(op *inject.Operation) string {
	if op.Entry != nil {
		if name, ok := NameTag.Get(op.Entry); ok {
			return name
		}
	}
	return op.Service
}

func (e *GraphDebugExtension) formatDependencyGraph(c *inject.Container, failedService string, failedErr error) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sb strings.Builder
	graph := c.DependencyGraph()

	if len(graph) == 0 {
		sb.WriteString("\n(empty - no dependencies tracked)\n")
		return sb.String()
	}

	sb.WriteString("\n")

	dependencies := make([]string, 0, len(graph))
	for dependency := range graph {
		dependencies = append(dependencies, dependency)
	}
	sort.Strings(dependencies)

	for _, dependency := range dependencies {
		dependents := graph[dependency]

		sb.WriteString(fmt.Sprintf("  %s%s\n", dependency, e.status(dependency, failedService)))

		for i, dependent := range dependents {
			branch := "├─>"
			if i == len(dependents)-1 {
				branch = "└─>"
			}
			sb.WriteString(fmt.Sprintf("    %s %s%s\n", branch, dependent, e.status(dependent, failedService)))
		}
	}

	if failedErr != nil {
		sb.WriteString("\nError Details:\n")
		sb.WriteString(fmt.Sprintf("  Service: %s\n", failedService))
		sb.WriteString(fmt.Sprintf("  Error: %v\n", failedErr))
	}

	return sb.String()
}

// status must be called with e.mu held
func (e *GraphDebugExtension) status(service, failedService string) string {
	switch {
	case service == failedService:
		return " ❌ FAILED"
	case e.resolved[service]:
		return " ✓"
	}
	if err, ok := e.failed[service]; ok {
		return fmt.Sprintf(" ❌ (error: %v)", err)
	}
	return " (pending)"
}

// SilentHandler is a slog.Handler that discards all log output
type SilentHandler struct{}

// NewSilentHandler creates a new silent log handler
func NewSilentHandler() *SilentHandler {
	return &SilentHandler{}
}

func (h *SilentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return false
}

func (h *SilentHandler) Handle(ctx context.Context, record slog.Record) error {
	return nil
}

func (h *SilentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *SilentHandler) WithGroup(name string) slog.Handler {
	return h
}

// HumanHandler is a slog.Handler that formats logs for human readability,
// printing dependency graphs with their line breaks intact
type HumanHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  slog.Level
}

// NewHumanHandler creates a new human-readable log handler
func NewHumanHandler(writer io.Writer, level slog.Level) *HumanHandler {
	return &HumanHandler{
		writer: writer,
		level:  level,
	}
}

func (h *HumanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *HumanHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if record.Message == "Dependency Resolution Error" {
		return h.handleDependencyError(record)
	}

	if _, err := fmt.Fprintf(h.writer, "[%s] %s\n", record.Level, record.Message); err != nil {
		return err
	}
	var writeErr error
	record.Attrs(func(a slog.Attr) bool {
		if _, err := fmt.Fprintf(h.writer, "  %s: %v\n", a.Key, a.Value); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

func (h *HumanHandler) handleDependencyError(record slog.Record) error {
	var service, errorMsg, operation, dependencyGraph string

	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "service":
			service = a.Value.String()
		case "error":
			errorMsg = a.Value.String()
		case "operation":
			operation = a.Value.String()
		case "dependency_graph":
			dependencyGraph = a.Value.String()
		}
		return true
	})

	separator := strings.Repeat("=", 70)

	var sb strings.Builder
	sb.WriteString("\n" + separator + "\n")
	sb.WriteString("[GraphDebug] Dependency Resolution Error\n")
	sb.WriteString(separator + "\n")
	sb.WriteString(fmt.Sprintf("\nFailed Service: %s\n", service))
	sb.WriteString(fmt.Sprintf("Error: %s\n", errorMsg))
	sb.WriteString(fmt.Sprintf("Operation: %s\n", operation))
	sb.WriteString(fmt.Sprintf("\nDependency Graph:%s", dependencyGraph))
	sb.WriteString(separator + "\n\n")

	_, err := io.WriteString(h.writer, sb.String())
	return err
}

func (h *HumanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *HumanHandler) WithGroup(name string) slog.Handler {
	return h
}
