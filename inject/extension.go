package inject

import "context"

// Extension provides hooks into the container lifecycle
type Extension interface {
	// Name returns the extension's name
	Name() string

	// Order determines extension execution order (lower = earlier)
	Order() int

	// Init is called when the extension is registered to a container
	Init(c *Container) error

	// Wrap intercepts operations (resolve, inject)
	Wrap(ctx context.Context, next func() (any, error), op *Operation) (any, error)

	// OnError handles errors during resolution and injection
	OnError(err error, op *Operation, c *Container)

	// OnCleanupError handles cleanup failures
	// Returns true if the error was handled, false to use default behavior
	OnCleanupError(err *CleanupError) bool

	// Dispose is called when the container is disposed
	Dispose(c *Container) error
}

// CleanupError contains information about a cleanup failure
type CleanupError struct {
	Service string
	Err     error
	Context string // "release" or "dispose"
}

func (e *CleanupError) Error() string {
	return "cleanup of " + e.Service + " during " + e.Context + ": " + e.Err.Error()
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// BaseExtension provides default implementations for Extension methods
type BaseExtension struct {
	name string
}

// NewBaseExtension creates a new base extension with the given name
func NewBaseExtension(name string) BaseExtension {
	return BaseExtension{name: name}
}

func (e *BaseExtension) Name() string {
	return e.name
}

func (e *BaseExtension) Order() int {
	return 100
}

func (e *BaseExtension) Init(c *Container) error {
	return nil
}

func (e *BaseExtension) Wrap(ctx context.Context, next func() (any, error), op *Operation) (any, error) {
	return next()
}

func (e *BaseExtension) OnError(err error, op *Operation, c *Container) {
}

func (e *BaseExtension) OnCleanupError(err *CleanupError) bool {
	return false
}

func (e *BaseExtension) Dispose(c *Container) error {
	return nil
}

// Operation describes what operation is happening
type Operation struct {
	Kind      OperationKind
	Service   string
	Entry     AnyEntry
	Container *Container
}

// OperationKind represents the type of operation
type OperationKind string

const (
	// OpResolve indicates a service resolution
	OpResolve OperationKind = "resolve"
	// OpInject indicates an injector running on a manually constructed object
	OpInject OperationKind = "inject"
)
