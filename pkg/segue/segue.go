/*
Package segue routes navigation between screens through a Manager that keeps a
typed prepare handler for every pending transition.

A screen owning a Manager implements [Performer]. It asks the manager to
perform a transition, and when the transition is about to happen it hands the
destination back to [Manager.Prepare], which calls the handler registered for
it:

	type inbox struct{ router *segue.Manager }

	func (s *inbox) PerformSegue(id string, sender any) {
		dest := &thread{}
		if err := s.router.Prepare(segue.Segue{Identifier: id, Destination: dest}, sender); err != nil {
			log.Println(err)
		}
	}

	func (s *inbox) openThread(id string) error {
		return segue.Perform(s.router, "showThread", func(t *thread) {
			t.load(id)
		})
	}
*/
package segue

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"sync"
)

var (
	// ErrNoDelegate is returned by Perform when no Performer is set.
	ErrNoDelegate = errors.New("segue manager has no delegate")
	// ErrForeignSender is returned by Prepare when the segue was not started by this manager.
	ErrForeignSender = errors.New("should segue using the manager")
	// ErrUnknownSegue is returned by Prepare when no handler exists for the identifier.
	ErrUnknownSegue = errors.New("no prepare handler for segue")
)

// DestinationTypeError reports a destination whose type does not match the
// handler given to Perform. File and Line point at that Perform call.
type DestinationTypeError struct {
	Identifier string
	Want       reflect.Type
	Got        reflect.Type
	File       string
	Line       int
}

func (e *DestinationTypeError) Error() string {
	return fmt.Sprintf("segue %q: expected destination of type %v, got %v (performed at %s:%d)",
		e.Identifier, e.Want, e.Got, e.File, e.Line)
}

// Performer starts a transition. It must call [Manager.Prepare] with the
// destination once it is known, passing sender through unchanged.
type Performer interface {
	PerformSegue(identifier string, sender any)
}

// Segue is a transition about to happen.
type Segue struct {
	Identifier  string
	Destination any
}

// Manager holds the prepare handlers of performed segues. It is safe for
// concurrent use.
type Manager struct {
	mu       sync.Mutex
	delegate Performer
	handlers map[string]func(destination any) error
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger logs performed and prepared segues at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithDelegate sets the Performer at construction time.
func WithDelegate(delegate Performer) Option {
	return func(m *Manager) {
		m.delegate = delegate
	}
}

// NewManager creates a manager without a delegate unless WithDelegate is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		handlers: make(map[string]func(any) error),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetDelegate replaces the Performer. Passing nil detaches it.
func (m *Manager) SetDelegate(delegate Performer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delegate = delegate
}

// Perform registers prepare for identifier and asks the delegate to perform
// the segue. A later Perform with the same identifier replaces the handler.
func Perform[D any](m *Manager, identifier string, prepare func(D)) error {
	_, file, line, _ := runtime.Caller(1)

	m.mu.Lock()
	delegate := m.delegate
	if delegate == nil {
		m.mu.Unlock()
		return fmt.Errorf("perform %q: %w", identifier, ErrNoDelegate)
	}
	m.handlers[identifier] = func(destination any) error {
		d, ok := destination.(D)
		if !ok {
			return &DestinationTypeError{
				Identifier: identifier,
				Want:       reflect.TypeFor[D](),
				Got:        reflect.TypeOf(destination),
				File:       file,
				Line:       line,
			}
		}
		prepare(d)
		return nil
	}
	m.mu.Unlock()

	m.logger.Debug("performing segue", "identifier", identifier, "destination", reflect.TypeFor[D]().String())
	delegate.PerformSegue(identifier, m)
	return nil
}

// Prepare runs the handler registered for s. sender must be the manager that
// performed the segue.
func (m *Manager) Prepare(s Segue, sender any) error {
	if owner, ok := sender.(*Manager); !ok || owner != m {
		return ErrForeignSender
	}

	m.mu.Lock()
	handler, ok := m.handlers[s.Identifier]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownSegue, s.Identifier)
	}

	if err := handler(s.Destination); err != nil {
		m.logger.Debug("segue prepare failed", "identifier", s.Identifier, "error", err)
		return err
	}
	m.logger.Debug("prepared segue", "identifier", s.Identifier)
	return nil
}
