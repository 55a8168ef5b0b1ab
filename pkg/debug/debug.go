/*
Package debug prints loud, easy to grep lines while developing.

	debug.LPrint("user", user.ID, maybeNil) //  ===> user 42 nil
	debug.Todo("handle retries")            //  ===> TODO: (17) - handle retries
	debug.EndOfFile()

The package-level functions use a default [Printer] writing to stdout and
configured from the environment (see [LoadConfig]). Set LPRINT_DISABLED=true
to silence it without touching the call sites.
*/
package debug

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
)

// Printer writes debug lines to an io.Writer. It is safe for concurrent use.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
	cfg Config
}

// Option configures a Printer.
type Option func(*Printer)

// WithOutput sets the destination of printed lines.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) {
		p.out = w
	}
}

// WithConfig replaces the printer's configuration.
func WithConfig(cfg Config) Option {
	return func(p *Printer) {
		p.cfg = cfg
	}
}

// NewPrinter creates a printer writing to stdout with [DefaultConfig].
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		out: os.Stdout,
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LPrint prints the values separated by spaces, prefixed with the loud text.
// nil values, including typed nil pointers, print as the configured nil text.
// Non-nil pointers print the value they point to.
func (p *Printer) LPrint(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = p.render(v)
	}
	p.writeLine(fmt.Sprintf(" %s %s", p.cfg.LoudText, strings.Join(parts, " ")))
}

// Todo loudly prints msg along with the caller's line number.
func (p *Printer) Todo(msg string) {
	p.todo(msg, 2)
}

func (p *Printer) todo(msg string, skip int) {
	_, _, line, _ := runtime.Caller(skip)
	p.LPrint(fmt.Sprintf("TODO: (%d) - %s", line, msg))
}

// EndOfFile prints an end marker.
func (p *Printer) EndOfFile() {
	p.writeLine("\n  EOF")
}

func (p *Printer) writeLine(line string) {
	if p.cfg.Disabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

func (p *Printer) render(v any) string {
	if v == nil {
		return p.cfg.NilText
	}
	if _, ok := v.(fmt.Stringer); ok {
		if isNil(reflect.ValueOf(v)) {
			return p.cfg.NilText
		}
		return fmt.Sprint(v)
	}
	if _, ok := v.(error); ok {
		return fmt.Sprint(v)
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return p.cfg.NilText
	}
	if rv.Kind() == reflect.Pointer {
		return fmt.Sprint(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

var defaultPrinter atomic.Pointer[Printer]

// Default returns the printer used by the package-level functions. On first
// use it is built from the environment, falling back to [DefaultConfig] when
// the environment does not parse.
func Default() *Printer {
	if p := defaultPrinter.Load(); p != nil {
		return p
	}
	cfg := DefaultConfig()
	if loaded, err := LoadConfig(); err == nil {
		cfg = *loaded
	}
	defaultPrinter.CompareAndSwap(nil, NewPrinter(WithConfig(cfg)))
	return defaultPrinter.Load()
}

// SetDefault replaces the printer used by the package-level functions.
func SetDefault(p *Printer) {
	defaultPrinter.Store(p)
}

// LPrint prints the values through the default printer.
func LPrint(values ...any) {
	Default().LPrint(values...)
}

// Todo loudly prints msg along with the caller's line number.
func Todo(msg string) {
	Default().todo(msg, 2)
}

// EndOfFile prints an end marker through the default printer.
func EndOfFile() {
	Default().EndOfFile()
}
