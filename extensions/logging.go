package extensions

import (
	"context"
	"log/slog"
	"time"

	"github.com/pumped-fn/pumped-kit/inject"
)

// LoggingExtension logs every container operation with its duration
type LoggingExtension struct {
	inject.BaseExtension
	logger *slog.Logger
}

// NewLoggingExtension creates a new logging extension writing to logger
func NewLoggingExtension(logger *slog.Logger) *LoggingExtension {
	return &LoggingExtension{
		BaseExtension: inject.NewBaseExtension("logging"),
		logger:        logger,
	}
}

// Wrap logs the start of op, then its outcome and duration
func (e *LoggingExtension) Wrap(ctx context.Context, next func() (any, error), op *inject.Operation) (any, error) {
	start := time.Now()
	e.logger.DebugContext(ctx, "operation starting",
		"extension", e.Name(),
		"operation", string(op.Kind),
		"service", op.Service,
	)

	result, err := next()

	duration := time.Since(start)
	if err != nil {
		e.logger.WarnContext(ctx, "operation failed",
			"extension", e.Name(),
			"operation", string(op.Kind),
			"service", op.Service,
			"duration", duration,
			"error", err,
		)
	} else {
		e.logger.InfoContext(ctx, "operation completed",
			"extension", e.Name(),
			"operation", string(op.Kind),
			"service", op.Service,
			"duration", duration,
		)
	}

	return result, err
}
