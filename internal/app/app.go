// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every operation follows the same shape: load the referenced entities,
// authorize the principal, apply domain rules, persist, then record a
// domain event. A missing entity is reported as not found before any
// authorization decision is made.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// logFailure logs a failed operation. Expected outcomes (not found,
// forbidden, validation, ...) are logged at WARN; anything else is an
// internal error and logged at ERROR.
func logFailure(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelWarn
	if domain.CodeOf(err) == domain.CodeInternal {
		level = slog.LevelError
	}
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))
	logger.Log(ctx, level, "operation failed", args...)
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func ptr[T any](v T) *T {
	return &v
}
