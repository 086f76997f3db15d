// Package logging builds the tracker's slog loggers and carries the
// request-scoped logger through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.With(ctx, slog.Int64("user_id", p.ID))
//	logging.FromContext(ctx).InfoContext(ctx, "task assigned")
//
// Service errors are logged with the operation, the entity IDs involved and
// the full chain:
//
//	logger.ErrorContext(ctx, "failed to move task",
//	    slog.String("operation", "UpdateTaskStatus"),
//	    slog.Int64("task_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New passes attributes through the masq redactor,
// so passwords, JWTs and webhook secrets never reach the output even when a
// call site forgets to mask them.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a logger writing to w. level accepts slog's names ("debug",
// "info", "warn", "error", case-insensitive, with offsets such as
// "info+2") plus "warning"; anything else means info. format "text" selects
// logfmt-style output and everything else JSON. Debug loggers also record
// the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a configured level name to a slog.Level,
// defaulting to info.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context's logger, or slog.Default when none was
// stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a context whose logger also carries args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
