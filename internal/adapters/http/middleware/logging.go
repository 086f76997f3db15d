package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/requestid"
)

// accessEntry collects facts learned further down the chain that belong on
// the completion line. Authenticate fills in the caller.
type accessEntry struct {
	userID int64
}

type accessEntryKey struct{}

// noteUser records the authenticated caller on the access log entry, if
// Logging is in the chain.
func noteUser(ctx context.Context, id int64) {
	if e, ok := ctx.Value(accessEntryKey{}).(*accessEntry); ok {
		e.userID = id
	}
}

// Logging writes one line when a request arrives and one when it finishes.
// The request-scoped logger it derives, tagged with the request and
// correlation IDs, is stored in the context for handlers and services.
//
// The completion line carries the chi route pattern and the authenticated
// user, and its level follows the outcome: Error for 5xx, Warn for 4xx.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", requestid.FromContext(ctx)),
				slog.String("correlation_id", requestid.CorrelationFromContext(ctx)),
			)
			entry := &accessEntry{}
			ctx = context.WithValue(logging.WithLogger(ctx, reqLogger), accessEntryKey{}, entry)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(ctx); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			if q := RedactQuery(r.URL.RawQuery); q != "" {
				attrs = append(attrs, slog.String("query", q))
			}
			if entry.userID != 0 {
				attrs = append(attrs, slog.Int64("user_id", entry.userID))
			}
			reqLogger.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
