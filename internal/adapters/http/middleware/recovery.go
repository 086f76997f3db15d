package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Recovery turns a handler panic into an opaque INTERNAL_ERROR envelope and
// an error log carrying the stack. Nothing is written when the response
// has already started or the connection was hijacked for a websocket.
// http.ErrAbortHandler is re-raised so net/http can drop the connection
// silently.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []slog.Attr{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rw.headerWritten),
					slog.String("stack", string(debug.Stack())),
				}
				if route := routePattern(r.Context()); route != "" {
					attrs = append(attrs, slog.String("route", route))
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorStatus(rw, r, http.StatusInternalServerError, domain.CodeInternal, dto.MsgInternal)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
