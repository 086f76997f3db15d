package middleware

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

// MsgTimeout is the envelope message for requests cut off by Timeout.
const MsgTimeout = "request timed out"

// Timeout bounds each request to d. The handler runs against a buffered
// writer; if it has not returned when the deadline fires, a 504 envelope
// is sent instead and any later writes by the handler fail with
// http.ErrHandlerTimeout. A non-positive d disables the middleware.
//
// Services and repositories receive the deadline through the request
// context, so gorm queries are canceled along with the response.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Re-raise on the serving goroutine so Recovery sees it.
				panic(v)
			case <-done:
				bw.commit(w)
			case <-ctx.Done():
				bw.abandon()
				logging.FromContext(ctx).WarnContext(ctx, "request exceeded deadline",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteErrorStatus(w, r, http.StatusGatewayTimeout, domain.CodeInternal, MsgTimeout)
			}
		})
	}
}

// bufferedWriter holds the handler's response until the outcome is known.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.abandoned {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// abandon marks the buffer dead so the still-running handler stops
// accumulating output.
func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	bw.abandoned = true
	bw.body = nil
	bw.mu.Unlock()
}

// commit replays the buffered response onto w. A handler that wrote
// nothing yields an empty 200.
func (bw *bufferedWriter) commit(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	w.WriteHeader(bw.status)
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
