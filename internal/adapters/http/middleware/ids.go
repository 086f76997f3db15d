package middleware

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/platform/requestid"
)

// maxIDLength bounds client-supplied identifiers; longer or non-printable
// values are replaced rather than echoed into logs and webhook headers.
const maxIDLength = 128

// RequestID assigns every request an X-Request-ID, reusing a well-formed
// incoming value and generating a UUID otherwise. The ID is echoed on the
// response and lands in the error envelope's meta.requestId.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestid.Header)
			if !validID(id) {
				id = requestid.New()
			}
			w.Header().Set(requestid.Header, id)
			next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
		})
	}
}

// CorrelationID carries a client's X-Correlation-ID through to logs and
// webhook deliveries. Without one the request ID stands in. Must run after
// RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := r.Header.Get(requestid.CorrelationHeader); validID(id) {
				ctx = requestid.WithCorrelation(ctx, id)
			}
			w.Header().Set(requestid.CorrelationHeader, requestid.CorrelationFromContext(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return !strings.ContainsFunc(id, func(r rune) bool {
		return r < 0x21 || r > 0x7e
	})
}
