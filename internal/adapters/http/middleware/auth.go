package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

const bearerPrefix = "Bearer "

type principalKey struct{}

// WithPrincipal returns a new context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Authenticate returns middleware that resolves the bearer token into a
// principal. Requests without a valid token for an active user are rejected
// with an UNAUTHORIZED envelope.
//
// Browsers cannot set headers on websocket handshakes, so upgrade requests
// may carry the token in the "token" query parameter instead.
func Authenticate(auth ports.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				dto.WriteErrorStatus(w, r, http.StatusUnauthorized, domain.CodeUnauthorized, "authorization token is required")
				return
			}

			p, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				dto.WriteError(w, r, err)
				return
			}

			ctx := r.Context()
			noteUser(ctx, p.ID)
			ctx = logging.With(WithPrincipal(ctx, p), slog.Int64("user_id", p.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); len(h) > len(bearerPrefix) && strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(h[len(bearerPrefix):])
	}
	if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		return r.URL.Query().Get("token")
	}
	return ""
}
