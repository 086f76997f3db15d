package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Issue signs a token for u and returns it with its expiry.
	Issue(u *user.User) (token string, expiresAt time.Time, err error)

	// Verify returns the user id the token was issued for, or an error
	// wrapping domain.ErrUnauthorized.
	Verify(token string) (int64, error)
}

// PasswordHasher turns plaintext passwords into opaque credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns an error wrapping domain.ErrUnauthorized on mismatch.
	Compare(hash, password string) error
}

// Authenticator resolves a bearer token to an active principal.
// Implemented by the application layer; called by the auth middleware.
type Authenticator interface {
	// Authenticate returns domain.ErrUnauthorized for invalid tokens and
	// for missing or inactive users.
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}
