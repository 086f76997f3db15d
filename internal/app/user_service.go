package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

// UserService implements ports.UserService, including token
// authentication for the HTTP middleware.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	authz  *authorizer
	events ports.EventSink
	logger *slog.Logger
	now    func() time.Time
}

// NewUserService creates a UserService.
func NewUserService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	events ports.EventSink,
	audit ports.SecurityAuditor,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		authz:  newAuthorizer(nil, nil, audit),
		events: events,
		logger: orDiscard(logger),
		now:    utcNow,
	}
}

// Authenticate resolves a bearer token to the principal of an active user.
func (s *UserService) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, err
	}

	u, err := s.users.FindByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.Principal{}, fmt.Errorf("user %d no longer exists: %w", id, domain.ErrUnauthorized)
	case err != nil:
		return domain.Principal{}, err
	case !u.IsActive:
		return domain.Principal{}, fmt.Errorf("user %d is inactive: %w", id, domain.ErrUnauthorized)
	}
	return u.Principal(), nil
}

// Register creates an active account with role user.
func (s *UserService) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &user.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         domain.RoleUser,
		IsActive:     true,
		PasswordHash: hash,
	})
	if err != nil {
		logFailure(ctx, s.logger, "Register", err, slog.String("username", in.Username))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventUserRegistered, created.ID, domain.EntityUser, created.ID, map[string]any{
		"username": created.Username,
	}))
	return created, nil
}

// Login checks credentials and issues a token. Unknown users, wrong
// passwords and inactive accounts are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, login, password string) (*ports.AuthResult, error) {
	u, err := s.users.FindByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		s.logger.InfoContext(ctx, "login rejected", slog.Int64("user_id", u.ID), slog.String("reason", "password"))
		return nil, errInvalidCredentials
	}
	if !u.IsActive {
		s.logger.InfoContext(ctx, "login rejected", slog.Int64("user_id", u.ID), slog.String("reason", "inactive"))
		return nil, errInvalidCredentials
	}

	u.LastLoginAt = ptr(s.now())
	if updated, err := s.users.Update(ctx, u); err != nil {
		logFailure(ctx, s.logger, "Login", err, slog.Int64("user_id", u.ID))
	} else {
		u = updated
	}

	token, expiresAt, err := s.tokens.Issue(u)
	if err != nil {
		logFailure(ctx, s.logger, "Login", err, slog.Int64("user_id", u.ID))
		return nil, err
	}
	return &ports.AuthResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

// GetUser returns the full profile of id to the user themself or an admin.
func (s *UserService) GetUser(ctx context.Context, p domain.Principal, id int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	if !access.CanViewUser(p, id) {
		return nil, s.authz.deny(ctx, domain.EntityUser, access.ActionView, p, id)
	}
	return u, nil
}

// ListUsers lists every user for admins and only active users otherwise.
func (s *UserService) ListUsers(ctx context.Context, p domain.Principal, q user.Query) (*query.Result[user.User], error) {
	if !p.IsAdmin() {
		q.Filter.IsActive = ptr(true)
	}
	res, err := s.users.FindMany(ctx, q)
	if err != nil {
		logFailure(ctx, s.logger, "ListUsers", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}
	return res, nil
}

// UpdateUser applies a partial profile update. Role and active-flag
// changes are admin-only.
func (s *UserService) UpdateUser(ctx context.Context, p domain.Principal, id int64, in user.UpdateInput) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	if !access.CanEditUser(p, id, in.PrivilegedChange()) {
		return nil, s.authz.deny(ctx, domain.EntityUser, access.ActionEdit, p, id)
	}

	u.Apply(in)
	if in.Email != nil {
		u.Email = strings.ToLower(u.Email)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		logFailure(ctx, s.logger, "UpdateUser", err, slog.Int64("user_id", id))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventUserUpdated, p.ID, domain.EntityUser, id, map[string]any{
		"username":        updated.Username,
		domain.DetailRole: updated.Role.String(),
	}))
	return updated, nil
}

// DeactivateUser soft-deletes the account. Admins cannot deactivate
// themselves.
func (s *UserService) DeactivateUser(ctx context.Context, p domain.Principal, id int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	if !p.IsAdmin() {
		return nil, s.authz.deny(ctx, domain.EntityUser, access.ActionAdmin, p, id)
	}
	if p.ID == id {
		return nil, domain.NewValidationError("id", "cannot deactivate your own account")
	}
	if !u.IsActive {
		return u, nil
	}

	u.IsActive = false
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		logFailure(ctx, s.logger, "DeactivateUser", err, slog.Int64("user_id", id))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventUserDeactivated, p.ID, domain.EntityUser, id, map[string]any{
		"username": updated.Username,
	}))
	return updated, nil
}
