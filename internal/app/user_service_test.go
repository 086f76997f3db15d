package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
)

func register(t *testing.T, e *env, username string) *user.User {
	t.Helper()

	u, err := e.users.Register(context.Background(), user.RegisterInput{
		Username: username,
		Email:    username + "@Example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return u
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	u := register(t, e, "alice")
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "correct horse battery", u.PasswordHash)

	res, err := e.users.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.NotNil(t, res.User.LastLoginAt)

	p, err := e.users.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, domain.RoleUser, p.Role)
}

func TestUserService_Register_Rejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	register(t, e, "alice")

	tests := []struct {
		name     string
		in       user.RegisterInput
		wantCode domain.Code
	}{
		{
			name:     "duplicate username",
			in:       user.RegisterInput{Username: "alice", Email: "other@example.com", Password: "long enough"},
			wantCode: domain.CodeConflict,
		},
		{
			name:     "short password",
			in:       user.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "short"},
			wantCode: domain.CodeValidation,
		},
		{
			name:     "bad email",
			in:       user.RegisterInput{Username: "carol", Email: "nope", Password: "long enough"},
			wantCode: domain.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.users.Register(ctx, tt.in)
			if got := domain.CodeOf(err); got != tt.wantCode {
				t.Errorf("Register() code = %v, want %v (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestUserService_Login_Failures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.repos.User(t, "root", domain.RoleAdmin)
	alice := register(t, e, "alice")
	bob := register(t, e, "bob")
	_, err := e.users.DeactivateUser(ctx, admin, bob.ID)
	require.NoError(t, err)

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "unknown user", login: "nobody", password: "correct horse battery"},
		{name: "wrong password", login: alice.Username, password: "wrong password"},
		{name: "inactive user", login: bob.Username, password: "correct horse battery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.users.Login(ctx, tt.login, tt.password)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			assert.Equal(t, "invalid credentials: unauthorized", err.Error())
		})
	}
}

func TestUserService_Authenticate_InactiveUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.repos.User(t, "root", domain.RoleAdmin)
	register(t, e, "alice")

	res, err := e.users.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	_, err = e.users.DeactivateUser(ctx, admin, res.User.ID)
	require.NoError(t, err)

	_, err = e.users.Authenticate(ctx, res.Token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.users.Authenticate(ctx, "not-a-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_Access(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.repos.User(t, "root", domain.RoleAdmin)
	alice := e.repos.User(t, "alice", domain.RoleUser)
	bob := e.repos.User(t, "bob", domain.RoleUser)

	_, err := e.users.GetUser(ctx, alice, bob.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, e.activities(t, domain.EventAccessDenied), 1)

	first := "Alice"
	updated, err := e.users.UpdateUser(ctx, alice, alice.ID, user.UpdateInput{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)

	role := domain.RoleAdmin
	_, err = e.users.UpdateUser(ctx, alice, alice.ID, user.UpdateInput{Role: &role})
	require.ErrorIs(t, err, domain.ErrForbidden)

	promoted, err := e.users.UpdateUser(ctx, admin, alice.ID, user.UpdateInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, promoted.Role)

	_, err = e.users.DeactivateUser(ctx, bob, alice.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = e.users.DeactivateUser(ctx, admin, admin.ID)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_ListUsers_HidesInactiveFromUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.repos.User(t, "root", domain.RoleAdmin)
	alice := e.repos.User(t, "alice", domain.RoleUser)
	bob := e.repos.User(t, "bob", domain.RoleUser)
	_, err := e.users.DeactivateUser(ctx, admin, bob.ID)
	require.NoError(t, err)

	tests := []struct {
		name      string
		principal domain.Principal
		want      int64
	}{
		{name: "user", principal: alice, want: 2},
		{name: "admin", principal: admin, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.users.ListUsers(ctx, tt.principal, user.ResolveQuery(query.Raw{}))
			require.NoError(t, err)
			if res.Meta.Total != tt.want {
				t.Errorf("ListUsers() total = %d, want %d", res.Meta.Total, tt.want)
			}
		})
	}
}
