package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	"github.com/jsamuelsen11/project-tracker/mocks"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.MockUserService) {
	t.Helper()
	svc := mocks.NewMockUserService(t)
	return handlers.NewUserHandler(svc), svc
}

func validUser() user.User {
	return user.User{
		ID:           alice.ID,
		Username:     alice.Username,
		Email:        alice.Email,
		Role:         domain.RoleUser,
		IsActive:     true,
		PasswordHash: "$2a$10$secret",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     any
		svcErr   error
		callSvc  bool
		wantCode int
	}{
		{
			name:     "created",
			body:     map[string]string{"username": "alice", "email": "alice@example.com", "password": "correct horse"},
			callSvc:  true,
			wantCode: http.StatusCreated,
		},
		{name: "missing password", body: map[string]string{"username": "alice", "email": "a@example.com"}, wantCode: http.StatusBadRequest},
		{
			name:     "username taken",
			body:     map[string]string{"username": "alice", "email": "alice@example.com", "password": "correct horse"},
			svcErr:   fmt.Errorf("username alice: %w", domain.ErrConflict),
			callSvc:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newUserHandler(t)
			if tt.callSvc {
				if tt.svcErr != nil {
					svc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.svcErr)
				} else {
					u := validUser()
					svc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in user.RegisterInput) bool {
						return in.Username == "alice" && in.Password == "correct horse"
					})).Return(&u, nil)
				}
			}

			rec := httptest.NewRecorder()
			h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/auth/register", tt.body, nil, nil))

			requireStatus(t, rec, tt.wantCode)
		})
	}
}

func TestRegister_NeverExposesHash(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)
	u := validUser()
	svc.EXPECT().Register(mock.Anything, mock.Anything).Return(&u, nil)

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"username": "alice", "email": "alice@example.com", "password": "correct horse"}, nil, nil))

	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("by email", func(t *testing.T) {
		t.Parallel()
		h, svc := newUserHandler(t)
		u := validUser()
		svc.EXPECT().Login(mock.Anything, "alice@example.com", "pw").
			Return(&ports.AuthResult{Token: "jwt", ExpiresAt: testTime, User: &u}, nil)

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"email": " alice@example.com ", "password": "pw"}, nil, nil))

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[envelope[dto.AuthResponse]](t, rec)
		assert.Equal(t, "jwt", resp.Data.Token)
		assert.Equal(t, "alice", resp.Data.User.Username)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()
		h, svc := newUserHandler(t)
		svc.EXPECT().Login(mock.Anything, "alice", "wrong").
			Return(nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized))

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"username": "alice", "password": "wrong"}, nil, nil))

		requireStatus(t, rec, http.StatusUnauthorized)
		requireErrorCode(t, rec, domain.CodeUnauthorized)
	})

	t.Run("no identifier", func(t *testing.T) {
		t.Parallel()
		h, _ := newUserHandler(t)

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"password": "pw"}, nil, nil))

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestMe(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	h.Me(rec, newRequest(t, http.MethodGet, "/api/v1/auth/me", nil, &admin, nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[dto.PrincipalResponse]](t, rec)
	assert.Equal(t, admin.ID, resp.Data.ID)
	assert.Equal(t, "admin", resp.Data.Role)
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	q := user.ResolveQuery(query.Raw{"search": {"ali"}})
	svc.EXPECT().ListUsers(mock.Anything, admin, q).Return(query.NewResult([]user.User{validUser()}, q.Page, 1), nil)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, newRequest(t, http.MethodGet, "/api/v1/users?search=ali", nil, &admin, nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[[]dto.UserResponse]](t, rec)
	require.Len(t, resp.Data, 1)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("role change forbidden", func(t *testing.T) {
		t.Parallel()
		h, svc := newUserHandler(t)
		svc.EXPECT().UpdateUser(mock.Anything, alice, alice.ID, mock.MatchedBy(func(in user.UpdateInput) bool {
			return in.Role != nil && *in.Role == domain.RoleAdmin
		})).Return(nil, fmt.Errorf("user 1: edit denied: %w", domain.ErrForbidden))

		rec := httptest.NewRecorder()
		h.UpdateUser(rec, newRequest(t, http.MethodPatch, "/api/v1/users/1",
			map[string]string{"role": "admin"}, &alice, map[string]string{"id": "1"}))

		requireStatus(t, rec, http.StatusForbidden)
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		h, _ := newUserHandler(t)

		rec := httptest.NewRecorder()
		h.UpdateUser(rec, newRequest(t, http.MethodPatch, "/api/v1/users/1",
			map[string]string{"role": "superuser"}, &alice, map[string]string{"id": "1"}))

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestDeactivateUser(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	u := validUser()
	u.IsActive = false
	svc.EXPECT().DeactivateUser(mock.Anything, admin, alice.ID).Return(&u, nil)

	rec := httptest.NewRecorder()
	h.DeactivateUser(rec, newRequest(t, http.MethodDelete, "/api/v1/users/1", nil, &admin, map[string]string{"id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[dto.UserResponse]](t, rec)
	assert.False(t, resp.Data.IsActive)
}
