package user

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      User
		wantField string
	}{
		{name: "valid", user: User{Username: "ada", Email: "ada@example.com", Role: domain.RoleUser}},
		{name: "short username", user: User{Username: "ab", Email: "ab@example.com", Role: domain.RoleUser}, wantField: "username"},
		{name: "spaces in username", user: User{Username: "a b c", Email: "x@example.com", Role: domain.RoleUser}, wantField: "username"},
		{name: "bad email", user: User{Username: "ada", Email: "not-an-email", Role: domain.RoleUser}, wantField: "email"},
		{name: "bad role", user: User{Username: "ada", Email: "ada@example.com", Role: "root"}, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.user.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestRegisterInput_Validate(t *testing.T) {
	t.Parallel()

	err := RegisterInput{Username: "ada", Email: "ada@example.com", Password: "short"}.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	assert.Equal(t, "password", verr.Field())

	assert.NoError(t, RegisterInput{Username: "ada", Email: "ada@example.com", Password: "long enough"}.Validate())
}

func TestUpdateInput_PrivilegedChange(t *testing.T) {
	t.Parallel()

	name := "Ada"
	role := domain.RoleAdmin
	active := false

	assert.False(t, UpdateInput{FirstName: &name}.PrivilegedChange())
	assert.True(t, UpdateInput{Role: &role}.PrivilegedChange())
	assert.True(t, UpdateInput{IsActive: &active}.PrivilegedChange())
}

func TestUser_Principal(t *testing.T) {
	t.Parallel()

	u := User{ID: 4, Username: "ada", Email: "ada@example.com", Role: domain.RoleAdmin, IsActive: true}
	p := u.Principal()

	assert.Equal(t, int64(4), p.ID)
	assert.True(t, p.IsAdmin())
	assert.True(t, p.IsActive)
}

func TestResolveQuery(t *testing.T) {
	t.Parallel()

	q := ResolveQuery(query.Raw{"role": {"viewer"}, "isActive": {"false"}, "sortBy": {"username"}})

	if assert.NotNil(t, q.Filter.Role) {
		assert.Equal(t, domain.RoleViewer, *q.Filter.Role)
	}
	if assert.NotNil(t, q.Filter.IsActive) {
		assert.False(t, *q.Filter.IsActive)
	}
	assert.Equal(t, "username", q.Sort.By)

	assert.Nil(t, ResolveQuery(query.Raw{"role": {"root"}}).Filter.Role)
}
