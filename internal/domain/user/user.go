// Package user holds the User entity and its listing query.
package user

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,50}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const minPasswordLen = 8

// User is a registered account. Users are deactivated, never hard-deleted.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Role         domain.Role
	IsActive     bool
	PasswordHash string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks business rules for the User entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if !usernamePattern.MatchString(u.Username) {
		fields["username"] = "must be 3-50 characters of letters, digits, '.', '_' or '-'"
	}
	if !emailPattern.MatchString(u.Email) {
		fields["email"] = domain.MsgInvalid
	}
	if !u.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", u.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Principal returns the authenticated view of the user.
func (u *User) Principal() domain.Principal {
	return domain.Principal{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Validate checks the registration input, including the plaintext password
// which never reaches the User entity.
func (in RegisterInput) Validate() error {
	u := User{Username: strings.TrimSpace(in.Username), Email: strings.TrimSpace(in.Email), Role: domain.RoleUser}
	fields := make(map[string]string)
	var verr *domain.ValidationError
	if errors.As(u.Validate(), &verr) {
		maps.Copy(fields, verr.Fields)
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = fmt.Sprintf("must be at least %d characters", minPasswordLen)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateInput carries a partial update. Role and IsActive are admin-only.
type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *domain.Role
	IsActive  *bool
}

// PrivilegedChange reports whether the update touches admin-only fields.
func (in UpdateInput) PrivilegedChange() bool {
	return in.Role != nil || in.IsActive != nil
}

// Apply merges the non-nil fields of in into u.
func (u *User) Apply(in UpdateInput) {
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
}

// SortFields are the accepted sortBy keys and their storage columns.
var SortFields = query.SortFields{
	"createdAt": "created_at",
	"username":  "username",
	"email":     "email",
	"role":      "role",
}

// Filter narrows a user listing.
type Filter struct {
	Role     *domain.Role
	IsActive *bool
	Search   string
}

// Query is a normalized user listing request.
type Query struct {
	Filter Filter
	Page   query.Page
	Sort   query.Sort
}

// ResolveQuery normalizes raw list options.
func ResolveQuery(raw query.Raw) Query {
	q := Query{
		Filter: Filter{IsActive: raw.Bool("isActive")},
		Page:   query.ResolvePage(raw),
		Sort:   query.ResolveSort(raw, SortFields, "createdAt"),
	}
	if v, ok := raw.First("role"); ok {
		if r := domain.Role(v); r.IsValid() {
			q.Filter.Role = &r
		}
	}
	if s, ok := raw.First("search"); ok {
		q.Filter.Search = s
	}
	return q
}
