// Package team holds teams and their memberships.
package team

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

const maxNameLen = 100

// Team groups users and owns zero or more projects.
type Team struct {
	ID          int64
	Name        string
	Description string
	LeaderID    int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Team entity.
func (t *Team) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(t.Name)
	switch {
	case name == "":
		fields["name"] = domain.MsgRequired
	case len(name) > maxNameLen:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxNameLen)
	}
	if t.LeaderID <= 0 {
		fields["leaderId"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MemberRole is a user's role within one team.
type MemberRole string

const (
	MemberLeader MemberRole = "leader"
	MemberMember MemberRole = "member"
	MemberViewer MemberRole = "viewer"
)

// IsValid returns true if the role is one of the defined constants.
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberLeader, MemberMember, MemberViewer:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r MemberRole) String() string {
	return string(r)
}

// Membership links a user to a team. (TeamID, UserID) is unique.
type Membership struct {
	TeamID   int64
	UserID   int64
	Role     MemberRole
	JoinedAt time.Time
}

// Validate checks business rules for a Membership.
func (m *Membership) Validate() error {
	fields := make(map[string]string)
	if m.TeamID <= 0 {
		fields["teamId"] = domain.MsgRequired
	}
	if m.UserID <= 0 {
		fields["userId"] = domain.MsgRequired
	}
	if !m.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", m.Role)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateInput carries the fields accepted when creating a team.
type CreateInput struct {
	Name        string
	Description string
}

// SortFields are the accepted sortBy keys and their storage columns.
var SortFields = query.SortFields{
	"createdAt": "created_at",
	"name":      "name",
}

// Query is a normalized team listing request.
type Query struct {
	// MemberID restricts results to teams the user belongs to. Nil means
	// unrestricted.
	MemberID *int64
	Search   string
	Page     query.Page
	Sort     query.Sort
}

// ResolveQuery normalizes raw list options.
func ResolveQuery(raw query.Raw) Query {
	q := Query{
		Page: query.ResolvePage(raw),
		Sort: query.ResolveSort(raw, SortFields, "createdAt"),
	}
	if s, ok := raw.First("search"); ok {
		q.Search = s
	}
	return q
}
