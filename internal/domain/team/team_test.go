package team

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

func TestTeam_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		team      Team
		wantField string
	}{
		{name: "valid", team: Team{Name: "Platform", LeaderID: 1}},
		{name: "blank name", team: Team{Name: " ", LeaderID: 1}, wantField: "name"},
		{name: "missing leader", team: Team{Name: "Platform"}, wantField: "leaderId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.team.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestMembership_Validate(t *testing.T) {
	t.Parallel()

	if err := (&Membership{TeamID: 1, UserID: 2, Role: MemberMember}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (&Membership{TeamID: 1, UserID: 2, Role: "owner"}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate() error = %v, want ErrValidation", err)
	}
}

func TestResolveQuery(t *testing.T) {
	t.Parallel()

	q := ResolveQuery(query.Raw{"search": {"plat"}, "sortBy": {"name"}, "sortOrder": {"asc"}})
	if q.Search != "plat" || q.Sort.By != "name" || q.Sort.Order != query.OrderAsc {
		t.Errorf("ResolveQuery() = %+v", q)
	}
	if q.MemberID != nil {
		t.Errorf("MemberID = %v, want nil", q.MemberID)
	}
}
