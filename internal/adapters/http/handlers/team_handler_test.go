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
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/mocks"
)

func newTeamHandler(t *testing.T) (*handlers.TeamHandler, *mocks.MockTeamService) {
	t.Helper()
	svc := mocks.NewMockTeamService(t)
	return handlers.NewTeamHandler(svc), svc
}

func validTeam() team.Team {
	return team.Team{ID: 3, Name: "Platform", LeaderID: alice.ID, IsActive: true, CreatedAt: testTime, UpdatedAt: testTime}
}

func TestListTeams_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTeamHandler(t)

	q := team.ResolveQuery(query.Raw{})
	svc.EXPECT().ListTeams(mock.Anything, alice, q).Return(query.NewResult([]team.Team{validTeam()}, q.Page, 1), nil)

	rec := httptest.NewRecorder()
	h.ListTeams(rec, newRequest(t, http.MethodGet, "/api/v1/teams", nil, &alice, nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[[]dto.TeamResponse]](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, alice.ID, resp.Data[0].LeaderID)
}

func TestCreateTeam(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		h, svc := newTeamHandler(t)
		tm := validTeam()
		svc.EXPECT().CreateTeam(mock.Anything, alice, team.CreateInput{Name: "Platform", Description: "infra"}).Return(&tm, nil)

		rec := httptest.NewRecorder()
		h.CreateTeam(rec, newRequest(t, http.MethodPost, "/api/v1/teams",
			map[string]string{"name": " Platform ", "description": "infra"}, &alice, nil))

		requireStatus(t, rec, http.StatusCreated)
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		h, _ := newTeamHandler(t)

		rec := httptest.NewRecorder()
		h.CreateTeam(rec, newRequest(t, http.MethodPost, "/api/v1/teams", map[string]string{}, &alice, nil))

		requireStatus(t, rec, http.StatusBadRequest)
		resp := decodeJSON[envelope[any]](t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "name", resp.Error.Field)
	})
}

func TestAddMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     any
		wantRole team.MemberRole
		svcErr   error
		callSvc  bool
		wantCode int
	}{
		{name: "default role", body: map[string]any{"userId": 2}, wantRole: team.MemberMember, callSvc: true, wantCode: http.StatusCreated},
		{name: "viewer", body: map[string]any{"userId": 2, "role": "viewer"}, wantRole: team.MemberViewer, callSvc: true, wantCode: http.StatusCreated},
		{name: "leader rejected", body: map[string]any{"userId": 2, "role": "leader"}, wantCode: http.StatusBadRequest},
		{name: "missing user id", body: map[string]any{"role": "member"}, wantCode: http.StatusBadRequest},
		{
			name:     "already a member",
			body:     map[string]any{"userId": 2},
			wantRole: team.MemberMember,
			svcErr:   fmt.Errorf("user 2 in team 3: %w", domain.ErrConflict),
			callSvc:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTeamHandler(t)
			if tt.callSvc {
				m := team.Membership{TeamID: 3, UserID: 2, Role: tt.wantRole, JoinedAt: testTime}
				if tt.svcErr != nil {
					svc.EXPECT().AddMember(mock.Anything, alice, int64(3), int64(2), tt.wantRole).Return(nil, tt.svcErr)
				} else {
					svc.EXPECT().AddMember(mock.Anything, alice, int64(3), int64(2), tt.wantRole).Return(&m, nil)
				}
			}

			rec := httptest.NewRecorder()
			h.AddMember(rec, newRequest(t, http.MethodPost, "/api/v1/teams/3/members", tt.body, &alice, map[string]string{"id": "3"}))

			requireStatus(t, rec, tt.wantCode)
		})
	}
}

func TestRemoveMember(t *testing.T) {
	t.Parallel()

	t.Run("removed", func(t *testing.T) {
		t.Parallel()
		h, svc := newTeamHandler(t)
		svc.EXPECT().RemoveMember(mock.Anything, alice, int64(3), int64(2)).Return(nil)

		rec := httptest.NewRecorder()
		h.RemoveMember(rec, newRequest(t, http.MethodDelete, "/api/v1/teams/3/members/2", nil, &alice,
			map[string]string{"id": "3", "userId": "2"}))

		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("invalid user id", func(t *testing.T) {
		t.Parallel()
		h, _ := newTeamHandler(t)

		rec := httptest.NewRecorder()
		h.RemoveMember(rec, newRequest(t, http.MethodDelete, "/api/v1/teams/3/members/x", nil, &alice,
			map[string]string{"id": "3", "userId": "x"}))

		requireStatus(t, rec, http.StatusBadRequest)
		requireErrorCode(t, rec, domain.CodeValidation)
	})
}

func TestListMembers(t *testing.T) {
	t.Parallel()
	h, svc := newTeamHandler(t)
	svc.EXPECT().ListMembers(mock.Anything, alice, int64(3)).Return([]team.Membership{
		{TeamID: 3, UserID: alice.ID, Role: team.MemberLeader, JoinedAt: testTime},
	}, nil)

	rec := httptest.NewRecorder()
	h.ListMembers(rec, newRequest(t, http.MethodGet, "/api/v1/teams/3/members", nil, &alice, map[string]string{"id": "3"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[[]dto.MembershipResponse]](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "leader", resp.Data[0].Role)
}
