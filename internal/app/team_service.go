package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	appctx "github.com/jsamuelsen11/project-tracker/internal/app/context"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that TeamService implements ports.TeamService.
var _ ports.TeamService = (*TeamService)(nil)

// TeamService implements ports.TeamService.
type TeamService struct {
	teams  ports.TeamRepository
	users  ports.UserRepository
	authz  *authorizer
	events ports.EventSink
	logger *slog.Logger
}

// NewTeamService creates a TeamService.
func NewTeamService(
	teams ports.TeamRepository,
	users ports.UserRepository,
	projects ports.ProjectRepository,
	events ports.EventSink,
	audit ports.SecurityAuditor,
	logger *slog.Logger,
) *TeamService {
	return &TeamService{
		teams:  teams,
		users:  users,
		authz:  newAuthorizer(projects, teams, audit),
		events: events,
		logger: orDiscard(logger),
	}
}

// CreateTeam creates the team and the leader membership as one unit: if
// the membership cannot be written the team is removed again.
func (s *TeamService) CreateTeam(ctx context.Context, p domain.Principal, in team.CreateInput) (*team.Team, error) {
	t := &team.Team{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		LeaderID:    p.ID,
		IsActive:    true,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	rc := appctx.New(ctx)
	var created *team.Team

	createTeam := appctx.ActionFunc(fmt.Sprintf("create team %q", t.Name),
		func(ctx context.Context) error {
			var err error
			created, err = s.teams.Create(ctx, t)
			return err
		},
		func(ctx context.Context) error {
			return s.teams.Delete(ctx, created.ID)
		},
	)
	addLeader := appctx.ActionFunc("add team leader",
		func(ctx context.Context) error {
			_, err := s.teams.AddMember(ctx, &team.Membership{TeamID: created.ID, UserID: p.ID, Role: team.MemberLeader})
			return err
		},
		nil,
	)

	if err := rc.Stage("team:new", t, createTeam); err != nil {
		return nil, err
	}
	if err := rc.AddAction(addLeader); err != nil {
		return nil, err
	}
	if err := rc.Commit(rc); err != nil {
		logFailure(ctx, s.logger, "CreateTeam", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTeamCreated, p.ID, domain.EntityTeam, created.ID, map[string]any{
		domain.DetailName: created.Name,
	}))
	return created, nil
}

// GetTeam returns the team if p belongs to it or is an admin.
func (s *TeamService) GetTeam(ctx context.Context, p domain.Principal, id int64) (*team.Team, error) {
	t, err := s.teams.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("team %d: %w", id, err)
	}
	if err := s.requireView(ctx, p, id); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTeams lists the teams p belongs to, or every team for admins.
func (s *TeamService) ListTeams(ctx context.Context, p domain.Principal, q team.Query) (*query.Result[team.Team], error) {
	if !p.IsAdmin() {
		q.MemberID = ptr(p.ID)
	}
	res, err := s.teams.FindMany(ctx, q)
	if err != nil {
		logFailure(ctx, s.logger, "ListTeams", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}
	return res, nil
}

// AddMember adds userID to the team. Only the leader or an admin may
// manage membership.
func (s *TeamService) AddMember(ctx context.Context, p domain.Principal, teamID, userID int64, role team.MemberRole) (*team.Membership, error) {
	t, err := s.loadManaged(ctx, p, teamID)
	if err != nil {
		return nil, err
	}
	if role == team.MemberLeader {
		return nil, domain.NewValidationError("role", "a team has exactly one leader")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}

	m := &team.Membership{TeamID: teamID, UserID: userID, Role: role}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	added, err := s.teams.AddMember(ctx, m)
	if err != nil {
		logFailure(ctx, s.logger, "AddMember", err, slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTeamMemberAdded, p.ID, domain.EntityTeam, teamID, map[string]any{
		domain.DetailName:   t.Name,
		domain.DetailUserID: userID,
		domain.DetailRole:   role.String(),
	}))
	return added, nil
}

// RemoveMember removes userID from the team. The leader cannot be removed.
func (s *TeamService) RemoveMember(ctx context.Context, p domain.Principal, teamID, userID int64) error {
	t, err := s.loadManaged(ctx, p, teamID)
	if err != nil {
		return err
	}
	if userID == t.LeaderID {
		return domain.NewValidationError("userId", "the team leader cannot be removed")
	}

	if err := s.teams.RemoveMember(ctx, teamID, userID); err != nil {
		logFailure(ctx, s.logger, "RemoveMember", err, slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
		return err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTeamMemberRemoved, p.ID, domain.EntityTeam, teamID, map[string]any{
		domain.DetailName:   t.Name,
		domain.DetailUserID: userID,
	}))
	return nil
}

// ListMembers returns the team's memberships if p may view the team.
func (s *TeamService) ListMembers(ctx context.Context, p domain.Principal, teamID int64) ([]team.Membership, error) {
	if _, err := s.GetTeam(ctx, p, teamID); err != nil {
		return nil, err
	}
	members, err := s.teams.ListMembers(ctx, teamID)
	if err != nil {
		logFailure(ctx, s.logger, "ListMembers", err, slog.Int64("team_id", teamID))
		return nil, err
	}
	return members, nil
}

func (s *TeamService) requireView(ctx context.Context, p domain.Principal, teamID int64) error {
	if p.IsAdmin() {
		return nil
	}
	member, err := s.authz.isMember(ctx, teamID, p.ID)
	if err != nil {
		return err
	}
	var m *team.Membership
	if member {
		m = &team.Membership{TeamID: teamID, UserID: p.ID}
	}
	if !access.CanViewTeam(p, m) {
		return s.authz.deny(ctx, domain.EntityTeam, access.ActionView, p, teamID)
	}
	return nil
}

func (s *TeamService) loadManaged(ctx context.Context, p domain.Principal, teamID int64) (*team.Team, error) {
	t, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("team %d: %w", teamID, err)
	}
	if !access.CanManageTeam(p, t) {
		return nil, s.authz.deny(ctx, domain.EntityTeam, access.ActionAdmin, p, teamID)
	}
	return t, nil
}
