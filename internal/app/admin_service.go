package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that AdminService implements ports.AdminService.
var _ ports.AdminService = (*AdminService)(nil)

// AdminService implements ports.AdminService.
type AdminService struct {
	users      ports.UserRepository
	teams      ports.TeamRepository
	projects   ports.ProjectRepository
	tasks      ports.TaskRepository
	activities ports.ActivityRepository
	health     ports.HealthRegistry
	authz      *authorizer
	logger     *slog.Logger
	now        func() time.Time
}

// NewAdminService creates an AdminService. registry may be nil, in which
// case the stats report no component health.
func NewAdminService(
	users ports.UserRepository,
	teams ports.TeamRepository,
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	activities ports.ActivityRepository,
	registry ports.HealthRegistry,
	audit ports.SecurityAuditor,
	logger *slog.Logger,
) *AdminService {
	return &AdminService{
		users:      users,
		teams:      teams,
		projects:   projects,
		tasks:      tasks,
		activities: activities,
		health:     registry,
		authz:      newAuthorizer(nil, nil, audit),
		logger:     orDiscard(logger),
		now:        utcNow,
	}
}

// GetSystemStats summarizes entity counts and component health.
func (s *AdminService) GetSystemStats(ctx context.Context, p domain.Principal) (*ports.SystemStats, error) {
	if err := s.requireAdmin(ctx, p); err != nil {
		return nil, err
	}

	stats := &ports.SystemStats{
		TasksByStatus:    make(map[string]int64, len(task.Statuses)),
		ProjectsByStatus: make(map[string]int64, len(project.Statuses)),
		Health:           map[string]string{},
		GeneratedAt:      s.now(),
	}

	var err error
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, s.fail(ctx, err)
	}
	if stats.Teams, err = s.teams.Count(ctx); err != nil {
		return nil, s.fail(ctx, err)
	}
	if stats.Projects, err = s.projects.Count(ctx, project.Filter{}); err != nil {
		return nil, s.fail(ctx, err)
	}
	if stats.Tasks, err = s.tasks.Count(ctx, task.Filter{}); err != nil {
		return nil, s.fail(ctx, err)
	}

	taskCounts, err := s.tasks.GroupByCount(ctx, task.GroupByStatus, task.Filter{})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	for _, st := range task.Statuses {
		stats.TasksByStatus[st.String()] = taskCounts[st.String()]
	}

	projectCounts, err := s.projects.GroupByCount(ctx, project.GroupByStatus, project.Filter{})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	for _, st := range project.Statuses {
		stats.ProjectsByStatus[st.String()] = projectCounts[st.String()]
	}

	if s.health != nil {
		stats.Health = s.health.CheckAll(ctx).Summary()
	}
	return stats, nil
}

// ListActivity returns the activity log, newest first.
func (s *AdminService) ListActivity(ctx context.Context, p domain.Principal, q activity.Query) (*query.Result[activity.Entry], error) {
	if err := s.requireAdmin(ctx, p); err != nil {
		return nil, err
	}
	res, err := s.activities.FindMany(ctx, q)
	if err != nil {
		logFailure(ctx, s.logger, "ListActivity", err)
		return nil, err
	}
	return res, nil
}

func (s *AdminService) requireAdmin(ctx context.Context, p domain.Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return s.authz.deny(ctx, domain.EntityUser, access.ActionAdmin, p, p.ID)
}

func (s *AdminService) fail(ctx context.Context, err error) error {
	logFailure(ctx, s.logger, "GetSystemStats", err)
	return err
}
