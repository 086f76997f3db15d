package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/kanban"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService.
type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	teams    ports.TeamRepository
	authz    *authorizer
	events   ports.EventSink
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	teams ports.TeamRepository,
	events ports.EventSink,
	audit ports.SecurityAuditor,
	logger *slog.Logger,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		tasks:    tasks,
		teams:    teams,
		authz:    newAuthorizer(projects, teams, audit),
		events:   events,
		logger:   orDiscard(logger),
	}
}

// CreateProject persists a project owned by p. A team, if given, must exist
// and p must belong to it.
func (s *ProjectService) CreateProject(ctx context.Context, p domain.Principal, in project.CreateInput) (*project.Project, error) {
	proj := project.New(in, p.ID)
	if err := proj.Validate(); err != nil {
		return nil, err
	}
	if proj.TeamID != nil {
		if err := s.requireTeamMember(ctx, p, *proj.TeamID); err != nil {
			return nil, err
		}
	}

	created, err := s.projects.Create(ctx, proj)
	if err != nil {
		logFailure(ctx, s.logger, "CreateProject", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventProjectCreated, p.ID, domain.EntityProject, created.ID, projectDetails(created)))
	return created, nil
}

// GetProject returns the project if p may view it.
func (s *ProjectService) GetProject(ctx context.Context, p domain.Principal, id int64) (*project.Project, error) {
	return s.load(ctx, p, id, access.ActionView)
}

// ListProjects returns one page of projects, restricted to those p can
// view unless p is an admin.
func (s *ProjectService) ListProjects(ctx context.Context, p domain.Principal, q project.Query) (*query.Result[project.Project], error) {
	if !p.IsAdmin() {
		q.VisibleTo = ptr(p.ID)
	}
	res, err := s.projects.FindMany(ctx, q)
	if err != nil {
		logFailure(ctx, s.logger, "ListProjects", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}
	return res, nil
}

// UpdateProject applies a partial update. Moving the project to another
// team requires membership of that team.
func (s *ProjectService) UpdateProject(ctx context.Context, p domain.Principal, id int64, in project.UpdateInput) (*project.Project, error) {
	proj, err := s.load(ctx, p, id, access.ActionEdit)
	if err != nil {
		return nil, err
	}
	if in.TeamID != nil && !sameID(in.TeamID, proj.TeamID) {
		if err := s.requireTeamMember(ctx, p, *in.TeamID); err != nil {
			return nil, err
		}
	}

	proj.Apply(in)
	if err := proj.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.projects.Update(ctx, proj)
	if err != nil {
		logFailure(ctx, s.logger, "UpdateProject", err, slog.Int64("project_id", id))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventProjectUpdated, p.ID, domain.EntityProject, id, projectDetails(updated)))
	return updated, nil
}

// DeleteProject removes the project and its tasks. Only the owner or an
// admin may delete.
func (s *ProjectService) DeleteProject(ctx context.Context, p domain.Principal, id int64) error {
	proj, err := s.load(ctx, p, id, access.ActionAdmin)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "DeleteProject", err, slog.Int64("project_id", id))
		return err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventProjectDeleted, p.ID, domain.EntityProject, id, projectDetails(proj)))
	return nil
}

// UpdateProjectCompletion recomputes the completion percentage from the
// current task set. Recomputing twice with no task changes yields the same
// value.
func (s *ProjectService) UpdateProjectCompletion(ctx context.Context, p domain.Principal, id int64) (*project.Project, error) {
	proj, err := s.load(ctx, p, id, access.ActionEdit)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.tasks.GroupByCount(ctx, task.GroupByStatus, task.Filter{ProjectID: &id})
	if err != nil {
		logFailure(ctx, s.logger, "UpdateProjectCompletion", err, slog.Int64("project_id", id))
		return nil, err
	}

	pct := completionFromCounts(byStatus)
	if pct == proj.CompletionPercentage {
		return proj, nil
	}

	if err := s.projects.SetCompletion(ctx, id, pct); err != nil {
		logFailure(ctx, s.logger, "UpdateProjectCompletion", err, slog.Int64("project_id", id))
		return nil, err
	}

	prev := proj.CompletionPercentage
	proj.CompletionPercentage = pct
	s.events.Record(ctx, domain.NewEvent(domain.EventProjectCompletion, p.ID, domain.EntityProject, id, map[string]any{
		domain.DetailName: proj.Name,
		"from":            prev,
		"to":              pct,
	}))
	return proj, nil
}

// GetKanbanBoard returns the project's tasks in the five workflow columns.
func (s *ProjectService) GetKanbanBoard(ctx context.Context, p domain.Principal, id int64) (*kanban.Board, error) {
	proj, err := s.load(ctx, p, id, access.ActionView)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.FindByProject(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "GetKanbanBoard", err, slog.Int64("project_id", id))
		return nil, err
	}

	board := kanban.Assemble(*proj, tasks)
	return &board, nil
}

// GetProjectStats counts the project's tasks by status and by priority.
// Every status and priority appears, with zero counts where empty.
func (s *ProjectService) GetProjectStats(ctx context.Context, p domain.Principal, id int64) (*ports.ProjectStats, error) {
	if _, err := s.load(ctx, p, id, access.ActionView); err != nil {
		return nil, err
	}

	f := task.Filter{ProjectID: &id}
	byStatus, err := s.tasks.GroupByCount(ctx, task.GroupByStatus, f)
	if err != nil {
		logFailure(ctx, s.logger, "GetProjectStats", err, slog.Int64("project_id", id))
		return nil, err
	}
	byPriority, err := s.tasks.GroupByCount(ctx, task.GroupByPriority, f)
	if err != nil {
		logFailure(ctx, s.logger, "GetProjectStats", err, slog.Int64("project_id", id))
		return nil, err
	}

	stats := &ports.ProjectStats{
		ProjectID:            id,
		ByStatus:             make(map[task.Status]int64, len(task.Statuses)),
		ByPriority:           make(map[domain.Priority]int64, len(domain.Priorities)),
		CompletionPercentage: completionFromCounts(byStatus),
	}
	for _, st := range task.Statuses {
		stats.ByStatus[st] = byStatus[st.String()]
		stats.TotalTasks += byStatus[st.String()]
	}
	for _, pr := range domain.Priorities {
		stats.ByPriority[pr] = byPriority[pr.String()]
	}
	return stats, nil
}

// load fetches the project and authorizes a. Not found wins over
// forbidden.
func (s *ProjectService) load(ctx context.Context, p domain.Principal, id int64, a access.Action) (*project.Project, error) {
	proj, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", id, err)
	}
	if err := s.authz.project(ctx, p, proj, a); err != nil {
		return nil, err
	}
	return proj, nil
}

// requireTeamMember checks that the team exists and p belongs to it.
// Admins only need the team to exist.
func (s *ProjectService) requireTeamMember(ctx context.Context, p domain.Principal, teamID int64) error {
	ok, err := s.teams.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("team %d: %w", teamID, domain.ErrNotFound)
	}
	if p.IsAdmin() {
		return nil
	}
	member, err := s.authz.isMember(ctx, teamID, p.ID)
	if err != nil {
		return err
	}
	if !member {
		return s.authz.deny(ctx, domain.EntityTeam, access.ActionView, p, teamID)
	}
	return nil
}

// completionFromCounts applies the completion rule to per-status counts.
// Cancelled tasks count toward the total.
func completionFromCounts(byStatus map[string]int64) int {
	var total int64
	for _, n := range byStatus {
		total += n
	}
	return project.CompletionPercentage(byStatus[task.StatusCompleted.String()], total)
}

func projectDetails(p *project.Project) map[string]any {
	d := map[string]any{
		domain.DetailName:    p.Name,
		domain.DetailOwnerID: p.OwnerID,
		"status":             p.Status.String(),
	}
	if p.TeamID != nil {
		d[domain.DetailTeamID] = *p.TeamID
	}
	return d
}
