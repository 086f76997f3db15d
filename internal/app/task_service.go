package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/project-tracker/internal/app/context"
	"github.com/jsamuelsen11/project-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// DefaultBulkWorkers bounds the concurrency of BulkUpdateTaskStatus.
const DefaultBulkWorkers = 8

// TaskService implements ports.TaskService.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	authz    *authorizer
	events   ports.EventSink
	logger   *slog.Logger

	now         func() time.Time
	bulkWorkers int
}

// NewTaskService creates a TaskService. Denials are reported to audit and
// state changes to events.
func NewTaskService(
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	teams ports.TeamRepository,
	events ports.EventSink,
	audit ports.SecurityAuditor,
	logger *slog.Logger,
) *TaskService {
	return &TaskService{
		tasks:       tasks,
		projects:    projects,
		users:       users,
		authz:       newAuthorizer(projects, teams, audit),
		events:      events,
		logger:      orDiscard(logger),
		now:         utcNow,
		bulkWorkers: DefaultBulkWorkers,
	}
}

// CreateTask validates the input, checks that the referenced assignee
// exists and that p can see the referenced project, and persists the task
// with the principal as creator.
func (s *TaskService) CreateTask(ctx context.Context, p domain.Principal, in task.CreateInput) (*task.Task, error) {
	t := task.New(in, p.ID, s.now())
	if err := t.Validate(); err != nil {
		return nil, err
	}

	var proj *project.Project
	if t.ProjectID != nil {
		var err error
		if proj, err = s.targetProject(ctx, p, *t.ProjectID); err != nil {
			return nil, err
		}
	}
	if err := s.requireUser(ctx, t.AssigneeID); err != nil {
		return nil, err
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		logFailure(ctx, s.logger, "CreateTask", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}

	details := taskDetails(created)
	if proj != nil {
		details[domain.DetailOwnerID] = proj.OwnerID
	}
	s.events.Record(ctx, domain.NewEvent(domain.EventTaskCreated, p.ID, domain.EntityTask, created.ID, details))
	return created, nil
}

// GetTask returns the task if p may view it.
func (s *TaskService) GetTask(ctx context.Context, p domain.Principal, id int64) (*task.Task, error) {
	return s.load(ctx, p, id, access.ActionView)
}

// ListTasks returns one page of tasks, restricted to the tasks p can view
// unless p is an admin.
func (s *TaskService) ListTasks(ctx context.Context, p domain.Principal, q task.Query) (*query.Result[task.Task], error) {
	if !p.IsAdmin() {
		q.VisibleTo = ptr(p.ID)
	}
	res, err := s.tasks.FindMany(ctx, q)
	if err != nil {
		logFailure(ctx, s.logger, "ListTasks", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}
	return res, nil
}

// UpdateTask applies a partial update. A status change maintains
// CompletedAt; a new assignee must exist and a new project must be visible
// to p.
func (s *TaskService) UpdateTask(ctx context.Context, p domain.Principal, id int64, in task.UpdateInput) (*task.Task, error) {
	t, err := s.load(ctx, p, id, access.ActionEdit)
	if err != nil {
		return nil, err
	}

	if in.ProjectID != nil && !in.ClearProject && !sameID(in.ProjectID, t.ProjectID) {
		if _, err := s.targetProject(ctx, p, *in.ProjectID); err != nil {
			return nil, err
		}
	}
	assigneeChanged := in.AssigneeID != nil && !in.ClearAssignee && !sameID(in.AssigneeID, t.AssigneeID)
	if assigneeChanged {
		if err := s.requireUser(ctx, in.AssigneeID); err != nil {
			return nil, err
		}
	}

	prev := t.Status
	t.Apply(in, s.now())
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		logFailure(ctx, s.logger, "UpdateTask", err, slog.Int64("task_id", id))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTaskUpdated, p.ID, domain.EntityTask, id, taskDetails(updated)))
	if updated.Status != prev {
		s.events.Record(ctx, domain.NewEvent(domain.EventTaskStatusChanged, p.ID, domain.EntityTask, id, statusDetails(updated, prev)))
	}
	if assigneeChanged {
		s.events.Record(ctx, domain.NewEvent(domain.EventTaskAssigned, p.ID, domain.EntityTask, id, taskDetails(updated)))
	}
	return updated, nil
}

// UpdateTaskStatus moves the task to status. Setting the current status is
// a no-op that writes nothing.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, p domain.Principal, id int64, status task.Status) (*task.Task, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}

	t, err := s.load(ctx, p, id, access.ActionEdit)
	if err != nil {
		return nil, err
	}

	prev := t.Status
	if !t.ApplyStatus(status, s.now()) {
		return t, nil
	}

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		logFailure(ctx, s.logger, "UpdateTaskStatus", err, slog.Int64("task_id", id))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTaskStatusChanged, p.ID, domain.EntityTask, id, statusDetails(updated, prev)))
	return updated, nil
}

// AssignTask sets the assignee, who must exist.
func (s *TaskService) AssignTask(ctx context.Context, p domain.Principal, id, assigneeID int64) (*task.Task, error) {
	t, err := s.load(ctx, p, id, access.ActionEdit)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, &assigneeID); err != nil {
		return nil, err
	}

	t.AssigneeID = &assigneeID
	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		logFailure(ctx, s.logger, "AssignTask", err, slog.Int64("task_id", id), slog.Int64("assignee_id", assigneeID))
		return nil, err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTaskAssigned, p.ID, domain.EntityTask, id, taskDetails(updated)))
	return updated, nil
}

// DeleteTask removes the task. Only the creator or an admin may delete.
func (s *TaskService) DeleteTask(ctx context.Context, p domain.Principal, id int64) error {
	t, err := s.load(ctx, p, id, access.ActionAdmin)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "DeleteTask", err, slog.Int64("task_id", id))
		return err
	}

	s.events.Record(ctx, domain.NewEvent(domain.EventTaskDeleted, p.ID, domain.EntityTask, id, taskDetails(t)))
	return nil
}

// BulkUpdateTaskStatus applies each update independently with bounded
// concurrency. Results keep input order; the call itself only fails when
// the context is done before any work starts.
func (s *TaskService) BulkUpdateTaskStatus(ctx context.Context, p domain.Principal, updates []ports.StatusUpdate) (*ports.BulkUpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Share project and membership lookups across items.
	rc := appctx.New(ctx)

	outcomes := fanout.Run(rc, s.bulkWorkers, updates, func(ctx context.Context, u ports.StatusUpdate) (task.Task, error) {
		t, err := s.UpdateTaskStatus(ctx, p, u.TaskID, u.Status)
		if err != nil {
			return task.Task{}, err
		}
		return *t, nil
	})

	updated, failed := fanout.Split(outcomes)
	out := &ports.BulkUpdateResult{Updated: updated, Errors: make([]ports.BulkUpdateError, len(failed))}
	for i, f := range failed {
		out.Errors[i] = ports.BulkUpdateError{TaskID: updates[f.Index].TaskID, Err: f.Err}
	}

	s.logger.InfoContext(ctx, "bulk status update finished",
		slog.Int("requested", len(updates)),
		slog.Int("updated", len(out.Updated)),
		slog.Int("failed", len(out.Errors)),
	)
	return out, nil
}

// targetProject loads the project a task is being placed in. Only projects
// p can view accept new tasks.
func (s *TaskService) targetProject(ctx context.Context, p domain.Principal, id int64) (*project.Project, error) {
	proj, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project %d: %w", id, err)
	}
	if err := s.authz.project(ctx, p, proj, access.ActionView); err != nil {
		return nil, err
	}
	return proj, nil
}

// load fetches the task and authorizes a. Not found wins over forbidden.
func (s *TaskService) load(ctx context.Context, p domain.Principal, id int64, a access.Action) (*task.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, err)
	}
	if err := s.authz.task(ctx, p, t, a); err != nil {
		return nil, err
	}
	return t, nil
}

// requireUser returns domain.ErrNotFound if id is set and no such user
// exists.
func (s *TaskService) requireUser(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := s.users.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("assignee %d: %w", *id, domain.ErrNotFound)
	}
	return nil
}

func taskDetails(t *task.Task) map[string]any {
	d := map[string]any{
		domain.DetailTitle:       t.Title,
		domain.DetailCreatedByID: t.CreatedByID,
		domain.DetailToStatus:    t.Status.String(),
	}
	if t.AssigneeID != nil {
		d[domain.DetailAssigneeID] = *t.AssigneeID
	}
	if t.ProjectID != nil {
		d[domain.DetailProjectID] = *t.ProjectID
	}
	return d
}

func statusDetails(t *task.Task, prev task.Status) map[string]any {
	d := taskDetails(t)
	d[domain.DetailFromStatus] = prev.String()
	return d
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
