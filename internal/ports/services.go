package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/kanban"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
)

// TaskService defines the service port for task operations.
// Every method loads the task before authorizing, so a missing task is
// domain.ErrNotFound even for principals who could not see it.
type TaskService interface {
	// CreateTask creates a task owned by the principal.
	// Returns domain.ErrNotFound if the referenced project or assignee does
	// not exist, and domain.ErrValidation if the task fails validation.
	CreateTask(ctx context.Context, p domain.Principal, in task.CreateInput) (*task.Task, error)

	// GetTask requires view access.
	GetTask(ctx context.Context, p domain.Principal, id int64) (*task.Task, error)

	// ListTasks returns the page of tasks matching q. Non-admin results are
	// restricted to tasks the principal can view.
	ListTasks(ctx context.Context, p domain.Principal, q task.Query) (*query.Result[task.Task], error)

	// UpdateTask requires edit access. A status change maintains completedAt.
	UpdateTask(ctx context.Context, p domain.Principal, id int64, in task.UpdateInput) (*task.Task, error)

	// UpdateTaskStatus requires edit access and maintains completedAt.
	UpdateTaskStatus(ctx context.Context, p domain.Principal, id int64, status task.Status) (*task.Task, error)

	// AssignTask requires edit access. Returns domain.ErrNotFound if the
	// assignee does not exist.
	AssignTask(ctx context.Context, p domain.Principal, id, assigneeID int64) (*task.Task, error)

	// DeleteTask requires admin access (creator or admin).
	DeleteTask(ctx context.Context, p domain.Principal, id int64) error

	// BulkUpdateTaskStatus applies status changes concurrently with partial
	// success semantics: each update succeeds or fails independently.
	BulkUpdateTaskStatus(ctx context.Context, p domain.Principal, updates []StatusUpdate) (*BulkUpdateResult, error)
}

// StatusUpdate pairs a task ID with its new status for bulk operations.
type StatusUpdate struct {
	TaskID int64
	Status task.Status
}

// BulkUpdateError records a single failed task update within a bulk operation.
type BulkUpdateError struct {
	TaskID int64
	Err    error
}

// BulkUpdateResult holds the outcomes of a bulk update operation.
// Updated contains successfully updated tasks; Errors contains per-item failures.
type BulkUpdateResult struct {
	Updated []task.Task
	Errors  []BulkUpdateError
}

// ProjectService defines the service port for project operations.
type ProjectService interface {
	// CreateProject creates a project owned by the principal. If a team is
	// given it must exist (domain.ErrNotFound) and the principal must be a
	// member (domain.ErrForbidden).
	CreateProject(ctx context.Context, p domain.Principal, in project.CreateInput) (*project.Project, error)

	// GetProject requires view access.
	GetProject(ctx context.Context, p domain.Principal, id int64) (*project.Project, error)

	// ListProjects returns the page of projects matching q. Non-admin
	// results are restricted to projects the principal can view.
	ListProjects(ctx context.Context, p domain.Principal, q project.Query) (*query.Result[project.Project], error)

	// UpdateProject requires edit access. Moving the project to another team
	// requires membership of that team.
	UpdateProject(ctx context.Context, p domain.Principal, id int64, in project.UpdateInput) (*project.Project, error)

	// DeleteProject requires admin access (owner or admin).
	DeleteProject(ctx context.Context, p domain.Principal, id int64) error

	// UpdateProjectCompletion requires edit access and recomputes the
	// completion percentage from the current task set.
	UpdateProjectCompletion(ctx context.Context, p domain.Principal, id int64) (*project.Project, error)

	// GetKanbanBoard requires view access.
	GetKanbanBoard(ctx context.Context, p domain.Principal, id int64) (*kanban.Board, error)

	// GetProjectStats requires view access.
	GetProjectStats(ctx context.Context, p domain.Principal, id int64) (*ProjectStats, error)
}

// ProjectStats summarizes a project's tasks.
type ProjectStats struct {
	ProjectID            int64
	TotalTasks           int64
	ByStatus             map[task.Status]int64
	ByPriority           map[domain.Priority]int64
	CompletionPercentage int
}

// TeamService defines the service port for team operations.
type TeamService interface {
	// CreateTeam creates a team led by the principal, who also becomes its
	// first member.
	CreateTeam(ctx context.Context, p domain.Principal, in team.CreateInput) (*team.Team, error)

	// GetTeam requires membership or admin.
	GetTeam(ctx context.Context, p domain.Principal, id int64) (*team.Team, error)

	// ListTeams lists the principal's teams, or every team for admins.
	ListTeams(ctx context.Context, p domain.Principal, q team.Query) (*query.Result[team.Team], error)

	// AddMember requires the team leader or admin. Returns domain.ErrConflict
	// for a duplicate membership.
	AddMember(ctx context.Context, p domain.Principal, teamID, userID int64, role team.MemberRole) (*team.Membership, error)

	// RemoveMember requires the team leader or admin. The leader cannot be
	// removed (domain.ErrValidation).
	RemoveMember(ctx context.Context, p domain.Principal, teamID, userID int64) error

	// ListMembers requires membership or admin.
	ListMembers(ctx context.Context, p domain.Principal, teamID int64) ([]team.Membership, error)
}

// UserService defines the service port for accounts and authentication.
type UserService interface {
	Authenticator

	// Register creates an active user with role user. Returns
	// domain.ErrConflict if the username or email is taken.
	Register(ctx context.Context, in user.RegisterInput) (*user.User, error)

	// Login verifies credentials and issues a token. Unknown users, wrong
	// passwords and inactive accounts all return domain.ErrUnauthorized.
	Login(ctx context.Context, login, password string) (*AuthResult, error)

	// GetUser requires self or admin.
	GetUser(ctx context.Context, p domain.Principal, id int64) (*user.User, error)

	// ListUsers lists every user for admins; other principals only see
	// active users.
	ListUsers(ctx context.Context, p domain.Principal, q user.Query) (*query.Result[user.User], error)

	// UpdateUser requires self or admin; role and active-flag changes are
	// admin-only.
	UpdateUser(ctx context.Context, p domain.Principal, id int64, in user.UpdateInput) (*user.User, error)

	// DeactivateUser is admin-only and soft-deletes the account.
	DeactivateUser(ctx context.Context, p domain.Principal, id int64) (*user.User, error)
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// NotificationService defines the service port for a user's notifications.
type NotificationService interface {
	ListNotifications(ctx context.Context, p domain.Principal, q notification.Query) (*query.Result[notification.Notification], error)

	// MarkNotificationRead is restricted to the notification's recipient.
	MarkNotificationRead(ctx context.Context, p domain.Principal, id int64) (*notification.Notification, error)

	// MarkAllRead returns the number of notifications marked.
	MarkAllRead(ctx context.Context, p domain.Principal) (int64, error)

	UnreadCount(ctx context.Context, p domain.Principal) (int64, error)
}

// AdminService defines the admin-only diagnostics port.
type AdminService interface {
	GetSystemStats(ctx context.Context, p domain.Principal) (*SystemStats, error)
	ListActivity(ctx context.Context, p domain.Principal, q activity.Query) (*query.Result[activity.Entry], error)
}

// SystemStats is a point-in-time summary of the whole system.
type SystemStats struct {
	Users            int64
	Teams            int64
	Projects         int64
	Tasks            int64
	TasksByStatus    map[string]int64
	ProjectsByStatus map[string]int64
	// Health maps checker names to "ok" or the failure message.
	Health      map[string]string
	GeneratedAt time.Time
}
