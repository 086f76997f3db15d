package ports

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
)

// UserRepository persists users. Implemented by the store adapter.
type UserRepository interface {
	// FindByID returns domain.ErrNotFound if the user does not exist.
	FindByID(ctx context.Context, id int64) (*user.User, error)

	// FindByLogin looks a user up by username or email.
	// Returns domain.ErrNotFound if neither matches.
	FindByLogin(ctx context.Context, login string) (*user.User, error)

	// FindByUsername returns domain.ErrNotFound if no user has the username.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	FindMany(ctx context.Context, q user.Query) (*query.Result[user.User], error)

	// Create returns domain.ErrConflict if the username or email is taken.
	Create(ctx context.Context, u *user.User) (*user.User, error)

	// Update returns domain.ErrNotFound if the user does not exist and
	// domain.ErrConflict if the new email is taken.
	Update(ctx context.Context, u *user.User) (*user.User, error)

	Exists(ctx context.Context, id int64) (bool, error)

	Count(ctx context.Context) (int64, error)
}

// TeamRepository persists teams and memberships.
type TeamRepository interface {
	// FindByID returns domain.ErrNotFound if the team does not exist.
	FindByID(ctx context.Context, id int64) (*team.Team, error)

	FindMany(ctx context.Context, q team.Query) (*query.Result[team.Team], error)

	Create(ctx context.Context, t *team.Team) (*team.Team, error)

	// Delete removes the team and its memberships.
	// Returns domain.ErrNotFound if the team does not exist.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)

	Count(ctx context.Context) (int64, error)

	// AddMember returns domain.ErrConflict if the user is already a member.
	AddMember(ctx context.Context, m *team.Membership) (*team.Membership, error)

	// RemoveMember returns domain.ErrNotFound if the user is not a member.
	RemoveMember(ctx context.Context, teamID, userID int64) error

	// FindMembership returns domain.ErrNotFound if the user is not a member.
	FindMembership(ctx context.Context, teamID, userID int64) (*team.Membership, error)

	ListMembers(ctx context.Context, teamID int64) ([]team.Membership, error)
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	// FindByID returns domain.ErrNotFound if the project does not exist.
	FindByID(ctx context.Context, id int64) (*project.Project, error)

	FindMany(ctx context.Context, q project.Query) (*query.Result[project.Project], error)

	Create(ctx context.Context, p *project.Project) (*project.Project, error)

	// Update returns domain.ErrNotFound if the project does not exist.
	Update(ctx context.Context, p *project.Project) (*project.Project, error)

	// SetCompletion writes only the derived completion percentage.
	SetCompletion(ctx context.Context, id int64, pct int) error

	// Delete returns domain.ErrNotFound if the project does not exist.
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context, f project.Filter) (int64, error)

	// GroupByCount counts matching projects per distinct value of field.
	GroupByCount(ctx context.Context, field project.GroupField, f project.Filter) (map[string]int64, error)
}

// TaskRepository persists tasks and their tags.
type TaskRepository interface {
	// FindByID returns domain.ErrNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*task.Task, error)

	FindMany(ctx context.Context, q task.Query) (*query.Result[task.Task], error)

	// FindByProject returns every task in the project ordered by creation
	// time ascending, then id.
	FindByProject(ctx context.Context, projectID int64) ([]task.Task, error)

	Create(ctx context.Context, t *task.Task) (*task.Task, error)

	// Update returns domain.ErrNotFound if the task does not exist.
	Update(ctx context.Context, t *task.Task) (*task.Task, error)

	// Delete returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context, f task.Filter) (int64, error)

	// GroupByCount counts matching tasks per distinct value of field.
	GroupByCount(ctx context.Context, field task.GroupField, f task.Filter) (map[string]int64, error)
}

// ActivityRepository appends to and reads the activity log.
type ActivityRepository interface {
	Append(ctx context.Context, e *activity.Entry) error
	FindMany(ctx context.Context, q activity.Query) (*query.Result[activity.Entry], error)
}

// NotificationRepository persists per-user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error)

	// FindByID returns domain.ErrNotFound if the notification does not exist.
	FindByID(ctx context.Context, id int64) (*notification.Notification, error)

	FindMany(ctx context.Context, q notification.Query) (*query.Result[notification.Notification], error)

	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead marks every unread notification of the user and returns
	// how many changed.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)

	CountUnread(ctx context.Context, userID int64) (int64, error)
}
