// Package testutil provides an in-memory database and fixture builders for
// repository and service tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/store"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewDB opens a migrated in-memory SQLite database that is closed when the
// test ends. Each call returns an independent database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := store.Open(&config.DatabaseConfig{Path: ":memory:", LogLevel: "silent"}, DiscardLogger())
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(db) })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// Repos bundles every repository over one database.
type Repos struct {
	Users         *store.UserRepository
	Teams         *store.TeamRepository
	Projects      *store.ProjectRepository
	Tasks         *store.TaskRepository
	Activity      *store.ActivityRepository
	Notifications *store.NotificationRepository
}

// NewRepos builds every repository over db.
func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		Users:         store.NewUserRepository(db),
		Teams:         store.NewTeamRepository(db),
		Projects:      store.NewProjectRepository(db),
		Tasks:         store.NewTaskRepository(db),
		Activity:      store.NewActivityRepository(db),
		Notifications: store.NewNotificationRepository(db),
	}
}

// User inserts an active user with the given role.
func (r *Repos) User(t *testing.T, username string, role domain.Role) domain.Principal {
	t.Helper()

	u, err := r.Users.Create(context.Background(), &user.User{
		Username:     username,
		Email:        username + "@example.com",
		Role:         role,
		IsActive:     true,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return u.Principal()
}

// Project inserts a project owned by ownerID.
func (r *Repos) Project(t *testing.T, ownerID int64, name string) *project.Project {
	t.Helper()

	p, err := r.Projects.Create(context.Background(), project.New(project.CreateInput{Name: name}, ownerID))
	if err != nil {
		t.Fatalf("creating project %q: %v", name, err)
	}
	return p
}

// Task inserts a task in projectID created by createdByID with the given
// status.
func (r *Repos) Task(t *testing.T, createdByID int64, projectID *int64, title string, status task.Status) *task.Task {
	t.Helper()

	tk := task.New(task.CreateInput{Title: title, ProjectID: projectID, Status: status}, createdByID, testNow())
	created, err := r.Tasks.Create(context.Background(), tk)
	if err != nil {
		t.Fatalf("creating task %q: %v", title, err)
	}
	return created
}

func testNow() time.Time {
	return time.Now().UTC()
}
