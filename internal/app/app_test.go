package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/auth"
	"github.com/jsamuelsen11/project-tracker/internal/app"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/health"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	"github.com/jsamuelsen11/project-tracker/internal/testutil"
)

// env wires every service over one in-memory database.
type env struct {
	repos      *testutil.Repos
	dispatcher *app.Dispatcher
	webhook    *fakeWebhook

	tasks         *app.TaskService
	projects      *app.ProjectService
	teams         *app.TeamService
	users         *app.UserService
	notifications *app.NotificationService
	admin         *app.AdminService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	repos := testutil.NewRepos(testutil.NewDB(t))
	return newEnvWith(t, repos, repos.Teams)
}

func newEnvWith(t *testing.T, repos *testutil.Repos, teams ports.TeamRepository) *env {
	t.Helper()

	logger := testutil.DiscardLogger()
	hook := &fakeWebhook{}
	d := app.NewDispatcher(repos.Activity, repos.Notifications, nil, hook, nil, logger)
	t.Cleanup(d.Close)

	registry := health.New()
	tokens := auth.NewJWTService(&config.AuthConfig{
		JWTSecret: "test-secret-with-enough-entropy-000",
		Issuer:    "project-tracker",
		Audience:  "project-tracker-api",
		TokenTTL:  time.Hour,
	})

	return &env{
		repos:         repos,
		dispatcher:    d,
		webhook:       hook,
		tasks:         app.NewTaskService(repos.Tasks, repos.Projects, repos.Users, teams, d, d, logger),
		projects:      app.NewProjectService(repos.Projects, repos.Tasks, teams, d, d, logger),
		teams:         app.NewTeamService(teams, repos.Users, repos.Projects, d, d, logger),
		users:         app.NewUserService(repos.Users, auth.NewBcryptHasher(bcrypt.MinCost), tokens, d, d, logger),
		notifications: app.NewNotificationService(repos.Notifications, d, logger),
		admin:         app.NewAdminService(repos.Users, teams, repos.Projects, repos.Tasks, repos.Activity, registry, d, logger),
	}
}

// activities returns every activity entry of the given type.
func (e *env) activities(t *testing.T, typ domain.EventType) []activity.Entry {
	t.Helper()

	res, err := e.repos.Activity.FindMany(context.Background(), activity.Query{
		Filter: activity.Filter{EventType: &typ},
		Page:   query.Page{Page: 1, Limit: query.MaxLimit},
	})
	if err != nil {
		t.Fatalf("listing activity: %v", err)
	}
	return res.Items
}

// fakeWebhook records published events.
type fakeWebhook struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (f *fakeWebhook) Publish(_ context.Context, e domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return f.err
}

func (f *fakeWebhook) types() []domain.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.EventType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

func int64Ptr(v int64) *int64 {
	return &v
}
