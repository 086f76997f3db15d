package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/app"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/testutil"
)

type recordingNotifier struct {
	mu     sync.Mutex
	pushed []notification.Notification
}

func (r *recordingNotifier) Push(_ context.Context, n *notification.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pushed = append(r.pushed, *n)
}

func TestDispatcher_Record(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		event      func(actor, other int64) domain.Event
		wantNotify bool
	}{
		{
			name: "assignment notifies assignee",
			event: func(actor, other int64) domain.Event {
				return domain.NewEvent(domain.EventTaskAssigned, actor, domain.EntityTask, 1, map[string]any{
					domain.DetailTitle: "T", domain.DetailAssigneeID: other,
				})
			},
			wantNotify: true,
		},
		{
			name: "self assignment is silent",
			event: func(actor, _ int64) domain.Event {
				return domain.NewEvent(domain.EventTaskAssigned, actor, domain.EntityTask, 1, map[string]any{
					domain.DetailTitle: "T", domain.DetailAssigneeID: actor,
				})
			},
		},
		{
			name: "status change notifies creator",
			event: func(actor, other int64) domain.Event {
				return domain.NewEvent(domain.EventTaskStatusChanged, actor, domain.EntityTask, 1, map[string]any{
					domain.DetailTitle: "T", domain.DetailCreatedByID: other,
					domain.DetailFromStatus: "todo", domain.DetailToStatus: "review",
				})
			},
			wantNotify: true,
		},
		{
			name: "member added after JSON round trip",
			event: func(actor, other int64) domain.Event {
				return domain.NewEvent(domain.EventTeamMemberAdded, actor, domain.EntityTeam, 1, map[string]any{
					domain.DetailName: "Core", domain.DetailUserID: float64(other),
				})
			},
			wantNotify: true,
		},
		{
			name: "project update notifies nobody",
			event: func(actor, _ int64) domain.Event {
				return domain.NewEvent(domain.EventProjectUpdated, actor, domain.EntityProject, 1, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			repos := testutil.NewRepos(testutil.NewDB(t))
			actor := repos.User(t, "actor", domain.RoleUser)
			other := repos.User(t, "other", domain.RoleUser)
			notifier := &recordingNotifier{}
			hook := &fakeWebhook{}
			d := app.NewDispatcher(repos.Activity, repos.Notifications, notifier, hook, nil, testutil.DiscardLogger())

			e := tt.event(actor.ID, other.ID)
			d.Record(ctx, e)
			d.Close()

			unread, err := repos.Notifications.CountUnread(ctx, other.ID)
			require.NoError(t, err)
			want := int64(0)
			if tt.wantNotify {
				want = 1
			}
			if unread != want {
				t.Errorf("unread for other = %d, want %d", unread, want)
			}
			assert.Len(t, notifier.pushed, int(want))
			assert.Equal(t, []domain.EventType{e.Type}, hook.types())
		})
	}
}

func TestDispatcher_WebhookFailureDoesNotPropagate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	actor := repos.User(t, "actor", domain.RoleUser)
	hook := &fakeWebhook{err: errors.New("receiver down")}
	d := app.NewDispatcher(repos.Activity, repos.Notifications, nil, hook, nil, testutil.DiscardLogger())

	d.Record(ctx, domain.NewEvent(domain.EventProjectCreated, actor.ID, domain.EntityProject, 7, nil))
	d.Close()

	assert.Len(t, hook.types(), 1)
	e := &env{repos: repos}
	assert.Len(t, e.activities(t, domain.EventProjectCreated), 1)
}

func TestDispatcher_LogSecurityEvent(t *testing.T) {
	t.Parallel()
	repos := testutil.NewRepos(testutil.NewDB(t))
	mallory := repos.User(t, "mallory", domain.RoleUser)
	d := app.NewDispatcher(repos.Activity, repos.Notifications, nil, nil, nil, nil)

	d.LogSecurityEvent(context.Background(), "project.admin", mallory.ID, 11)

	e := &env{repos: repos}
	entries := e.activities(t, domain.EventAccessDenied)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntityProject, entries[0].EntityType)
	assert.Equal(t, int64(11), entries[0].EntityID)
	assert.Equal(t, mallory.ID, entries[0].ActorID)
	assert.Equal(t, "admin", entries[0].Details[domain.DetailAction])
}
