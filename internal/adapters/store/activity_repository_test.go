package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/testutil"
)

func TestActivityRepository_AppendAndFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))

	e1 := activity.FromEvent(domain.NewEvent(domain.EventTaskCreated, 1, domain.EntityTask, 10, map[string]any{domain.DetailTitle: "Ship"}))
	e2 := activity.FromEvent(domain.NewEvent(domain.EventProjectCreated, 2, domain.EntityProject, 5, nil))
	require.NoError(t, repos.Activity.Append(ctx, e1))
	require.NoError(t, repos.Activity.Append(ctx, e2))
	assert.Positive(t, e1.ID)

	res, err := repos.Activity.FindMany(ctx, activity.ResolveQuery(query.Raw{"entityType": {"task"}}))
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ship", res.Items[0].Details[domain.DetailTitle])

	all, err := repos.Activity.FindMany(ctx, activity.ResolveQuery(query.Raw{}))
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	assert.Equal(t, e2.ID, all.Items[0].ID, "newest first")
}

func TestNotificationRepository_ReadState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))

	for range 3 {
		_, err := repos.Notifications.Create(ctx, &notification.Notification{UserID: 7, Type: domain.EventTaskAssigned, Title: "Assigned"})
		require.NoError(t, err)
	}
	other, err := repos.Notifications.Create(ctx, &notification.Notification{UserID: 8, Type: domain.EventTaskAssigned, Title: "Assigned"})
	require.NoError(t, err)

	unread, err := repos.Notifications.CountUnread(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	require.NoError(t, repos.Notifications.MarkRead(ctx, other.ID))
	n, err := repos.Notifications.MarkAllRead(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	res, err := repos.Notifications.FindMany(ctx, notification.ResolveQuery(7, query.Raw{"unreadOnly": {"true"}}))
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	assert.ErrorIs(t, repos.Notifications.MarkRead(ctx, 999), domain.ErrNotFound)
}
