package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/testutil"
)

func TestTaskRepository_TagsRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	u := repos.User(t, "alice", domain.RoleUser)

	created, err := repos.Tasks.Create(ctx, task.New(task.CreateInput{Title: "Tagged", Tags: []string{"backend", "api"}}, u.ID, time.Now()))
	require.NoError(t, err)

	got, err := repos.Tasks.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "backend"}, got.Tags)

	got.Tags = []string{"frontend"}
	updated, err := repos.Tasks.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, []string{"frontend"}, updated.Tags)
}

func TestTaskRepository_UpdatePersistsCompletedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	u := repos.User(t, "alice", domain.RoleUser)
	tk := repos.Task(t, u.ID, nil, "Finish", task.StatusInProgress)

	tk.ApplyStatus(task.StatusCompleted, time.Now())
	done, err := repos.Tasks.Update(ctx, tk)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	done.ApplyStatus(task.StatusReview, time.Now())
	reopened, err := repos.Tasks.Update(ctx, done)
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
}

func TestTaskRepository_FindManyFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	u := repos.User(t, "alice", domain.RoleUser)
	p := repos.Project(t, u.ID, "Alpha")

	_, err := repos.Tasks.Create(ctx, task.New(task.CreateInput{Title: "Fix login bug", ProjectID: &p.ID, Tags: []string{"bug"}, Priority: domain.PriorityHigh}, u.ID, time.Now()))
	require.NoError(t, err)
	_, err = repos.Tasks.Create(ctx, task.New(task.CreateInput{Title: "Write docs", ProjectID: &p.ID, Tags: []string{"docs"}}, u.ID, time.Now()))
	require.NoError(t, err)
	_, err = repos.Tasks.Create(ctx, task.New(task.CreateInput{Title: "Standalone", Status: task.StatusCompleted}, u.ID, time.Now()))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  query.Raw
		want int64
	}{
		{name: "no filter", raw: query.Raw{}, want: 3},
		{name: "by project", raw: query.Raw{"projectId": {"1"}}, want: 2},
		{name: "by status set", raw: query.Raw{"status": {"completed,review"}}, want: 1},
		{name: "by priority", raw: query.Raw{"priority": {"high"}}, want: 1},
		{name: "tags any of", raw: query.Raw{"tags": {"bug,docs"}}, want: 2},
		{name: "tags ignore case", raw: query.Raw{"tags": {"BUG"}}, want: 1},
		{name: "search title", raw: query.Raw{"search": {"LOGIN"}}, want: 1},
		{name: "invalid enum dropped", raw: query.Raw{"status": {"bogus"}}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := repos.Tasks.FindMany(ctx, task.ResolveQuery(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Meta.Total)
		})
	}
}

func TestTaskRepository_VisibleTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	owner := repos.User(t, "owner", domain.RoleUser)
	other := repos.User(t, "other", domain.RoleUser)
	assignee := repos.User(t, "assignee", domain.RoleUser)
	p := repos.Project(t, owner.ID, "Alpha")

	repos.Task(t, other.ID, &p.ID, "in owner's project", task.StatusTodo)
	repos.Task(t, other.ID, nil, "private to other", task.StatusTodo)
	_, err := repos.Tasks.Create(ctx, task.New(task.CreateInput{Title: "assigned", AssigneeID: &assignee.ID}, other.ID, time.Now()))
	require.NoError(t, err)

	count := func(userID int64) int64 {
		q := task.ResolveQuery(query.Raw{})
		q.VisibleTo = &userID
		res, err := repos.Tasks.FindMany(ctx, q)
		require.NoError(t, err)
		return res.Meta.Total
	}

	assert.Equal(t, int64(1), count(owner.ID))
	assert.Equal(t, int64(3), count(other.ID))
	assert.Equal(t, int64(1), count(assignee.ID))
}

func TestTaskRepository_FindByProjectOrdersByCreation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	u := repos.User(t, "alice", domain.RoleUser)
	p := repos.Project(t, u.ID, "Alpha")

	first := repos.Task(t, u.ID, &p.ID, "first", task.StatusTodo)
	second := repos.Task(t, u.ID, &p.ID, "second", task.StatusTodo)
	repos.Task(t, u.ID, nil, "elsewhere", task.StatusTodo)

	got, err := repos.Tasks.FindByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestTaskRepository_GroupByCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	u := repos.User(t, "alice", domain.RoleUser)
	p := repos.Project(t, u.ID, "Alpha")
	repos.Task(t, u.ID, &p.ID, "a", task.StatusCompleted)
	repos.Task(t, u.ID, &p.ID, "b", task.StatusCompleted)
	repos.Task(t, u.ID, &p.ID, "c", task.StatusInProgress)
	repos.Task(t, u.ID, nil, "d", task.StatusTodo)

	got, err := repos.Tasks.GroupByCount(ctx, task.GroupByStatus, task.Filter{ProjectID: &p.ID})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"completed": 2, "in_progress": 1}, got)
}

func TestTaskRepository_DeleteNotFound(t *testing.T) {
	t.Parallel()
	repos := testutil.NewRepos(testutil.NewDB(t))
	assert.ErrorIs(t, repos.Tasks.Delete(context.Background(), 42), domain.ErrNotFound)
}
