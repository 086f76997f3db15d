package kanban

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

var base = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func tk(id, projectID int64, status task.Status, offset time.Duration) task.Task {
	return task.Task{ID: id, ProjectID: int64Ptr(projectID), Status: status, CreatedAt: base.Add(offset)}
}

func TestAssemble_AlphaScenario(t *testing.T) {
	t.Parallel()

	alpha := project.Project{ID: 1, Name: "Alpha", OwnerID: 1}
	tasks := []task.Task{
		tk(1, 1, task.StatusCompleted, 0),
		tk(2, 1, task.StatusCompleted, time.Minute),
		tk(3, 1, task.StatusInProgress, 2*time.Minute),
		tk(4, 1, task.StatusCancelled, 3*time.Minute),
	}

	board := Assemble(alpha, tasks)

	require.Len(t, board.Columns, 5)
	wantOrder := []task.Status{task.StatusTodo, task.StatusInProgress, task.StatusReview, task.StatusCompleted, task.StatusCancelled}
	wantCounts := []int{0, 1, 0, 2, 1}
	for i, col := range board.Columns {
		assert.Equal(t, wantOrder[i], col.ID)
		assert.Len(t, col.Tasks, wantCounts[i], "column %s", col.ID)
		assert.NotNil(t, col.Tasks)
	}
	assert.Equal(t, 4, board.TotalTasks)
	assert.Equal(t, "Alpha", board.Project.Name)
}

func TestAssemble_SkipsOtherProjectsAndUngrouped(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		tk(1, 1, task.StatusTodo, 0),
		tk(2, 2, task.StatusTodo, 0),
		{ID: 3, Status: task.StatusTodo},
	}

	board := Assemble(project.Project{ID: 1}, tasks)

	assert.Equal(t, 1, board.TotalTasks)
	assert.Equal(t, int64(1), board.Columns[0].Tasks[0].ID)
}

func TestAssemble_OrdersByCreatedAtThenID(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		tk(9, 1, task.StatusTodo, time.Hour),
		tk(5, 1, task.StatusTodo, 0),
		tk(2, 1, task.StatusTodo, 0),
	}

	board := Assemble(project.Project{ID: 1}, tasks)

	var ids []int64
	for _, got := range board.Columns[0].Tasks {
		ids = append(ids, got.ID)
	}
	assert.Equal(t, []int64{2, 5, 9}, ids)
}

func TestAssemble_PartitionsEveryTaskOnce(t *testing.T) {
	t.Parallel()

	var tasks []task.Task
	for i := int64(1); i <= 40; i++ {
		status := task.Statuses[int(i)%len(task.Statuses)]
		tasks = append(tasks, tk(i, 7, status, time.Duration(40-i)*time.Second))
	}

	board := Assemble(project.Project{ID: 7}, tasks)

	seen := make(map[int64]int)
	for _, col := range board.Columns {
		for _, got := range col.Tasks {
			assert.Equal(t, col.ID, got.Status)
			seen[got.ID]++
		}
	}
	assert.Len(t, seen, len(tasks))
	for id, n := range seen {
		assert.Equal(t, 1, n, "task %d placed %d times", id, n)
	}
	assert.Equal(t, len(tasks), board.TotalTasks)

	again := Assemble(project.Project{ID: 7}, tasks)
	assert.Equal(t, board, again)
}
