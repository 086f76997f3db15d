// Package kanban groups a project's tasks into the fixed board columns.
package kanban

import (
	"slices"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

var columnTitles = map[task.Status]string{
	task.StatusTodo:       "To Do",
	task.StatusInProgress: "In Progress",
	task.StatusReview:     "Review",
	task.StatusCompleted:  "Completed",
	task.StatusCancelled:  "Cancelled",
}

// Column holds the tasks currently in one status.
type Column struct {
	ID    task.Status
	Title string
	Tasks []task.Task
}

// Board is a project's tasks partitioned by status.
type Board struct {
	Project    project.Project
	Columns    []Column
	TotalTasks int
}

// Assemble builds the board for p. There are always five columns in
// workflow order. Tasks from other projects are skipped. Within a column
// tasks are ordered by CreatedAt ascending, then ID.
func Assemble(p project.Project, tasks []task.Task) Board {
	byStatus := make(map[task.Status][]task.Task, len(task.Statuses))
	for _, t := range tasks {
		if t.ProjectID == nil || *t.ProjectID != p.ID {
			continue
		}
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	board := Board{Project: p, Columns: make([]Column, 0, len(task.Statuses))}
	for _, status := range task.Statuses {
		col := byStatus[status]
		if col == nil {
			col = []task.Task{}
		}
		slices.SortStableFunc(col, compareCreated)
		board.Columns = append(board.Columns, Column{ID: status, Title: columnTitles[status], Tasks: col})
		board.TotalTasks += len(col)
	}
	return board
}

func compareCreated(a, b task.Task) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}
