package task

import (
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// CreateInput carries the fields accepted when creating a task. Empty
// Status and Priority default to todo and medium.
type CreateInput struct {
	Title          string
	Description    string
	Status         Status
	Priority       domain.Priority
	AssigneeID     *int64
	ProjectID      *int64
	ModuleID       *int64
	DueDate        *time.Time
	EstimatedHours *float64
	Tags           []string
}

// UpdateInput carries a partial update. Nil fields are left unchanged; the
// Clear flags unset an optional reference and win over a value given for
// the same field.
type UpdateInput struct {
	Title          *string
	Description    *string
	Status         *Status
	Priority       *domain.Priority
	AssigneeID     *int64
	ProjectID      *int64
	ModuleID       *int64
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string

	ClearAssignee bool
	ClearProject  bool
	ClearModule   bool
	ClearDueDate  bool
}

// New builds a task owned by createdByID from the input.
func New(in CreateInput, createdByID int64, now time.Time) *Task {
	t := &Task{
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		Priority:       in.Priority,
		AssigneeID:     in.AssigneeID,
		ProjectID:      in.ProjectID,
		ModuleID:       in.ModuleID,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		Tags:           NormalizeTags(in.Tags),
		CreatedByID:    createdByID,
	}
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == StatusCompleted {
		ts := now.UTC()
		t.CompletedAt = &ts
	}
	return t
}

// Apply merges the non-nil fields of in into t. A status change goes through
// ApplyStatus so CompletedAt stays consistent.
func (t *Task) Apply(in UpdateInput, now time.Time) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.AssigneeID != nil {
		t.AssigneeID = in.AssigneeID
	}
	if in.ProjectID != nil {
		t.ProjectID = in.ProjectID
	}
	if in.ModuleID != nil {
		t.ModuleID = in.ModuleID
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.EstimatedHours != nil {
		t.EstimatedHours = in.EstimatedHours
	}
	if in.ActualHours != nil {
		t.ActualHours = in.ActualHours
	}
	if in.Tags != nil {
		t.Tags = NormalizeTags(in.Tags)
	}
	if in.Status != nil {
		t.ApplyStatus(*in.Status, now)
	}
	t.clear(in)
}

func (t *Task) clear(in UpdateInput) {
	if in.ClearAssignee {
		t.AssigneeID = nil
	}
	if in.ClearProject {
		t.ProjectID = nil
	}
	if in.ClearModule {
		t.ModuleID = nil
	}
	if in.ClearDueDate {
		t.DueDate = nil
	}
}
