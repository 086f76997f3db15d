package task

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

const (
	maxTitleLen = 200
	maxTagLen   = 64
)

// Task is a unit of work, optionally inside a project.
type Task struct {
	ID             int64
	Title          string
	Description    string
	Status         Status
	Priority       domain.Priority
	AssigneeID     *int64
	ProjectID      *int64
	ModuleID       *int64
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
	CreatedByID    int64
	// CompletedAt is set iff Status is StatusCompleted.
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(t.Title)
	switch {
	case title == "":
		fields["title"] = domain.MsgRequired
	case len(title) > maxTitleLen:
		fields["title"] = fmt.Sprintf("must be at most %d characters", maxTitleLen)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}
	validateRef(fields, "projectId", t.ProjectID)
	validateRef(fields, "assigneeId", t.AssigneeID)
	validateRef(fields, "moduleId", t.ModuleID)
	validateHours(fields, "estimatedHours", t.EstimatedHours)
	validateHours(fields, "actualHours", t.ActualHours)
	for _, tag := range t.Tags {
		if len(tag) > maxTagLen {
			fields["tags"] = fmt.Sprintf("each tag must be at most %d characters", maxTagLen)
			break
		}
	}
	if (t.Status == StatusCompleted) != (t.CompletedAt != nil) {
		fields["completedAt"] = "must be set if and only if status is completed"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplyStatus moves the task to next and maintains CompletedAt: entering
// completed stamps it with now, leaving completed clears it. No other field
// changes. It reports whether the status actually changed.
func (t *Task) ApplyStatus(next Status, now time.Time) bool {
	prev := t.Status
	if prev == next {
		return false
	}
	t.Status = next
	switch {
	case next == StatusCompleted:
		ts := now.UTC()
		t.CompletedAt = &ts
	case prev == StatusCompleted:
		t.CompletedAt = nil
	}
	return true
}

// IsAssignee reports whether userID is the current assignee.
func (t *Task) IsAssignee(userID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// NormalizeTags trims, lowercases, drops empties and duplicates, and sorts
// tags so the stored set is canonical.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

func validateRef(fields map[string]string, name string, id *int64) {
	if id != nil && *id <= 0 {
		fields[name] = fmt.Sprintf("must be positive, got %d", *id)
	}
}

func validateHours(fields map[string]string, name string, h *float64) {
	if h != nil && *h < 0 {
		fields[name] = "must not be negative"
	}
}
