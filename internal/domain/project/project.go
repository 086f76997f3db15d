package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

const maxNameLen = 200

// Project groups tasks under an owner and, optionally, a team.
type Project struct {
	ID          int64
	Name        string
	Description string
	Status      Status
	Priority    domain.Priority
	OwnerID     int64
	TeamID      *int64
	Visibility  Visibility
	StartDate   *time.Time
	TargetDate  *time.Time
	// CompletionPercentage is derived from the project's tasks. Only
	// recomputation writes it.
	CompletionPercentage int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		fields["name"] = domain.MsgRequired
	case len(name) > maxNameLen:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxNameLen)
	}
	if !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}
	if !p.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", p.Priority)
	}
	if !p.Visibility.IsValid() {
		fields["visibility"] = fmt.Sprintf("invalid: %q", p.Visibility)
	}
	if p.TeamID != nil && *p.TeamID <= 0 {
		fields["teamId"] = fmt.Sprintf("must be positive, got %d", *p.TeamID)
	}
	if p.StartDate != nil && p.TargetDate != nil && p.TargetDate.Before(*p.StartDate) {
		fields["targetDate"] = "must not be before startDate"
	}
	if p.CompletionPercentage < 0 || p.CompletionPercentage > 100 {
		fields["completionPercentage"] = fmt.Sprintf("must be 0-100, got %d", p.CompletionPercentage)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsOwner reports whether userID owns the project.
func (p *Project) IsOwner(userID int64) bool {
	return p.OwnerID == userID
}

// CreateInput carries the fields accepted when creating a project. Empty
// enums default to planning, medium and private.
type CreateInput struct {
	Name        string
	Description string
	Status      Status
	Priority    domain.Priority
	TeamID      *int64
	Visibility  Visibility
	StartDate   *time.Time
	TargetDate  *time.Time
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
// CompletionPercentage is deliberately absent.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *Status
	Priority    *domain.Priority
	TeamID      *int64
	Visibility  *Visibility
	StartDate   *time.Time
	TargetDate  *time.Time
}

// New builds a project owned by ownerID from the input.
func New(in CreateInput, ownerID int64) *Project {
	p := &Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		OwnerID:     ownerID,
		TeamID:      in.TeamID,
		Visibility:  in.Visibility,
		StartDate:   in.StartDate,
		TargetDate:  in.TargetDate,
	}
	if p.Status == "" {
		p.Status = StatusPlanning
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	if p.Visibility == "" {
		p.Visibility = VisibilityPrivate
	}
	return p
}

// Apply merges the non-nil fields of in into p.
func (p *Project) Apply(in UpdateInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Priority != nil {
		p.Priority = *in.Priority
	}
	if in.TeamID != nil {
		p.TeamID = in.TeamID
	}
	if in.Visibility != nil {
		p.Visibility = *in.Visibility
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.TargetDate != nil {
		p.TargetDate = in.TargetDate
	}
}
