package dto

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

const (
	msgMustNotEmpty = "must not be empty"
	msgInvalidDate  = "must be an RFC 3339 timestamp or YYYY-MM-DD date"

	// MaxBulkUpdates bounds the number of items in one bulk status request.
	MaxBulkUpdates = 100
)

type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) > 0 {
		return &domain.ValidationError{Fields: f}
	}
	return nil
}

func (f fieldErrors) required(name, v string) {
	if strings.TrimSpace(v) == "" {
		f[name] = domain.MsgRequired
	}
}

func (f fieldErrors) notEmpty(name string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		f[name] = msgMustNotEmpty
	}
}

func (f fieldErrors) enum(name string, v string, valid bool) {
	if v != "" && !valid {
		f[name] = fmt.Sprintf("invalid: %q", v)
	}
}

func (f fieldErrors) date(name string, v *string) {
	if v == nil {
		return
	}
	if _, ok := parseDate(*v); !ok {
		f[name] = msgInvalidDate
	}
}

// parseDate accepts RFC 3339 timestamps and bare dates, normalized to UTC.
func parseDate(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func toDate(v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, ok := parseDate(*v)
	if !ok {
		return nil
	}
	return &t
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate checks that required fields are present.
func (r *RegisterRequest) Validate() error {
	f := fieldErrors{}
	f.required("username", r.Username)
	f.required("email", r.Email)
	f.required("password", r.Password)
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *RegisterRequest) ToInput() user.RegisterInput {
	return user.RegisterInput{
		Username:  strings.TrimSpace(r.Username),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// LoginRequest is the body of POST /auth/login. Either username or email
// identifies the account.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that an identifier and password are present.
func (r *LoginRequest) Validate() error {
	f := fieldErrors{}
	if strings.TrimSpace(r.Username) == "" && strings.TrimSpace(r.Email) == "" {
		f["username"] = "username or email is required"
	}
	f.required("password", r.Password)
	return f.err()
}

// Login returns whichever identifier was supplied, preferring username.
func (r *LoginRequest) Login() string {
	if s := strings.TrimSpace(r.Username); s != "" {
		return s
	}
	return strings.TrimSpace(r.Email)
}

// UpdateUserRequest is the body of PATCH /users/{id}.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// Validate checks provided fields.
func (r *UpdateUserRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("email", r.Email)
	if r.Role != nil {
		f.enum("role", *r.Role, domain.Role(*r.Role).IsValid())
		if *r.Role == "" {
			f["role"] = msgMustNotEmpty
		}
	}
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *UpdateUserRequest) ToInput() user.UpdateInput {
	in := user.UpdateInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsActive:  r.IsActive,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		in.Role = &role
	}
	return in
}

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
func (r *CreateTeamRequest) Validate() error {
	f := fieldErrors{}
	f.required("name", r.Name)
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *CreateTeamRequest) ToInput() team.CreateInput {
	return team.CreateInput{Name: strings.TrimSpace(r.Name), Description: r.Description}
}

// AddMemberRequest is the body of POST /teams/{id}/members.
type AddMemberRequest struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role,omitempty"`
}

// Validate checks the user reference and optional role.
func (r *AddMemberRequest) Validate() error {
	f := fieldErrors{}
	if r.UserID <= 0 {
		f["userId"] = domain.MsgRequired
	}
	f.enum("role", r.Role, team.MemberRole(r.Role).IsValid())
	if r.Role == string(team.MemberLeader) {
		f["role"] = "a team has exactly one leader"
	}
	return f.err()
}

// MemberRole returns the requested role, defaulting to member.
func (r *AddMemberRequest) MemberRole() team.MemberRole {
	if r.Role == "" {
		return team.MemberMember
	}
	return team.MemberRole(r.Role)
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	TeamID      *int64  `json:"teamId,omitempty"`
	Visibility  string  `json:"visibility,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}

// Validate checks required fields, enum values and date formats.
func (r *CreateProjectRequest) Validate() error {
	f := fieldErrors{}
	f.required("name", r.Name)
	f.enum("status", r.Status, project.Status(r.Status).IsValid())
	f.enum("priority", r.Priority, domain.Priority(r.Priority).IsValid())
	f.enum("visibility", r.Visibility, project.Visibility(r.Visibility).IsValid())
	f.date("startDate", r.StartDate)
	f.date("targetDate", r.TargetDate)
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *CreateProjectRequest) ToInput() project.CreateInput {
	return project.CreateInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Status:      project.Status(r.Status),
		Priority:    domain.Priority(r.Priority),
		TeamID:      r.TeamID,
		Visibility:  project.Visibility(r.Visibility),
		StartDate:   toDate(r.StartDate),
		TargetDate:  toDate(r.TargetDate),
	}
}

// UpdateProjectRequest is the body of PATCH /projects/{id}. Nil means
// unchanged. completionPercentage is derived and cannot be set.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	TeamID      *int64  `json:"teamId,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}

// Validate checks provided fields.
func (r *UpdateProjectRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("name", r.Name)
	if r.Status != nil {
		f.enum("status", *r.Status, project.Status(*r.Status).IsValid())
	}
	if r.Priority != nil {
		f.enum("priority", *r.Priority, domain.Priority(*r.Priority).IsValid())
	}
	if r.Visibility != nil {
		f.enum("visibility", *r.Visibility, project.Visibility(*r.Visibility).IsValid())
	}
	f.date("startDate", r.StartDate)
	f.date("targetDate", r.TargetDate)
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *UpdateProjectRequest) ToInput() project.UpdateInput {
	in := project.UpdateInput{
		Name:        r.Name,
		Description: r.Description,
		TeamID:      r.TeamID,
		StartDate:   toDate(r.StartDate),
		TargetDate:  toDate(r.TargetDate),
	}
	if r.Status != nil {
		s := project.Status(*r.Status)
		in.Status = &s
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Visibility != nil {
		v := project.Visibility(*r.Visibility)
		in.Visibility = &v
	}
	return in
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	AssigneeID     *int64   `json:"assigneeId,omitempty"`
	ProjectID      *int64   `json:"projectId,omitempty"`
	ModuleID       *int64   `json:"moduleId,omitempty"`
	DueDate        *string  `json:"dueDate,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// Validate checks required fields, enum values and date formats.
func (r *CreateTaskRequest) Validate() error {
	f := fieldErrors{}
	f.required("title", r.Title)
	f.enum("status", r.Status, task.Status(r.Status).IsValid())
	f.enum("priority", r.Priority, domain.Priority(r.Priority).IsValid())
	f.date("dueDate", r.DueDate)
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *CreateTaskRequest) ToInput() task.CreateInput {
	return task.CreateInput{
		Title:          strings.TrimSpace(r.Title),
		Description:    r.Description,
		Status:         task.Status(r.Status),
		Priority:       domain.Priority(r.Priority),
		AssigneeID:     r.AssigneeID,
		ProjectID:      r.ProjectID,
		ModuleID:       r.ModuleID,
		DueDate:        toDate(r.DueDate),
		EstimatedHours: r.EstimatedHours,
		Tags:           r.Tags,
	}
}

// Fields an UpdateTaskRequest can unset through "clear".
const (
	clearAssignee = "assigneeId"
	clearProject  = "projectId"
	clearModule   = "moduleId"
	clearDueDate  = "dueDate"
)

// UpdateTaskRequest is the body of PATCH /tasks/{id}. Nil means unchanged;
// Clear names optional fields to unset, e.g. {"clear":["assigneeId"]}.
type UpdateTaskRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	AssigneeID     *int64   `json:"assigneeId,omitempty"`
	ProjectID      *int64   `json:"projectId,omitempty"`
	ModuleID       *int64   `json:"moduleId,omitempty"`
	DueDate        *string  `json:"dueDate,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	ActualHours    *float64 `json:"actualHours,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Clear          []string `json:"clear,omitempty"`
}

// Validate checks provided fields.
func (r *UpdateTaskRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("title", r.Title)
	given := map[string]bool{
		clearAssignee: r.AssigneeID != nil,
		clearProject:  r.ProjectID != nil,
		clearModule:   r.ModuleID != nil,
		clearDueDate:  r.DueDate != nil,
	}
	for _, name := range r.Clear {
		set, known := given[name]
		switch {
		case !known:
			f["clear"] = fmt.Sprintf("unknown field %q", name)
		case set:
			f[name] = "cannot be set and cleared together"
		}
	}
	if r.Status != nil {
		f.enum("status", *r.Status, task.Status(*r.Status).IsValid())
		if *r.Status == "" {
			f["status"] = msgMustNotEmpty
		}
	}
	if r.Priority != nil {
		f.enum("priority", *r.Priority, domain.Priority(*r.Priority).IsValid())
	}
	f.date("dueDate", r.DueDate)
	return f.err()
}

// ToInput converts the request to its domain input.
func (r *UpdateTaskRequest) ToInput() task.UpdateInput {
	in := task.UpdateInput{
		Title:          r.Title,
		Description:    r.Description,
		AssigneeID:     r.AssigneeID,
		ProjectID:      r.ProjectID,
		ModuleID:       r.ModuleID,
		DueDate:        toDate(r.DueDate),
		EstimatedHours: r.EstimatedHours,
		ActualHours:    r.ActualHours,
		Tags:           r.Tags,
		ClearAssignee:  slices.Contains(r.Clear, clearAssignee),
		ClearProject:   slices.Contains(r.Clear, clearProject),
		ClearModule:    slices.Contains(r.Clear, clearModule),
		ClearDueDate:   slices.Contains(r.Clear, clearDueDate),
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		in.Status = &s
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// UpdateTaskStatusRequest is the body of PATCH /tasks/{id}/status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that status is a known value.
func (r *UpdateTaskStatusRequest) Validate() error {
	f := fieldErrors{}
	f.required("status", r.Status)
	f.enum("status", r.Status, task.Status(r.Status).IsValid())
	return f.err()
}

// AssignTaskRequest is the body of PATCH /tasks/{id}/assign.
type AssignTaskRequest struct {
	AssigneeID int64 `json:"assigneeId"`
}

// Validate checks the assignee reference.
func (r *AssignTaskRequest) Validate() error {
	if r.AssigneeID <= 0 {
		return domain.NewValidationError("assigneeId", domain.MsgRequired)
	}
	return nil
}

// BulkStatusItem is one entry of a bulk status update.
type BulkStatusItem struct {
	TaskID int64  `json:"taskId"`
	Status string `json:"status"`
}

// BulkStatusRequest is the body of PATCH /tasks/bulk-status.
type BulkStatusRequest struct {
	Updates []BulkStatusItem `json:"updates"`
}

// Validate checks the batch size and every entry.
func (r *BulkStatusRequest) Validate() error {
	f := fieldErrors{}
	switch {
	case len(r.Updates) == 0:
		f["updates"] = domain.MsgRequired
	case len(r.Updates) > MaxBulkUpdates:
		f["updates"] = fmt.Sprintf("must contain at most %d items", MaxBulkUpdates)
	}
	for i, u := range r.Updates {
		if u.TaskID <= 0 {
			f[fmt.Sprintf("updates[%d].taskId", i)] = domain.MsgRequired
		}
		if !task.Status(u.Status).IsValid() {
			f[fmt.Sprintf("updates[%d].status", i)] = fmt.Sprintf("invalid: %q", u.Status)
		}
	}
	return f.err()
}

// ToUpdates converts the request to service input.
func (r *BulkStatusRequest) ToUpdates() []ports.StatusUpdate {
	out := make([]ports.StatusUpdate, len(r.Updates))
	for i, u := range r.Updates {
		out[i] = ports.StatusUpdate{TaskID: u.TaskID, Status: task.Status(u.Status)}
	}
	return out
}
