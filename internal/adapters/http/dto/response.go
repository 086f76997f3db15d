package dto

import (
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/kanban"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// mapSlice converts every element with fn, never returning nil.
func mapSlice[S, D any](in []S, fn func(*S) D) []D {
	out := make([]D, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

// UserResponse is the public view of a user. The password hash never leaves
// the service.
type UserResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUserResponse converts a domain user.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role.String(),
		IsActive:    u.IsActive,
		LastLoginAt: formatTimePtr(u.LastLoginAt),
		CreatedAt:   formatTime(u.CreatedAt),
		UpdatedAt:   formatTime(u.UpdatedAt),
	}
}

// ToUserList converts a page of users.
func ToUserList(users []user.User) []UserResponse {
	return mapSlice(users, ToUserResponse)
}

// PrincipalResponse is the body of GET /auth/me.
type PrincipalResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// ToPrincipalResponse converts the authenticated caller.
func ToPrincipalResponse(p domain.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:       p.ID,
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role.String(),
		IsActive: p.IsActive,
	}
}

// AuthResponse is the body of a successful login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToAuthResponse converts a login result.
func ToAuthResponse(r *ports.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		ExpiresAt: formatTime(r.ExpiresAt),
		User:      ToUserResponse(r.User),
	}
}

// TeamResponse is the wire form of a team.
type TeamResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LeaderID    int64  `json:"leaderId"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToTeamResponse converts a domain team.
func ToTeamResponse(t *team.Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		IsActive:    t.IsActive,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

// ToTeamList converts a page of teams.
func ToTeamList(teams []team.Team) []TeamResponse {
	return mapSlice(teams, ToTeamResponse)
}

// MembershipResponse is the wire form of a team membership.
type MembershipResponse struct {
	TeamID   int64  `json:"teamId"`
	UserID   int64  `json:"userId"`
	Role     string `json:"role"`
	JoinedAt string `json:"joinedAt"`
}

// ToMembershipResponse converts a domain membership.
func ToMembershipResponse(m *team.Membership) MembershipResponse {
	return MembershipResponse{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		Role:     m.Role.String(),
		JoinedAt: formatTime(m.JoinedAt),
	}
}

// ToMembershipList converts a team's members.
func ToMembershipList(ms []team.Membership) []MembershipResponse {
	return mapSlice(ms, ToMembershipResponse)
}

// ProjectResponse is the wire form of a project.
type ProjectResponse struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Status               string  `json:"status"`
	Priority             string  `json:"priority"`
	OwnerID              int64   `json:"ownerId"`
	TeamID               *int64  `json:"teamId"`
	Visibility           string  `json:"visibility"`
	StartDate            *string `json:"startDate"`
	TargetDate           *string `json:"targetDate"`
	CompletionPercentage int     `json:"completionPercentage"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// ToProjectResponse converts a domain project.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Status:               p.Status.String(),
		Priority:             p.Priority.String(),
		OwnerID:              p.OwnerID,
		TeamID:               p.TeamID,
		Visibility:           p.Visibility.String(),
		StartDate:            formatTimePtr(p.StartDate),
		TargetDate:           formatTimePtr(p.TargetDate),
		CompletionPercentage: p.CompletionPercentage,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

// ToProjectList converts a page of projects.
func ToProjectList(projects []project.Project) []ProjectResponse {
	return mapSlice(projects, ToProjectResponse)
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	AssigneeID     *int64   `json:"assigneeId"`
	ProjectID      *int64   `json:"projectId"`
	ModuleID       *int64   `json:"moduleId"`
	DueDate        *string  `json:"dueDate"`
	EstimatedHours *float64 `json:"estimatedHours"`
	ActualHours    *float64 `json:"actualHours"`
	Tags           []string `json:"tags"`
	CreatedByID    int64    `json:"createdById"`
	CompletedAt    *string  `json:"completedAt"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ToTaskResponse converts a domain task.
func ToTaskResponse(t *task.Task) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status.String(),
		Priority:       t.Priority.String(),
		AssigneeID:     t.AssigneeID,
		ProjectID:      t.ProjectID,
		ModuleID:       t.ModuleID,
		DueDate:        formatTimePtr(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Tags:           tags,
		CreatedByID:    t.CreatedByID,
		CompletedAt:    formatTimePtr(t.CompletedAt),
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
}

// ToTaskList converts a page of tasks.
func ToTaskList(tasks []task.Task) []TaskResponse {
	return mapSlice(tasks, ToTaskResponse)
}

// BulkErrorResponse describes one failed item of a bulk update.
type BulkErrorResponse struct {
	TaskID  int64       `json:"taskId"`
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

// BulkUpdateResponse is the body of PATCH /tasks/bulk-status.
type BulkUpdateResponse struct {
	Updated []TaskResponse      `json:"updated"`
	Errors  []BulkErrorResponse `json:"errors"`
}

// ToBulkUpdateResponse converts a bulk result. Internal failures are reported
// with the opaque message.
func ToBulkUpdateResponse(r *ports.BulkUpdateResult) BulkUpdateResponse {
	errs := make([]BulkErrorResponse, len(r.Errors))
	for i, e := range r.Errors {
		code := domain.CodeOf(e.Err)
		msg := e.Err.Error()
		if code == domain.CodeInternal {
			msg = MsgInternal
		}
		errs[i] = BulkErrorResponse{TaskID: e.TaskID, Code: code, Message: msg}
	}
	return BulkUpdateResponse{Updated: ToTaskList(r.Updated), Errors: errs}
}

// ColumnResponse is one Kanban column.
type ColumnResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Tasks []TaskResponse `json:"tasks"`
}

// BoardResponse is the body of GET /projects/{id}/kanban.
type BoardResponse struct {
	Project    ProjectResponse  `json:"project"`
	Columns    []ColumnResponse `json:"columns"`
	TotalTasks int              `json:"totalTasks"`
}

// ToBoardResponse converts an assembled board.
func ToBoardResponse(b *kanban.Board) BoardResponse {
	cols := make([]ColumnResponse, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = ColumnResponse{ID: c.ID.String(), Title: c.Title, Tasks: ToTaskList(c.Tasks)}
	}
	return BoardResponse{
		Project:    ToProjectResponse(&b.Project),
		Columns:    cols,
		TotalTasks: b.TotalTasks,
	}
}

// ProjectStatsResponse is the body of GET /projects/{id}/stats.
type ProjectStatsResponse struct {
	ProjectID            int64            `json:"projectId"`
	TotalTasks           int64            `json:"totalTasks"`
	ByStatus             map[string]int64 `json:"byStatus"`
	ByPriority           map[string]int64 `json:"byPriority"`
	CompletionPercentage int              `json:"completionPercentage"`
}

// ToProjectStatsResponse converts project stats. Every status and priority
// appears, with zero counts included.
func ToProjectStatsResponse(s *ports.ProjectStats) ProjectStatsResponse {
	byStatus := make(map[string]int64, len(task.Statuses))
	for _, st := range task.Statuses {
		byStatus[st.String()] = s.ByStatus[st]
	}
	byPriority := make(map[string]int64, len(domain.Priorities))
	for _, pr := range domain.Priorities {
		byPriority[pr.String()] = s.ByPriority[pr]
	}
	return ProjectStatsResponse{
		ProjectID:            s.ProjectID,
		TotalTasks:           s.TotalTasks,
		ByStatus:             byStatus,
		ByPriority:           byPriority,
		CompletionPercentage: s.CompletionPercentage,
	}
}

// NotificationResponse is the wire form of a notification.
type NotificationResponse struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	EntityType string `json:"entityType"`
	EntityID   int64  `json:"entityId"`
	IsRead     bool   `json:"isRead"`
	CreatedAt  string `json:"createdAt"`
}

// ToNotificationResponse converts a domain notification.
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		EntityType: string(n.EntityType),
		EntityID:   n.EntityID,
		IsRead:     n.IsRead,
		CreatedAt:  formatTime(n.CreatedAt),
	}
}

// ToNotificationList converts a page of notifications.
func ToNotificationList(ns []notification.Notification) []NotificationResponse {
	return mapSlice(ns, ToNotificationResponse)
}

// CountResponse carries a single count, e.g. unread notifications.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ActivityResponse is the wire form of an activity log entry.
type ActivityResponse struct {
	ID         int64          `json:"id"`
	EventType  string         `json:"eventType"`
	ActorID    int64          `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   int64          `json:"entityId"`
	Details    map[string]any `json:"details"`
	CreatedAt  string         `json:"createdAt"`
}

// ToActivityResponse converts an activity entry.
func ToActivityResponse(e *activity.Entry) ActivityResponse {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	return ActivityResponse{
		ID:         e.ID,
		EventType:  string(e.EventType),
		ActorID:    e.ActorID,
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID,
		Details:    details,
		CreatedAt:  formatTime(e.CreatedAt),
	}
}

// ToActivityList converts a page of activity entries.
func ToActivityList(es []activity.Entry) []ActivityResponse {
	return mapSlice(es, ToActivityResponse)
}

// SystemStatsResponse is the body of GET /admin/stats.
type SystemStatsResponse struct {
	Users            int64             `json:"users"`
	Teams            int64             `json:"teams"`
	Projects         int64             `json:"projects"`
	Tasks            int64             `json:"tasks"`
	TasksByStatus    map[string]int64  `json:"tasksByStatus"`
	ProjectsByStatus map[string]int64  `json:"projectsByStatus"`
	Health           map[string]string `json:"health"`
	GeneratedAt      string            `json:"generatedAt"`
}

// ToSystemStatsResponse converts system stats.
func ToSystemStatsResponse(s *ports.SystemStats) SystemStatsResponse {
	return SystemStatsResponse{
		Users:            s.Users,
		Teams:            s.Teams,
		Projects:         s.Projects,
		Tasks:            s.Tasks,
		TasksByStatus:    s.TasksByStatus,
		ProjectsByStatus: s.ProjectsByStatus,
		Health:           s.Health,
		GeneratedAt:      formatTime(s.GeneratedAt),
	}
}
