package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
)

func models() []any {
	return []any{
		&userModel{},
		&teamModel{},
		&membershipModel{},
		&projectModel{},
		&taskModel{},
		&taskTagModel{},
		&activityModel{},
		&notificationModel{},
	}
}

type userModel struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Role         string `gorm:"size:20;not null;index"`
	IsActive     bool   `gorm:"not null;index"`
	PasswordHash string `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func toUserModel(u *user.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		PasswordHash: u.PasswordHash,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *userModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         domain.Role(m.Role),
		IsActive:     m.IsActive,
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type teamModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string
	LeaderID    int64 `gorm:"not null;index"`
	IsActive    bool  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (teamModel) TableName() string { return "teams" }

func toTeamModel(t *team.Team) *teamModel {
	return &teamModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *teamModel) toDomain() team.Team {
	return team.Team{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		LeaderID:    m.LeaderID,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type membershipModel struct {
	TeamID   int64  `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64  `gorm:"primaryKey;autoIncrement:false;index"`
	Role     string `gorm:"size:20;not null"`
	JoinedAt time.Time
}

func (membershipModel) TableName() string { return "team_memberships" }

func (m *membershipModel) toDomain() team.Membership {
	return team.Membership{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		Role:     team.MemberRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

type projectModel struct {
	ID                   int64  `gorm:"primaryKey"`
	Name                 string `gorm:"size:200;not null"`
	Description          string
	Status               string `gorm:"size:20;not null;index"`
	Priority             string `gorm:"size:20;not null;index"`
	OwnerID              int64  `gorm:"not null;index"`
	TeamID               *int64 `gorm:"index"`
	Visibility           string `gorm:"size:20;not null"`
	StartDate            *time.Time
	TargetDate           *time.Time
	CompletionPercentage int `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (projectModel) TableName() string { return "projects" }

func toProjectModel(p *project.Project) *projectModel {
	return &projectModel{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Status:               string(p.Status),
		Priority:             string(p.Priority),
		OwnerID:              p.OwnerID,
		TeamID:               p.TeamID,
		Visibility:           string(p.Visibility),
		StartDate:            p.StartDate,
		TargetDate:           p.TargetDate,
		CompletionPercentage: p.CompletionPercentage,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (m *projectModel) toDomain() project.Project {
	return project.Project{
		ID:                   m.ID,
		Name:                 m.Name,
		Description:          m.Description,
		Status:               project.Status(m.Status),
		Priority:             domain.Priority(m.Priority),
		OwnerID:              m.OwnerID,
		TeamID:               m.TeamID,
		Visibility:           project.Visibility(m.Visibility),
		StartDate:            m.StartDate,
		TargetDate:           m.TargetDate,
		CompletionPercentage: m.CompletionPercentage,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

type taskModel struct {
	ID             int64  `gorm:"primaryKey"`
	Title          string `gorm:"size:200;not null"`
	Description    string
	Status         string `gorm:"size:20;not null;index"`
	Priority       string `gorm:"size:20;not null;index"`
	AssigneeID     *int64 `gorm:"index"`
	ProjectID      *int64 `gorm:"index"`
	ModuleID       *int64
	DueDate        *time.Time `gorm:"index"`
	EstimatedHours *float64
	ActualHours    *float64
	CreatedByID    int64 `gorm:"not null;index"`
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (taskModel) TableName() string { return "tasks" }

type taskTagModel struct {
	TaskID int64  `gorm:"primaryKey;autoIncrement:false"`
	Tag    string `gorm:"primaryKey;size:50;index"`
}

func (taskTagModel) TableName() string { return "task_tags" }

func toTaskModel(t *task.Task) *taskModel {
	return &taskModel{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		AssigneeID:     t.AssigneeID,
		ProjectID:      t.ProjectID,
		ModuleID:       t.ModuleID,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		CreatedByID:    t.CreatedByID,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *taskModel) toDomain(tags []string) task.Task {
	if tags == nil {
		tags = []string{}
	}
	return task.Task{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Status:         task.Status(m.Status),
		Priority:       domain.Priority(m.Priority),
		AssigneeID:     m.AssigneeID,
		ProjectID:      m.ProjectID,
		ModuleID:       m.ModuleID,
		DueDate:        m.DueDate,
		EstimatedHours: m.EstimatedHours,
		ActualHours:    m.ActualHours,
		Tags:           tags,
		CreatedByID:    m.CreatedByID,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type activityModel struct {
	ID         int64          `gorm:"primaryKey"`
	EventType  string         `gorm:"size:50;not null;index"`
	ActorID    int64          `gorm:"not null;index"`
	EntityType string         `gorm:"size:20;not null;index:idx_activity_entity"`
	EntityID   int64          `gorm:"not null;index:idx_activity_entity"`
	Details    datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time      `gorm:"index"`
}

func (activityModel) TableName() string { return "activity_logs" }

func toActivityModel(e *activity.Entry) (*activityModel, error) {
	m := &activityModel{
		EventType:  string(e.EventType),
		ActorID:    e.ActorID,
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID,
		CreatedAt:  e.CreatedAt,
	}
	if len(e.Details) > 0 {
		raw, err := json.Marshal(e.Details)
		if err != nil {
			return nil, err
		}
		m.Details = datatypes.JSON(raw)
	}
	return m, nil
}

func (m *activityModel) toDomain() activity.Entry {
	e := activity.Entry{
		ID:         m.ID,
		EventType:  domain.EventType(m.EventType),
		ActorID:    m.ActorID,
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		CreatedAt:  m.CreatedAt,
	}
	if len(m.Details) > 0 {
		// Malformed details degrade to none.
		_ = json.Unmarshal(m.Details, &e.Details)
	}
	return e
}

type notificationModel struct {
	ID         int64  `gorm:"primaryKey"`
	UserID     int64  `gorm:"not null;index"`
	Type       string `gorm:"size:50;not null"`
	Title      string `gorm:"size:200;not null"`
	Message    string
	EntityType string `gorm:"size:20"`
	EntityID   int64
	IsRead     bool      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"index"`
}

func (notificationModel) TableName() string { return "notifications" }

func toNotificationModel(n *notification.Notification) *notificationModel {
	return &notificationModel{
		ID:         n.ID,
		UserID:     n.UserID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		EntityType: string(n.EntityType),
		EntityID:   n.EntityID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

func (m *notificationModel) toDomain() notification.Notification {
	return notification.Notification{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       domain.EventType(m.Type),
		Title:      m.Title,
		Message:    m.Message,
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}
