package domain

import "time"

// EventType names a domain event.
type EventType string

const (
	EventUserRegistered  EventType = "user.registered"
	EventUserUpdated     EventType = "user.updated"
	EventUserDeactivated EventType = "user.deactivated"

	EventTeamCreated       EventType = "team.created"
	EventTeamMemberAdded   EventType = "team.member_added"
	EventTeamMemberRemoved EventType = "team.member_removed"

	EventProjectCreated    EventType = "project.created"
	EventProjectUpdated    EventType = "project.updated"
	EventProjectDeleted    EventType = "project.deleted"
	EventProjectCompletion EventType = "project.completion_updated"

	EventTaskCreated       EventType = "task.created"
	EventTaskUpdated       EventType = "task.updated"
	EventTaskStatusChanged EventType = "task.status_changed"
	EventTaskAssigned      EventType = "task.assigned"
	EventTaskDeleted       EventType = "task.deleted"

	EventAccessDenied EventType = "security.access_denied"
)

// String implements fmt.Stringer.
func (t EventType) String() string {
	return string(t)
}

// EntityType names the kind of entity an event refers to.
type EntityType string

const (
	EntityUser         EntityType = "user"
	EntityTeam         EntityType = "team"
	EntityProject      EntityType = "project"
	EntityTask         EntityType = "task"
	EntityNotification EntityType = "notification"
)

// IsValid returns true if the entity type is one of the defined constants.
func (e EntityType) IsValid() bool {
	switch e {
	case EntityUser, EntityTeam, EntityProject, EntityTask, EntityNotification:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (e EntityType) String() string {
	return string(e)
}

// Well-known detail keys. The dispatcher uses them to pick notification
// recipients.
const (
	DetailAssigneeID  = "assigneeId"
	DetailCreatedByID = "createdById"
	DetailOwnerID     = "ownerId"
	DetailUserID      = "userId"
	DetailProjectID   = "projectId"
	DetailTitle       = "title"
	DetailFromStatus  = "fromStatus"
	DetailToStatus    = "toStatus"
	DetailTeamID      = "teamId"
	DetailRole        = "role"
	DetailAction      = "action"
	DetailName        = "name"
)

// Event describes a state change performed by an actor.
type Event struct {
	Type       EventType
	ActorID    int64
	EntityType EntityType
	EntityID   int64
	Details    map[string]any
	OccurredAt time.Time
}

// NewEvent builds an Event stamped with the current UTC time.
func NewEvent(typ EventType, actorID int64, entity EntityType, entityID int64, details map[string]any) Event {
	if details == nil {
		details = map[string]any{}
	}
	return Event{
		Type:       typ,
		ActorID:    actorID,
		EntityType: entity,
		EntityID:   entityID,
		Details:    details,
		OccurredAt: time.Now().UTC(),
	}
}
