// Package activity holds the append-only activity log.
package activity

import (
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

// Entry is one recorded domain event.
type Entry struct {
	ID         int64
	EventType  domain.EventType
	ActorID    int64
	EntityType domain.EntityType
	EntityID   int64
	Details    map[string]any
	CreatedAt  time.Time
}

// FromEvent converts a domain event into a log entry.
func FromEvent(e domain.Event) *Entry {
	return &Entry{
		EventType:  e.Type,
		ActorID:    e.ActorID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Details:    e.Details,
		CreatedAt:  e.OccurredAt,
	}
}

// Filter narrows an activity listing.
type Filter struct {
	EntityType *domain.EntityType
	EntityID   *int64
	ActorID    *int64
	EventType  *domain.EventType
}

// Query is a normalized activity listing request, newest first.
type Query struct {
	Filter Filter
	Page   query.Page
}

// ResolveQuery normalizes raw list options.
func ResolveQuery(raw query.Raw) Query {
	q := Query{
		Filter: Filter{
			EntityID: raw.ID("entityId"),
			ActorID:  raw.ID("actorId"),
		},
		Page: query.ResolvePage(raw),
	}
	if v, ok := raw.First("entityType"); ok {
		if et := domain.EntityType(v); et.IsValid() {
			q.Filter.EntityType = &et
		}
	}
	if v, ok := raw.First("eventType"); ok {
		et := domain.EventType(v)
		q.Filter.EventType = &et
	}
	return q
}
