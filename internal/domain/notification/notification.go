// Package notification holds per-user notifications derived from domain
// events.
package notification

import (
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
)

// Notification tells one user about an event that concerns them.
type Notification struct {
	ID         int64
	UserID     int64
	Type       domain.EventType
	Title      string
	Message    string
	EntityType domain.EntityType
	EntityID   int64
	IsRead     bool
	CreatedAt  time.Time
}

// Query is a normalized notification listing request. Results are always
// scoped to one user and sorted newest first.
type Query struct {
	UserID     int64
	UnreadOnly bool
	Page       query.Page
}

// ResolveQuery normalizes raw list options for userID.
func ResolveQuery(userID int64, raw query.Raw) Query {
	q := Query{UserID: userID, Page: query.ResolvePage(raw)}
	if b := raw.Bool("unreadOnly"); b != nil {
		q.UnreadOnly = *b
	}
	return q
}
