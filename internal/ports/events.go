package ports

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
)

// EventSink receives a description of every state change. Record is
// fire-and-forget: implementations log their own failures.
type EventSink interface {
	Record(ctx context.Context, e domain.Event)
}

// SecurityAuditor receives every authorization denial.
type SecurityAuditor interface {
	LogSecurityEvent(ctx context.Context, kind string, principalID, resourceID int64)
}

// Notifier pushes a stored notification to the user's live connections.
// Implemented by the realtime hub.
type Notifier interface {
	Push(ctx context.Context, n *notification.Notification)
}

// WebhookPublisher forwards events to an external receiver.
type WebhookPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}
