package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EventSink       = (*Dispatcher)(nil)
	_ ports.SecurityAuditor = (*Dispatcher)(nil)
)

const defaultWebhookTimeout = 10 * time.Second

// Dispatcher fans every domain event out to the activity log, per-user
// notifications, live websocket clients and the optional webhook. Nothing
// it does can fail the operation that produced the event.
type Dispatcher struct {
	activities    ports.ActivityRepository
	notifications ports.NotificationRepository
	notifier      ports.Notifier
	webhook       ports.WebhookPublisher
	metrics       *telemetry.Metrics
	logger        *slog.Logger

	webhookTimeout time.Duration
	inflight       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. notifier, webhook and metrics may be
// nil.
func NewDispatcher(
	activities ports.ActivityRepository,
	notifications ports.NotificationRepository,
	notifier ports.Notifier,
	webhook ports.WebhookPublisher,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		activities:     activities,
		notifications:  notifications,
		notifier:       notifier,
		webhook:        webhook,
		metrics:        metrics,
		logger:         orDiscard(logger),
		webhookTimeout: defaultWebhookTimeout,
	}
}

// Record implements ports.EventSink.
func (d *Dispatcher) Record(ctx context.Context, e domain.Event) {
	if d.metrics != nil {
		d.metrics.DomainEventsTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrEventType.String(e.Type.String())))
	}

	d.appendActivity(ctx, e)

	for _, n := range notificationsFor(e) {
		created, err := d.notifications.Create(ctx, &n)
		if err != nil {
			logFailure(ctx, d.logger, "Dispatcher.Record", err,
				slog.String("event_type", e.Type.String()),
				slog.Int64("user_id", n.UserID),
			)
			continue
		}
		if d.notifier != nil {
			d.notifier.Push(ctx, created)
		}
	}

	if d.webhook != nil {
		d.publish(ctx, e)
	}
}

// LogSecurityEvent implements ports.SecurityAuditor. kind is
// "<entity>.<action>", e.g. "task.edit".
func (d *Dispatcher) LogSecurityEvent(ctx context.Context, kind string, principalID, resourceID int64) {
	d.logger.WarnContext(ctx, "access denied",
		slog.String("kind", kind),
		slog.Int64("principal_id", principalID),
		slog.Int64("resource_id", resourceID),
	)
	if d.metrics != nil {
		d.metrics.AccessDeniedTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrDenialKind.String(kind)))
	}

	entity, action, _ := strings.Cut(kind, ".")
	d.appendActivity(ctx, domain.NewEvent(domain.EventAccessDenied, principalID, domain.EntityType(entity), resourceID,
		map[string]any{domain.DetailAction: action}))
}

// Close waits for in-flight webhook deliveries.
func (d *Dispatcher) Close() {
	d.inflight.Wait()
}

func (d *Dispatcher) appendActivity(ctx context.Context, e domain.Event) {
	if err := d.activities.Append(ctx, activity.FromEvent(e)); err != nil {
		logFailure(ctx, d.logger, "Dispatcher.appendActivity", err,
			slog.String("event_type", e.Type.String()),
			slog.Int64("entity_id", e.EntityID),
		)
	}
}

// publish delivers e in the background. The delivery outlives the request
// but keeps its values (request id, logger) for correlation.
func (d *Dispatcher) publish(ctx context.Context, e domain.Event) {
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.webhookTimeout)
		defer cancel()

		if err := d.webhook.Publish(ctx, e); err != nil {
			d.logger.WarnContext(ctx, "webhook delivery failed",
				slog.String("event_type", e.Type.String()),
				slog.Int64("entity_id", e.EntityID),
				slog.Any("error", err),
			)
		}
	}()
}

// notificationsFor derives the per-user notifications an event produces.
// The actor is never notified about their own change.
func notificationsFor(e domain.Event) []notification.Notification {
	var out []notification.Notification
	add := func(userID int64, title, msg string) {
		if userID <= 0 || userID == e.ActorID {
			return
		}
		for _, n := range out {
			if n.UserID == userID {
				return
			}
		}
		out = append(out, notification.Notification{
			UserID:     userID,
			Type:       e.Type,
			Title:      title,
			Message:    msg,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
		})
	}

	title, _ := e.Details[domain.DetailTitle].(string)

	switch e.Type {
	case domain.EventTaskAssigned:
		if id, ok := detailID(e.Details, domain.DetailAssigneeID); ok {
			add(id, "Task assigned", `You were assigned to "`+title+`"`)
		}

	case domain.EventTaskCreated:
		if id, ok := detailID(e.Details, domain.DetailAssigneeID); ok {
			add(id, "Task assigned", `You were assigned to "`+title+`"`)
		}
		if id, ok := detailID(e.Details, domain.DetailOwnerID); ok {
			add(id, "New task in your project", `"`+title+`" was added to your project`)
		}

	case domain.EventTaskStatusChanged:
		from, _ := e.Details[domain.DetailFromStatus].(string)
		to, _ := e.Details[domain.DetailToStatus].(string)
		if id, ok := detailID(e.Details, domain.DetailCreatedByID); ok {
			add(id, "Task status changed", `"`+title+`" moved from `+from+` to `+to)
		}

	case domain.EventTeamMemberAdded:
		name, _ := e.Details[domain.DetailName].(string)
		if id, ok := detailID(e.Details, domain.DetailUserID); ok {
			add(id, "Added to team", `You were added to team "`+name+`"`)
		}
	}
	return out
}

// detailID reads a positive id from event details. Values may be int64 in
// process or float64 after a JSON round trip.
func detailID(details map[string]any, key string) (int64, bool) {
	var id int64
	switch v := details[key].(type) {
	case int64:
		id = v
	case int:
		id = int64(v)
	case float64:
		id = int64(v)
	case *int64:
		if v == nil {
			return 0, false
		}
		id = *v
	default:
		return 0, false
	}
	return id, id > 0
}
