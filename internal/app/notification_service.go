package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that NotificationService implements ports.NotificationService.
var _ ports.NotificationService = (*NotificationService)(nil)

// NotificationService implements ports.NotificationService. Every
// operation is scoped to the principal's own notifications.
type NotificationService struct {
	notifications ports.NotificationRepository
	authz         *authorizer
	logger        *slog.Logger
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(
	notifications ports.NotificationRepository,
	audit ports.SecurityAuditor,
	logger *slog.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		authz:         newAuthorizer(nil, nil, audit),
		logger:        orDiscard(logger),
	}
}

// ListNotifications returns the principal's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, p domain.Principal, q notification.Query) (*query.Result[notification.Notification], error) {
	q.UserID = p.ID
	res, err := s.notifications.FindMany(ctx, q)
	if err != nil {
		logFailure(ctx, s.logger, "ListNotifications", err, slog.Int64("principal_id", p.ID))
		return nil, err
	}
	return res, nil
}

// MarkNotificationRead marks one of the principal's notifications read.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, p domain.Principal, id int64) (*notification.Notification, error) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("notification %d: %w", id, err)
	}
	if n.UserID != p.ID {
		return nil, s.authz.deny(ctx, domain.EntityNotification, access.ActionEdit, p, id)
	}
	if n.IsRead {
		return n, nil
	}

	if err := s.notifications.MarkRead(ctx, id); err != nil {
		logFailure(ctx, s.logger, "MarkNotificationRead", err, slog.Int64("notification_id", id))
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

// MarkAllRead marks every unread notification of the principal.
func (s *NotificationService) MarkAllRead(ctx context.Context, p domain.Principal) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, p.ID)
	if err != nil {
		logFailure(ctx, s.logger, "MarkAllRead", err, slog.Int64("principal_id", p.ID))
		return 0, err
	}
	return n, nil
}

// UnreadCount returns how many of the principal's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, p domain.Principal) (int64, error) {
	return s.notifications.CountUnread(ctx, p.ID)
}
