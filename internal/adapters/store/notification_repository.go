package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository implements ports.NotificationRepository.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a NotificationRepository.
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create implements ports.NotificationRepository.
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error) {
	m := toNotificationModel(n)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "notification")
	}
	out := m.toDomain()
	return &out, nil
}

// FindByID implements ports.NotificationRepository.
func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*notification.Notification, error) {
	var m notificationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "notification")
	}
	out := m.toDomain()
	return &out, nil
}

// FindMany implements ports.NotificationRepository, newest first.
func (r *NotificationRepository) FindMany(ctx context.Context, q notification.Query) (*query.Result[notification.Notification], error) {
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).Where("user_id = ?", q.UserID)
	if q.UnreadOnly {
		tx = tx.Where("is_read = ?", false)
	}

	var rows []notificationModel
	newest := func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC").Order("id DESC") }
	total, err := page(tx, q.Page, newest, &rows)
	if err != nil {
		return nil, translate(err, "listing notifications")
	}
	return query.NewResult(mapModels(rows, (*notificationModel).toDomain), q.Page, total), nil
}

// MarkRead implements ports.NotificationRepository.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&notificationModel{ID: id}).Update("is_read", true)
	if res.Error != nil {
		return translate(res.Error, "notification")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "notification")
	}
	return nil
}

// MarkAllRead implements ports.NotificationRepository.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, translate(res.Error, "notifications")
	}
	return res.RowsAffected, nil
}

// CountUnread implements ports.NotificationRepository.
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&n).Error
	if err != nil {
		return 0, translate(err, "counting notifications")
	}
	return n, nil
}
