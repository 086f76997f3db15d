package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository implements ports.ActivityRepository. The log is
// append-only.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates an ActivityRepository.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append implements ports.ActivityRepository.
func (r *ActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	m, err := toActivityModel(e)
	if err != nil {
		return translate(err, "encoding activity details")
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err, "activity")
	}
	e.ID = m.ID
	return nil
}

// FindMany implements ports.ActivityRepository, newest first.
func (r *ActivityRepository) FindMany(ctx context.Context, q activity.Query) (*query.Result[activity.Entry], error) {
	tx := r.db.WithContext(ctx).Model(&activityModel{})
	f := q.Filter
	if f.EntityType != nil {
		tx = tx.Where("entity_type = ?", string(*f.EntityType))
	}
	if f.EntityID != nil {
		tx = tx.Where("entity_id = ?", *f.EntityID)
	}
	if f.ActorID != nil {
		tx = tx.Where("actor_id = ?", *f.ActorID)
	}
	if f.EventType != nil {
		tx = tx.Where("event_type = ?", string(*f.EventType))
	}

	var rows []activityModel
	newest := func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC").Order("id DESC") }
	total, err := page(tx, q.Page, newest, &rows)
	if err != nil {
		return nil, translate(err, "listing activity")
	}
	return query.NewResult(mapModels(rows, (*activityModel).toDomain), q.Page, total), nil
}
