package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID implements ports.UserRepository.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "user")
	}
	u := m.toDomain()
	return &u, nil
}

// FindByLogin implements ports.UserRepository. Emails match
// case-insensitively.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Where("(username = ? OR LOWER(email) = ?)", login, strings.ToLower(login)).
		First(&m).Error
	if err != nil {
		return nil, translate(err, "user")
	}
	u := m.toDomain()
	return &u, nil
}

// FindByUsername implements ports.UserRepository.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translate(err, "user")
	}
	u := m.toDomain()
	return &u, nil
}

// FindMany implements ports.UserRepository.
func (r *UserRepository) FindMany(ctx context.Context, q user.Query) (*query.Result[user.User], error) {
	tx := r.db.WithContext(ctx).Model(&userModel{})
	if q.Filter.Role != nil {
		tx = tx.Where("role = ?", string(*q.Filter.Role))
	}
	if q.Filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.Filter.IsActive)
	}
	if strings.TrimSpace(q.Filter.Search) != "" {
		pat := likePattern(q.Filter.Search)
		tx = tx.Where(`(LOWER(username) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\')`, pat, pat, pat, pat)
	}

	var rows []userModel
	total, err := page(tx, q.Page, orderBy(user.SortFields, q.Sort), &rows)
	if err != nil {
		return nil, translate(err, "listing users")
	}
	return query.NewResult(mapModels(rows, (*userModel).toDomain), q.Page, total), nil
}

// Create implements ports.UserRepository.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	m := toUserModel(u)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "user")
	}
	out := m.toDomain()
	return &out, nil
}

// Update implements ports.UserRepository.
func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	m := toUserModel(u)
	res := r.db.WithContext(ctx).Model(&userModel{ID: u.ID}).
		Select("email", "first_name", "last_name", "role", "is_active", "password_hash", "last_login_at", "updated_at").
		Updates(m)
	if res.Error != nil {
		return nil, translate(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "user")
	}
	return r.FindByID(ctx, u.ID)
}

// Exists implements ports.UserRepository.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err, "user")
	}
	return n > 0, nil
}

// Count implements ports.UserRepository.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, translate(err, "counting users")
	}
	return n, nil
}
