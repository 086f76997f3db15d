package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.TeamRepository = (*TeamRepository)(nil)

// TeamRepository implements ports.TeamRepository.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a TeamRepository.
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// FindByID implements ports.TeamRepository.
func (r *TeamRepository) FindByID(ctx context.Context, id int64) (*team.Team, error) {
	var m teamModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "team")
	}
	t := m.toDomain()
	return &t, nil
}

// FindMany implements ports.TeamRepository.
func (r *TeamRepository) FindMany(ctx context.Context, q team.Query) (*query.Result[team.Team], error) {
	tx := r.db.WithContext(ctx).Model(&teamModel{})
	if q.MemberID != nil {
		tx = tx.Where("id IN (?)", r.db.Model(&membershipModel{}).Select("team_id").Where("user_id = ?", *q.MemberID))
	}
	if strings.TrimSpace(q.Search) != "" {
		pat := likePattern(q.Search)
		tx = tx.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pat, pat)
	}

	var rows []teamModel
	total, err := page(tx, q.Page, orderBy(team.SortFields, q.Sort), &rows)
	if err != nil {
		return nil, translate(err, "listing teams")
	}
	return query.NewResult(mapModels(rows, (*teamModel).toDomain), q.Page, total), nil
}

// Create implements ports.TeamRepository.
func (r *TeamRepository) Create(ctx context.Context, t *team.Team) (*team.Team, error) {
	m := toTeamModel(t)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "team")
	}
	out := m.toDomain()
	return &out, nil
}

// Delete implements ports.TeamRepository. Projects of the team are detached
// rather than deleted.
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&teamModel{}, id)
		if res.Error != nil {
			return translate(res.Error, "team")
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "team")
		}
		if err := tx.Where("team_id = ?", id).Delete(&membershipModel{}).Error; err != nil {
			return translate(err, "team members")
		}
		if err := tx.Model(&projectModel{}).Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
			return translate(err, "team projects")
		}
		return nil
	})
}

// Exists implements ports.TeamRepository.
func (r *TeamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&teamModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err, "team")
	}
	return n > 0, nil
}

// Count implements ports.TeamRepository.
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&teamModel{}).Count(&n).Error; err != nil {
		return 0, translate(err, "counting teams")
	}
	return n, nil
}

// AddMember implements ports.TeamRepository.
func (r *TeamRepository) AddMember(ctx context.Context, m *team.Membership) (*team.Membership, error) {
	row := &membershipModel{TeamID: m.TeamID, UserID: m.UserID, Role: string(m.Role), JoinedAt: m.JoinedAt}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, translate(err, "team membership")
	}
	out := row.toDomain()
	return &out, nil
}

// RemoveMember implements ports.TeamRepository.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID int64) error {
	res := r.db.WithContext(ctx).Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&membershipModel{})
	if res.Error != nil {
		return translate(res.Error, "team membership")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "team membership")
	}
	return nil
}

// FindMembership implements ports.TeamRepository.
func (r *TeamRepository) FindMembership(ctx context.Context, teamID, userID int64) (*team.Membership, error) {
	var m membershipModel
	if err := r.db.WithContext(ctx).Where("team_id = ? AND user_id = ?", teamID, userID).First(&m).Error; err != nil {
		return nil, translate(err, "team membership")
	}
	out := m.toDomain()
	return &out, nil
}

// ListMembers implements ports.TeamRepository, ordered by join time.
func (r *TeamRepository) ListMembers(ctx context.Context, teamID int64) ([]team.Membership, error) {
	var rows []membershipModel
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("joined_at ASC").Order("user_id ASC").Find(&rows).Error; err != nil {
		return nil, translate(err, "listing team members")
	}
	return mapModels(rows, (*membershipModel).toDomain), nil
}
