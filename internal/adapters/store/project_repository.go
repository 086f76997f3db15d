package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository implements ports.ProjectRepository.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a ProjectRepository.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// projectFilter applies f to tx.
func projectFilter(tx *gorm.DB, f project.Filter) *gorm.DB {
	if len(f.Statuses) > 0 {
		tx = tx.Where("status IN ?", strs(f.Statuses))
	}
	if len(f.Priorities) > 0 {
		tx = tx.Where("priority IN ?", strs(f.Priorities))
	}
	if len(f.Visibilities) > 0 {
		tx = tx.Where("visibility IN ?", strs(f.Visibilities))
	}
	if f.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *f.OwnerID)
	}
	if f.TeamID != nil {
		tx = tx.Where("team_id = ?", *f.TeamID)
	}
	if strings.TrimSpace(f.Search) != "" {
		pat := likePattern(f.Search)
		tx = tx.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pat, pat)
	}
	return tx
}

// visibleProjects restricts tx to projects userID owns, public projects and
// projects of the user's teams.
func (r *ProjectRepository) visibleProjects(tx *gorm.DB, userID int64) *gorm.DB {
	teams := r.db.Model(&membershipModel{}).Select("team_id").Where("user_id = ?", userID)
	return tx.Where("(owner_id = ? OR visibility = ? OR team_id IN (?))", userID, string(project.VisibilityPublic), teams)
}

// FindByID implements ports.ProjectRepository.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	var m projectModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "project")
	}
	p := m.toDomain()
	return &p, nil
}

// FindMany implements ports.ProjectRepository.
func (r *ProjectRepository) FindMany(ctx context.Context, q project.Query) (*query.Result[project.Project], error) {
	tx := projectFilter(r.db.WithContext(ctx).Model(&projectModel{}), q.Filter)
	if q.VisibleTo != nil {
		tx = r.visibleProjects(tx, *q.VisibleTo)
	}

	var rows []projectModel
	total, err := page(tx, q.Page, orderBy(project.SortFields, q.Sort), &rows)
	if err != nil {
		return nil, translate(err, "listing projects")
	}
	return query.NewResult(mapModels(rows, (*projectModel).toDomain), q.Page, total), nil
}

// Create implements ports.ProjectRepository.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	m := toProjectModel(p)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "project")
	}
	out := m.toDomain()
	return &out, nil
}

// Update implements ports.ProjectRepository. The completion percentage is
// left alone; it only changes through SetCompletion.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	m := toProjectModel(p)
	res := r.db.WithContext(ctx).Model(&projectModel{ID: p.ID}).
		Select("name", "description", "status", "priority", "team_id", "visibility", "start_date", "target_date", "updated_at").
		Updates(m)
	if res.Error != nil {
		return nil, translate(res.Error, "project")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "project")
	}
	return r.FindByID(ctx, p.ID)
}

// SetCompletion implements ports.ProjectRepository.
func (r *ProjectRepository) SetCompletion(ctx context.Context, id int64, pct int) error {
	res := r.db.WithContext(ctx).Model(&projectModel{ID: id}).Update("completion_percentage", pct)
	if res.Error != nil {
		return translate(res.Error, "project")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "project")
	}
	return nil
}

// Delete implements ports.ProjectRepository. The project's tasks and their
// tags are deleted with it.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&projectModel{}, id)
		if res.Error != nil {
			return translate(res.Error, "project")
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "project")
		}
		taskIDs := tx.Model(&taskModel{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&taskTagModel{}).Error; err != nil {
			return translate(err, "project task tags")
		}
		if err := tx.Where("project_id = ?", id).Delete(&taskModel{}).Error; err != nil {
			return translate(err, "project tasks")
		}
		return nil
	})
}

// Count implements ports.ProjectRepository.
func (r *ProjectRepository) Count(ctx context.Context, f project.Filter) (int64, error) {
	var n int64
	if err := projectFilter(r.db.WithContext(ctx).Model(&projectModel{}), f).Count(&n).Error; err != nil {
		return 0, translate(err, "counting projects")
	}
	return n, nil
}

// GroupByCount implements ports.ProjectRepository.
func (r *ProjectRepository) GroupByCount(ctx context.Context, field project.GroupField, f project.Filter) (map[string]int64, error) {
	col, err := groupColumn(string(field))
	if err != nil {
		return nil, err
	}
	out, err := groupCounts(projectFilter(r.db.WithContext(ctx).Model(&projectModel{}), f), col)
	if err != nil {
		return nil, translate(err, "grouping projects")
	}
	return out, nil
}
