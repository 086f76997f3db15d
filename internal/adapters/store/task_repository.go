package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository implements ports.TaskRepository. Tags live in their own
// table and are loaded in one extra query per call.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) taskFilter(tx *gorm.DB, f task.Filter) *gorm.DB {
	if len(f.Statuses) > 0 {
		tx = tx.Where("status IN ?", strs(f.Statuses))
	}
	if len(f.Priorities) > 0 {
		tx = tx.Where("priority IN ?", strs(f.Priorities))
	}
	if f.ProjectID != nil {
		tx = tx.Where("project_id = ?", *f.ProjectID)
	}
	if f.AssigneeID != nil {
		tx = tx.Where("assignee_id = ?", *f.AssigneeID)
	}
	if f.DueFrom != nil {
		tx = tx.Where("due_date >= ?", *f.DueFrom)
	}
	if f.DueTo != nil {
		tx = tx.Where("due_date <= ?", *f.DueTo)
	}
	if len(f.Tags) > 0 {
		tags := make([]string, len(f.Tags))
		for i, tag := range f.Tags {
			tags[i] = strings.ToLower(tag)
		}
		tagged := r.db.Model(&taskTagModel{}).Select("task_id").Where("tag IN ?", tags)
		tx = tx.Where("id IN (?)", tagged)
	}
	if strings.TrimSpace(f.Search) != "" {
		pat := likePattern(f.Search)
		tx = tx.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pat, pat)
	}
	return tx
}

// visibleTasks restricts tx to tasks userID created, is assigned to, or
// whose project userID owns.
func (r *TaskRepository) visibleTasks(tx *gorm.DB, userID int64) *gorm.DB {
	owned := r.db.Model(&projectModel{}).Select("id").Where("owner_id = ?", userID)
	return tx.Where("(created_by_id = ? OR assignee_id = ? OR project_id IN (?))", userID, userID, owned)
}

// loadTags returns the sorted tags of each task id.
func loadTags(tx *gorm.DB, ids []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []taskTagModel
	if err := tx.Where("task_id IN ?", ids).Order("tag ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.TaskID] = append(out[row.TaskID], row.Tag)
	}
	return out, nil
}

func (r *TaskRepository) withTags(ctx context.Context, rows []taskModel) ([]task.Task, error) {
	ids := make([]int64, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	tags, err := loadTags(r.db.WithContext(ctx), ids)
	if err != nil {
		return nil, translate(err, "task tags")
	}
	out := make([]task.Task, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain(tags[rows[i].ID])
	}
	return out, nil
}

func writeTags(tx *gorm.DB, taskID int64, tags []string) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&taskTagModel{}).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	rows := make([]taskTagModel, len(tags))
	for i, tag := range tags {
		rows[i] = taskTagModel{TaskID: taskID, Tag: tag}
	}
	return tx.Create(&rows).Error
}

// FindByID implements ports.TaskRepository.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	var m taskModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "task")
	}
	tasks, err := r.withTags(ctx, []taskModel{m})
	if err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

// FindMany implements ports.TaskRepository.
func (r *TaskRepository) FindMany(ctx context.Context, q task.Query) (*query.Result[task.Task], error) {
	tx := r.taskFilter(r.db.WithContext(ctx).Model(&taskModel{}), q.Filter)
	if q.VisibleTo != nil {
		tx = r.visibleTasks(tx, *q.VisibleTo)
	}

	var rows []taskModel
	total, err := page(tx, q.Page, orderBy(task.SortFields, q.Sort), &rows)
	if err != nil {
		return nil, translate(err, "listing tasks")
	}
	tasks, err := r.withTags(ctx, rows)
	if err != nil {
		return nil, err
	}
	return query.NewResult(tasks, q.Page, total), nil
}

// FindByProject implements ports.TaskRepository.
func (r *TaskRepository) FindByProject(ctx context.Context, projectID int64) ([]task.Task, error) {
	var rows []taskModel
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).
		Order("created_at ASC").Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, translate(err, "listing project tasks")
	}
	return r.withTags(ctx, rows)
}

// Create implements ports.TaskRepository.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	m := toTaskModel(t)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return writeTags(tx, m.ID, t.Tags)
	})
	if err != nil {
		return nil, translate(err, "task")
	}
	out := m.toDomain(append([]string(nil), t.Tags...))
	return &out, nil
}

// Update implements ports.TaskRepository. The tag set is replaced.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	m := toTaskModel(t)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&taskModel{ID: t.ID}).
			Select("title", "description", "status", "priority", "assignee_id", "project_id", "module_id",
				"due_date", "estimated_hours", "actual_hours", "completed_at", "updated_at").
			Updates(m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return writeTags(tx, t.ID, t.Tags)
	})
	if err != nil {
		return nil, translate(err, "task")
	}
	return r.FindByID(ctx, t.ID)
}

// Delete implements ports.TaskRepository.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&taskModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("task_id = ?", id).Delete(&taskTagModel{}).Error
	})
	return translate(err, "task")
}

// Count implements ports.TaskRepository.
func (r *TaskRepository) Count(ctx context.Context, f task.Filter) (int64, error) {
	var n int64
	if err := r.taskFilter(r.db.WithContext(ctx).Model(&taskModel{}), f).Count(&n).Error; err != nil {
		return 0, translate(err, "counting tasks")
	}
	return n, nil
}

// GroupByCount implements ports.TaskRepository.
func (r *TaskRepository) GroupByCount(ctx context.Context, field task.GroupField, f task.Filter) (map[string]int64, error) {
	col, err := groupColumn(string(field))
	if err != nil {
		return nil, err
	}
	out, err := groupCounts(r.taskFilter(r.db.WithContext(ctx).Model(&taskModel{}), f), col)
	if err != nil {
		return nil, translate(err, "grouping tasks")
	}
	return out, nil
}
