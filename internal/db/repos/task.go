package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pkarimi/taskboard/internal/db/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create creates a new task in the database
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by ID from the database
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetInProject retrieves a task by ID scoped to a project. A task that
// exists under a different project is reported as not found.
func (r *TaskRepository) GetInProject(ctx context.Context, projectID, taskID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", taskID, projectID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject retrieves all tasks for a specific project with pagination
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint, opts *models.ListOptions) ([]models.Task, error) {
	var tasks []models.Task
	query := r.db.WithContext(ctx).Where(models.Task{ProjectID: projectID}).Order("id")
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

// CountByProject returns the number of tasks attached to a project
func (r *TaskRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where(models.Task{ProjectID: projectID}).Count(&count).Error
	return count, err
}

// Update persists the mutated fields of an existing task. Save writes all
// columns, so clearing the deadline to NULL round-trips correctly.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task scoped to a project
func (r *TaskRepository) Delete(ctx context.Context, projectID, taskID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Delete(&models.Task{}).Error
}

// CloseOverdue marks every task with a deadline strictly before the given
// date and a status other than done as done, and returns how many rows
// changed. The read-modify-write runs as a single statement inside one
// transaction, so a concurrent manual status change cannot be lost or
// double-counted.
func (r *TaskRepository) CloseOverdue(ctx context.Context, before time.Time) (int64, error) {
	var closed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Task{}).
			Where("deadline IS NOT NULL AND deadline < ? AND status <> ?", before, models.TaskStatusDone).
			Update(models.TaskStatusField, models.TaskStatusDone)
		if result.Error != nil {
			return result.Error
		}
		closed = result.RowsAffected
		return nil
	})
	return closed, err
}
