package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskbot/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	GetAll(ctx context.Context) ([]model.Task, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Update(ctx context.Context, id uint, upd model.TaskUpdate) error
	Delete(ctx context.Context, id uint) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database. The task ID and timestamps are
// assigned by the store.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "task_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetAll retrieves every task regardless of owner, in insertion order
func (r *TaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Order("task_id").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByUser retrieves all tasks owned by userID, in insertion order
func (r *TaskRepository) GetByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("task_id").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update applies the supplied fields to a task in a single UPDATE, so
// concurrent partial updates to the same row cannot interleave field by
// field. The updated_at column is refreshed by GORM.
func (r *TaskRepository) Update(ctx context.Context, id uint, upd model.TaskUpdate) error {
	if upd.Empty() {
		// Nothing to write; still report unknown IDs.
		_, err := r.GetByID(ctx, id)
		return err
	}

	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Status != nil {
		fields["status"] = string(*upd.Status)
	}
	if upd.DueDate.Set {
		if upd.DueDate.Value != nil {
			fields["due_date"] = upd.DueDate.Value.Time()
		} else {
			fields["due_date"] = nil
		}
	}

	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("task_id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "task_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
