package task

import (
	"Agro-Assistant-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TaskRepository interface {
		GetTasks(ctx context.Context) ([]*entities.Task, error)
		GetTaskByID(ctx context.Context, id uint) (*entities.Task, error)
		SetTaskCompleted(ctx context.Context, id uint, isCompleted bool) error
	}

	taskRepository struct {
		db *gorm.DB
	}
)

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetTasks(ctx context.Context) ([]*entities.Task, error) {
	tasks := make([]*entities.Task, 0)
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetTaskByID(ctx context.Context, id uint) (*entities.Task, error) {
	var task entities.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// SetTaskCompleted touches only the completion flag, never the other columns.
func (r *taskRepository) SetTaskCompleted(ctx context.Context, id uint, isCompleted bool) error {
	return r.db.WithContext(ctx).Model(&entities.Task{}).
		Where("id = ?", id).
		Update("is_completed", isCompleted).Error
}
