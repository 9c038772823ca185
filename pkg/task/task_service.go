package task

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	TaskService interface {
		GetTasks(ctx context.Context) ([]*entities.Task, error)
		ToggleTask(ctx context.Context, id uint, isCompleted bool) (*entities.Task, error)
	}

	taskService struct {
		taskRepository TaskRepository
	}
)

func NewTaskService(taskRepository TaskRepository) TaskService {
	return &taskService{taskRepository: taskRepository}
}

func (s *taskService) GetTasks(ctx context.Context) ([]*entities.Task, error) {
	return s.taskRepository.GetTasks(ctx)
}

func (s *taskService) ToggleTask(ctx context.Context, id uint, isCompleted bool) (*entities.Task, error) {
	if err := s.taskRepository.SetTaskCompleted(ctx, id, isCompleted); err != nil {
		return nil, err
	}

	task, err := s.taskRepository.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}
