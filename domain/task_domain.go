package domain

import "errors"

var (
	MessageTaskNotFound     = "Task not found"
	MessageFailedGetTasks   = "failed to retrieve tasks"
	MessageFailedToggleTask = "failed to update task"

	ErrTaskNotFound = errors.New("task not found")
)

type (
	// ToggleTaskRequest carries the completion flag only. IsCompleted is a
	// pointer so that an explicit false still passes required validation.
	ToggleTaskRequest struct {
		IsCompleted *bool `json:"isCompleted" validate:"required"`
	}
)
