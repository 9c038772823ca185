package handlers

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/internal/api/presenters"
	"Agro-Assistant-Backend/pkg/task"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TaskHandler interface {
		GetTasks(c *fiber.Ctx) error
		ToggleTask(c *fiber.Ctx) error
	}

	taskHandler struct {
		taskService task.TaskService
		validator   *validator.Validate
	}
)

func NewTaskHandler(taskService task.TaskService, validator *validator.Validate) TaskHandler {
	return &taskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

func (h *taskHandler) GetTasks(c *fiber.Ctx) error {
	res, err := h.taskService.GetTasks(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *taskHandler) ToggleTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}

	req := new(domain.ToggleTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.taskService.ToggleTask(c.Context(), uint(id), *req.IsCompleted)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageTaskNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
