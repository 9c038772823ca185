package handlers

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/internal/api/presenters"
	"Agro-Assistant-Backend/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		SendMessage(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) SendMessage(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.chatService.SendMessage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *chatHandler) GetHistory(c *fiber.Ctx) error {
	res, err := h.chatService.GetHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
