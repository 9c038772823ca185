package handlers

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/internal/api/presenters"
	"Agro-Assistant-Backend/pkg/trend"

	"github.com/gofiber/fiber/v2"
)

type (
	TrendHandler interface {
		GetTrends(c *fiber.Ctx) error
	}

	trendHandler struct {
		trendService trend.TrendService
	}
)

func NewTrendHandler(trendService trend.TrendService) TrendHandler {
	return &trendHandler{trendService: trendService}
}

func (h *trendHandler) GetTrends(c *fiber.Ctx) error {
	search := c.Query("search")

	res, err := h.trendService.GetTrends(c.Context(), search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTrends, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
