package handlers

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/internal/api/presenters"
	"Agro-Assistant-Backend/pkg/plant"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	PlantHandler interface {
		GetPlants(c *fiber.Ctx) error
		GetPlantDetails(c *fiber.Ctx) error
	}

	plantHandler struct {
		plantService plant.PlantService
	}
)

func NewPlantHandler(plantService plant.PlantService) PlantHandler {
	return &plantHandler{plantService: plantService}
}

func (h *plantHandler) GetPlants(c *fiber.Ctx) error {
	res, err := h.plantService.GetPlants(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPlants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *plantHandler) GetPlantDetails(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}

	res, err := h.plantService.GetPlantByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessagePlantNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPlants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
