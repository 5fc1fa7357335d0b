package planner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/dto"
	"github.com/vocesapp/voces-backend/internal/session"
)

type PlannerHandler struct {
	service *PlannerService
}

func NewPlannerHandler(service *PlannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

func (h *PlannerHandler) Calendar(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.service.Calendar(userID, c.Query("selected"), c.Query("tz"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidTimezone) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build calendar",
		})
	}

	return c.JSON(resp)
}
