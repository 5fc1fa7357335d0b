package practice

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/dto"
	"github.com/vocesapp/voces-backend/internal/session"
)

type PracticeHandler struct {
	service *PracticeService
}

func NewPracticeHandler(service *PracticeService) *PracticeHandler {
	return &PracticeHandler{service: service}
}

func (h *PracticeHandler) Get(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	return c.JSON(profile)
}

func (h *PracticeHandler) Save(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.service.SaveProfile(userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(profile)
}
