package guides

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vocesapp/voces-backend/internal/dto"
)

type GuideHandler struct {
	service *GuideService
}

func NewGuideHandler(service *GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

func (h *GuideHandler) List(c *fiber.Ctx) error {
	guides, err := h.service.ListGuides()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch guides",
		})
	}

	return c.JSON(guides)
}

func (h *GuideHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid guide ID",
		})
	}

	guide, err := h.service.GetGuide(id)
	if err != nil {
		if errors.Is(err, ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch guide",
		})
	}

	return c.JSON(guide)
}

func (h *GuideHandler) Create(c *fiber.Ctx) error {
	var req UpsertGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	guide, err := h.service.CreateGuide(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(guide)
}

func (h *GuideHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid guide ID",
		})
	}

	var req UpsertGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	guide, err := h.service.UpdateGuide(id, req)
	if err != nil {
		if errors.Is(err, ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(guide)
}

func (h *GuideHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid guide ID",
		})
	}

	if err := h.service.DeleteGuide(id); err != nil {
		if errors.Is(err, ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete guide",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
