package supplies

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vocesapp/voces-backend/internal/dto"
	"github.com/vocesapp/voces-backend/internal/session"
)

type SupplyHandler struct {
	service *SupplyService
}

func NewSupplyHandler(service *SupplyService) *SupplyHandler {
	return &SupplyHandler{service: service}
}

func kindParam(c *fiber.Ctx) (Kind, bool) {
	kind := Kind(c.Params("kind"))
	if kind != KindMedical && kind != KindPharmacy {
		return "", false
	}
	return kind, true
}

func (h *SupplyHandler) List(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	kind, ok := kindParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Supply kind must be 'medical' or 'pharmacy'",
		})
	}

	items, err := h.service.ListSupplies(userID, kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch supplies",
		})
	}

	return c.JSON(items)
}

func (h *SupplyHandler) Add(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	kind, ok := kindParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Supply kind must be 'medical' or 'pharmacy'",
		})
	}

	var req AddSupplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.service.AddSupply(userID, kind, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// RecordUsage rejects the whole request before any write when the amount
// is missing, non-numeric or not positive.
func (h *SupplyHandler) RecordUsage(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	kind, ok := kindParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Supply kind must be 'medical' or 'pharmacy'",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	var req RecordUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Usage amount must be a number",
		})
	}

	item, err := h.service.RecordUsage(userID, kind, itemID, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(item)
}

func (h *SupplyHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	summary, err := h.service.Dashboard(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build dashboard",
		})
	}

	return c.JSON(summary)
}
