package assistant

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/dto"
	"github.com/vocesapp/voces-backend/internal/session"
)

type AssistantHandler struct {
	service      *AssistantService
	webhookToken string
}

func NewAssistantHandler(service *AssistantService, webhookToken string) *AssistantHandler {
	return &AssistantHandler{service: service, webhookToken: webhookToken}
}

func (h *AssistantHandler) ListDevices(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	devices, err := h.service.ListDevices(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch devices",
		})
	}

	return c.JSON(devices)
}

func (h *AssistantHandler) ClaimDevice(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req ClaimDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	device, err := h.service.ClaimDevice(userID, req)
	if err != nil {
		if errors.Is(err, ErrDeviceClaimed) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(device)
}

func (h *AssistantHandler) ListConversations(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	convs, err := h.service.ListConversations(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch conversations",
		})
	}

	return c.JSON(convs)
}

func (h *AssistantHandler) Stats(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	stats, err := h.service.Stats(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}

	return c.JSON(stats)
}

func (h *AssistantHandler) webhookAuthorized(c *fiber.Ctx) bool {
	token := c.Get("X-Webhook-Token")
	return h.webhookToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookToken)) == 1
}

// RegisterDevice is the skill's account-linking callback, authenticated
// with a shared token instead of a JWT.
func (h *AssistantHandler) RegisterDevice(c *fiber.Ctx) error {
	if !h.webhookAuthorized(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	device, err := h.service.RegisterDevice(req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(device)
}

// IngestConversation is called by the skill backend, not by app clients.
func (h *AssistantHandler) IngestConversation(c *fiber.Ctx) error {
	if !h.webhookAuthorized(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req IngestConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	conv, err := h.service.IngestConversation(req)
	if err != nil {
		if errors.Is(err, ErrDeviceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(conv)
}
