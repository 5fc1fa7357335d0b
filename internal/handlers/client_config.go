package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vocesapp/voces-backend/internal/config"
	"github.com/vocesapp/voces-backend/internal/dto"
	"github.com/vocesapp/voces-backend/internal/models"
	"gorm.io/gorm"
)

type ClientConfigHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewClientConfigHandler(db *gorm.DB, cfg *config.Config) *ClientConfigHandler {
	return &ClientConfigHandler{db: db, cfg: cfg}
}

// GetConfig returns the full client configuration as a flat key-value map.
func (h *ClientConfigHandler) GetConfig(c *fiber.Ctx) error {
	var configs []models.ClientConfig
	if err := h.db.Find(&configs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Failed to fetch configuration",
		})
	}

	result := make(map[string]interface{})
	for _, cfg := range configs {
		var value interface{}
		switch cfg.Type {
		case "bool":
			value, _ = strconv.ParseBool(cfg.Value)
		case "int":
			value, _ = strconv.Atoi(cfg.Value)
		case "json":
			json.Unmarshal([]byte(cfg.Value), &value)
		default:
			value = cfg.Value
		}
		result[cfg.Key] = value
	}

	return c.JSON(result)
}

// SetConfigKey sets or updates a config key (admin only).
func (h *ClientConfigHandler) SetConfigKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Key parameter is required",
		})
	}

	var payload struct {
		Value string `json:"value"`
		Type  string `json:"type"` // string, bool, int, json
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Invalid request body",
		})
	}

	if payload.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Value is required",
		})
	}

	if payload.Type == "" {
		payload.Type = "string"
	}

	var entry models.ClientConfig
	err := h.db.Where("key = ?", key).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		entry = models.ClientConfig{
			ID:        uuid.New(),
			Key:       key,
			Value:     payload.Value,
			Type:      payload.Type,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := h.db.Create(&entry).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Failed to create config",
			})
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Failed to query config",
		})
	} else {
		entry.Value = payload.Value
		entry.Type = payload.Type
		entry.UpdatedAt = time.Now()
		if err := h.db.Save(&entry).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Failed to update config",
			})
		}
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Config updated successfully",
		"config": fiber.Map{
			"key":   entry.Key,
			"value": entry.Value,
			"type":  entry.Type,
		},
	})
}

// DeleteConfigKey deletes a config key (admin only).
func (h *ClientConfigHandler) DeleteConfigKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Key parameter is required",
		})
	}

	result := h.db.Where("key = ?", key).Delete(&models.ClientConfig{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Failed to delete config",
		})
	}

	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Config not found",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Config deleted successfully",
	})
}

// SeedDefaults creates default configuration values if missing.
func (h *ClientConfigHandler) SeedDefaults() error {
	defaults := []struct {
		Key   string
		Value string
		Type  string
	}{
		{"app_name", "VocesApp", "string"},
		{"support_email", h.cfg.SupportEmail, "string"},
		{"support_phone", h.cfg.SupportPhone, "string"},
		{"supply_units", `["ml","tablets","vials","ampoules","capsules"]`, "json"},
		{"supply_categories", `["antibiotic","antiseptic","analgesic","emergency","anesthetic"]`, "json"},
		{"expiry_warning_days", "30", "int"},
		{"maintenance_mode", "false", "bool"},
	}

	for _, d := range defaults {
		var existing models.ClientConfig
		err := h.db.Where("key = ?", d.Key).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			entry := models.ClientConfig{
				ID:    uuid.New(),
				Key:   d.Key,
				Value: d.Value,
				Type:  d.Type,
			}
			if err := h.db.Create(&entry).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
