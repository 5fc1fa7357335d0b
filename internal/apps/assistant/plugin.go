package assistant

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

type AssistantPlugin struct{}

func New() *AssistantPlugin {
	return &AssistantPlugin{}
}

func (p *AssistantPlugin) ID() string { return "assistant" }

func (p *AssistantPlugin) Models() []interface{} {
	return []interface{}{
		&Device{},
		&Conversation{},
	}
}

func (p *AssistantPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewAssistantService(db)
	handler := NewAssistantHandler(svc, cfg.AssistantWebhookToken)

	router.Get("/assistant/devices", handler.ListDevices)
	router.Post("/assistant/devices", handler.ClaimDevice)
	router.Get("/assistant/conversations", handler.ListConversations)
	router.Get("/assistant/stats", handler.Stats)
}

func (p *AssistantPlugin) RegisterWebhooks(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewAssistantService(db)
	handler := NewAssistantHandler(svc, cfg.AssistantWebhookToken)

	router.Post("/assistant/devices", handler.RegisterDevice)
	router.Post("/assistant/conversations", handler.IngestConversation)
}
