package guides

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

type GuidesPlugin struct{}

func New() *GuidesPlugin {
	return &GuidesPlugin{}
}

func (p *GuidesPlugin) ID() string { return "guides" }

func (p *GuidesPlugin) Models() []interface{} {
	return []interface{}{
		&Guide{},
	}
}

func (p *GuidesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewGuideService(db)
	handler := NewGuideHandler(svc)

	router.Get("/guides", handler.List)
	router.Get("/guides/:id", handler.Get)
}

func (p *GuidesPlugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewGuideService(db)
	handler := NewGuideHandler(svc)

	router.Post("/guides", handler.Create)
	router.Put("/guides/:id", handler.Update)
	router.Delete("/guides/:id", handler.Delete)
}
