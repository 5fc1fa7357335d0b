package practice

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

type PracticePlugin struct{}

func New() *PracticePlugin {
	return &PracticePlugin{}
}

func (p *PracticePlugin) ID() string { return "practice" }

func (p *PracticePlugin) Models() []interface{} {
	return []interface{}{
		&PracticeProfile{},
	}
}

func (p *PracticePlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewPracticeService(db)
	handler := NewPracticeHandler(svc)

	router.Get("/practice", handler.Get)
	router.Put("/practice", handler.Save)
}
