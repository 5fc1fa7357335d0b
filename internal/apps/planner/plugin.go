package planner

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

// PlannerPlugin has no tables of its own; it reads what the tasks and
// supplies modules migrated.
type PlannerPlugin struct{}

func New() *PlannerPlugin {
	return &PlannerPlugin{}
}

func (p *PlannerPlugin) ID() string { return "planner" }

func (p *PlannerPlugin) Models() []interface{} { return nil }

func (p *PlannerPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewPlannerService(db)
	handler := NewPlannerHandler(svc)

	router.Get("/calendar", handler.Calendar)
}
