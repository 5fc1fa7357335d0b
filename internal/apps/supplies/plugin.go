package supplies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

type SuppliesPlugin struct{}

func New() *SuppliesPlugin {
	return &SuppliesPlugin{}
}

func (p *SuppliesPlugin) ID() string { return "supplies" }

func (p *SuppliesPlugin) Models() []interface{} {
	return []interface{}{
		&MedicalSupply{},
		&PharmacySupply{},
	}
}

func (p *SuppliesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewSupplyService(db)
	handler := NewSupplyHandler(svc)

	router.Get("/supplies/dashboard", handler.Dashboard)
	router.Get("/supplies/:kind", handler.List)
	router.Post("/supplies/:kind", handler.Add)
	router.Post("/supplies/:kind/:id/usage", handler.RecordUsage)
}
