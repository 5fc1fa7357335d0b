package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature module must implement.
type Plugin interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts module routes on the given Fiber group.
	// The group is already prefixed with /api/v1 and has JWT middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminPlugin extends Plugin with admin-specific route registration.
// Modules that implement this interface can register additional admin-only routes.
type AdminPlugin interface {
	Plugin

	// RegisterAdminRoutes mounts admin-only routes on the given Fiber group.
	// The group has both JWT and Admin middleware applied.
	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// WebhookPlugin extends Plugin with webhook route registration for modules
// that ingest records from external systems (no JWT; per-route auth instead).
type WebhookPlugin interface {
	Plugin

	// RegisterWebhooks mounts webhook routes on the given Fiber group.
	RegisterWebhooks(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
