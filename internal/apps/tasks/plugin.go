package tasks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
	"gorm.io/gorm"
)

type TasksPlugin struct{}

func New() *TasksPlugin {
	return &TasksPlugin{}
}

func (p *TasksPlugin) ID() string { return "tasks" }

func (p *TasksPlugin) Models() []interface{} {
	return []interface{}{
		&Task{},
		&Project{},
	}
}

func (p *TasksPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewTaskService(db)
	handler := NewTaskHandler(svc)

	router.Get("/tasks", handler.List)
	router.Post("/tasks", handler.Create)
	router.Patch("/tasks/:id/toggle", handler.Toggle)
	router.Get("/projects", handler.ListProjects)
	router.Post("/projects", handler.CreateProject)
}
