package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Priority values: 1=low, 2=medium, 3=high.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// ProjectColors is the palette offered by the client for new projects.
var ProjectColors = []string{
	"#0079bf", "#d29034", "#519839", "#b04632", "#89609e",
	"#cd5a91", "#4bbf6b", "#00aecc", "#838c91",
}

const DefaultProjectColor = "#0079bf"

type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProjectID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	Name          string     `gorm:"not null;size:255" json:"name"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Priority      int        `gorm:"default:2" json:"priority"`
	DueDate       *time.Time `gorm:"type:date" json:"due_date"`
	DateAdded     time.Time  `gorm:"not null;index" json:"date_added"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	DateCompleted *time.Time `json:"date_completed"`
}

// Table name kept compatible with the mobile client's record contract.
func (Task) TableName() string { return "todos_items" }

type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Color     string    `gorm:"size:7" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (Project) TableName() string { return "todos_projects" }

// --- DTOs ---

type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"omitempty,oneof=1 2 3"`
	DueDate     string `json:"due_date"` // "2006-01-02", optional
	ProjectID   string `json:"project_id" validate:"required,uuid"`
}

type CreateProjectRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// TaskListResponse carries the raw projects plus the completion partition the
// client renders directly ("Today's Tasks" / "Completed" sections).
type TaskListResponse struct {
	Projects  []Project `json:"projects"`
	Active    []Task    `json:"active"`
	Completed []Task    `json:"completed"`
	Total     int       `json:"total"`
}

// ToggleResponse is the reconciliation result for an optimistic client-side
// toggle: the record as the store now holds it.
type ToggleResponse struct {
	Task Task `json:"task"`
}
