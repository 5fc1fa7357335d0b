package guides

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guide is reference material shown to every user; only admins write.
type Guide struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Category    string    `gorm:"size:100" json:"category,omitempty"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Duration    string    `gorm:"size:50" json:"duration,omitempty"`
	Difficulty  string    `gorm:"size:50" json:"difficulty,omitempty"`
	Favorite    bool      `gorm:"default:false" json:"favorite"`
	Icon        string    `gorm:"size:50" json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Guide) TableName() string { return "guides" }

func (g *Guide) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type UpsertGuideRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Favorite    bool   `json:"favorite"`
	Icon        string `json:"icon"`
}
