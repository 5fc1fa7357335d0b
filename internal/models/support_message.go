package models

import (
	"time"

	"github.com/google/uuid"
)

// SupportMessage is a complaint or feedback message submitted from the app.
type SupportMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	Status    string    `gorm:"not null;default:'open';size:50" json:"status"`
	AdminNote string    `gorm:"size:1000" json:"admin_note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
