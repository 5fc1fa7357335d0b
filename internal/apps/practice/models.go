package practice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PracticeProfile is one record per user describing their practice.
type PracticeProfile struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	PracticeName string                      `gorm:"size:255" json:"practice_name,omitempty"`
	Address      string                      `gorm:"size:500" json:"address,omitempty"`
	City         string                      `gorm:"size:100" json:"city,omitempty"`
	State        string                      `gorm:"size:100" json:"state,omitempty"`
	Zip          string                      `gorm:"size:20" json:"zip,omitempty"`
	Phone        string                      `gorm:"size:50" json:"phone,omitempty"`
	Email        string                      `gorm:"size:255" json:"email,omitempty"`
	OpeningHours string                      `gorm:"size:255" json:"opening_hours,omitempty"`
	TeamMembers  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"team_members"`
	Notes        string                      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (PracticeProfile) TableName() string { return "practice_information" }

// SaveProfileRequest replaces the whole profile; omitted fields clear
// their stored values.
type SaveProfileRequest struct {
	PracticeName string   `json:"practice_name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" validate:"omitempty,email"`
	OpeningHours string   `json:"opening_hours"`
	TeamMembers  []string `json:"team_members"`
	Notes        string   `json:"notes"`
}
