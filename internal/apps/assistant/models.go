package assistant

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Device links a voice-assistant endpoint to an app user. DeviceID is
// the identifier the skill reports, not something we mint.
type Device struct {
	DeviceID  string    `gorm:"primaryKey;size:255" json:"device_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"size:255" json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Device) TableName() string { return "devices" }

// Message is one turn of an emergency conversation.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is written by the skill's webhook and read-only for app
// clients.
type Conversation struct {
	ConversationID    string                       `gorm:"primaryKey;size:255" json:"conversation_id"`
	DeviceID          string                       `gorm:"not null;index;size:255" json:"device_id"`
	StartTimestamp    time.Time                    `gorm:"not null;index" json:"start_timestamp"`
	EndTimestamp      *time.Time                   `json:"end_timestamp,omitempty"`
	Status            string                       `gorm:"size:20;default:active" json:"status"`
	EmergencyType     string                       `gorm:"size:100" json:"emergency_type,omitempty"`
	SymptomsDescribed string                       `gorm:"type:text" json:"symptoms_described,omitempty"`
	Messages          datatypes.JSONSlice[Message] `gorm:"type:jsonb" json:"messages"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
}

func (Conversation) TableName() string { return "alexa_emergency" }

// --- DTOs ---

type ClaimDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	Name     string `json:"name"`
}

// RegisterDeviceRequest comes from the skill backend; the account-link
// email identifies which user the device belongs to.
type RegisterDeviceRequest struct {
	DeviceID  string `json:"device_id" validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
	Name      string `json:"name"`
}

type IngestConversationRequest struct {
	ConversationID    string     `json:"conversation_id" validate:"required"`
	DeviceID          string     `json:"device_id" validate:"required"`
	StartTimestamp    time.Time  `json:"start_timestamp" validate:"required"`
	EndTimestamp      *time.Time `json:"end_timestamp"`
	Status            string     `json:"status" validate:"omitempty,oneof=active completed"`
	EmergencyType     string     `json:"emergency_type"`
	SymptomsDescribed string     `json:"symptoms_described"`
	Messages          []Message  `json:"messages" validate:"required,min=1"`
}

type StatsResponse struct {
	TotalDevices            int    `json:"total_devices"`
	TotalConversations      int    `json:"total_conversations"`
	ActiveConversations     int    `json:"active_conversations"`
	MostCommonEmergencyType string `json:"most_common_emergency_type"`
}
