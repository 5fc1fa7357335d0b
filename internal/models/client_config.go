package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientConfig stores key-value configuration served to the mobile client
// (supply units/categories, support contact, feature toggles).
type ClientConfig struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Type      string    `gorm:"size:20;default:'string'" json:"type"` // string, bool, int, json
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cc *ClientConfig) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}
	return nil
}

func (ClientConfig) TableName() string {
	return "client_configs"
}
