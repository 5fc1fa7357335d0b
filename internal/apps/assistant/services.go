package assistant

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vocesapp/voces-backend/internal/models"
	"github.com/vocesapp/voces-backend/internal/session"
	"github.com/vocesapp/voces-backend/internal/validation"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrUserNotFound   = errors.New("no account matches that email")
	ErrDeviceClaimed  = errors.New("device is already linked to another account")
)

type AssistantService struct {
	db *gorm.DB
}

func NewAssistantService(db *gorm.DB) *AssistantService {
	return &AssistantService{db: db}
}

func (s *AssistantService) ListDevices(userID uuid.UUID) ([]Device, error) {
	var devices []Device
	if err := s.db.Scopes(session.ForOwner(userID)).
		Order("created_at ASC").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// ClaimDevice links a skill-reported device to the calling user. A
// device already linked elsewhere is refused rather than re-homed.
func (s *AssistantService) ClaimDevice(userID uuid.UUID, req ClaimDeviceRequest) (*Device, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var existing Device
	err := s.db.Where("device_id = ?", req.DeviceID).First(&existing).Error
	if err == nil {
		if existing.UserID != userID {
			return nil, ErrDeviceClaimed
		}
		if req.Name != "" && req.Name != existing.Name {
			existing.Name = req.Name
			if err := s.db.Model(&existing).Update("name", req.Name).Error; err != nil {
				return nil, err
			}
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	device := Device{
		DeviceID: req.DeviceID,
		UserID:   userID,
		Name:     req.Name,
	}
	if err := s.db.Create(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// RegisterDevice handles the skill's account-linking callback: the
// device is attached to the user whose email completed the link. Unlike
// ClaimDevice the skill is authoritative, so an existing link is moved.
func (s *AssistantService) RegisterDevice(req RegisterDeviceRequest) (*Device, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", req.UserEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	device := Device{
		DeviceID:  req.DeviceID,
		UserID:    user.ID,
		Name:      req.Name,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "name", "updated_at"}),
	}).Create(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// ListConversations resolves the user's device IDs first and only then
// queries the conversation table, filtered to those IDs. A user without
// devices short-circuits to an empty slice; the conversation table is
// never queried unfiltered.
func (s *AssistantService) ListConversations(userID uuid.UUID) ([]Conversation, error) {
	deviceIDs, err := s.deviceIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(deviceIDs) == 0 {
		return []Conversation{}, nil
	}

	var convs []Conversation
	if err := s.db.Where("device_id IN ?", deviceIDs).
		Order("start_timestamp DESC").
		Find(&convs).Error; err != nil {
		return nil, err
	}
	return convs, nil
}

func (s *AssistantService) Stats(userID uuid.UUID) (*StatsResponse, error) {
	deviceIDs, err := s.deviceIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(deviceIDs) == 0 {
		return &StatsResponse{MostCommonEmergencyType: MostCommonEmergencyType(nil)}, nil
	}

	var convs []Conversation
	if err := s.db.Where("device_id IN ?", deviceIDs).
		Order("start_timestamp DESC").
		Find(&convs).Error; err != nil {
		return nil, err
	}

	active := 0
	for _, conv := range convs {
		if conv.Status == StatusActive {
			active++
		}
	}

	return &StatsResponse{
		TotalDevices:            len(deviceIDs),
		TotalConversations:      len(convs),
		ActiveConversations:     active,
		MostCommonEmergencyType: MostCommonEmergencyType(convs),
	}, nil
}

// IngestConversation upserts a conversation reported by the skill
// webhook. The device must already be registered so records can never
// become orphaned.
func (s *AssistantService) IngestConversation(req IngestConversationRequest) (*Conversation, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var device Device
	if err := s.db.Where("device_id = ?", req.DeviceID).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	conv := Conversation{
		ConversationID:    req.ConversationID,
		DeviceID:          req.DeviceID,
		StartTimestamp:    req.StartTimestamp,
		EndTimestamp:      req.EndTimestamp,
		Status:            status,
		EmergencyType:     req.EmergencyType,
		SymptomsDescribed: req.SymptomsDescribed,
		Messages:          req.Messages,
		UpdatedAt:         time.Now().UTC(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "conversation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"end_timestamp", "status", "emergency_type",
			"symptoms_described", "messages", "updated_at",
		}),
	}).Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *AssistantService) deviceIDs(userID uuid.UUID) ([]string, error) {
	var ids []string
	if err := s.db.Model(&Device{}).
		Scopes(session.ForOwner(userID)).
		Pluck("device_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
