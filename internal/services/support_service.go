package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vocesapp/voces-backend/internal/dto"
	"github.com/vocesapp/voces-backend/internal/models"
	"github.com/vocesapp/voces-backend/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("support message not found")
)

var BannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch", "cunt",
	"spam", "scam", "scammer", "phishing", "malware",
}

// SupportService handles complaint/feedback messages submitted from the app.
type SupportService struct {
	db                  *gorm.DB
	bannedWordRegexps   []*regexp.Regexp
	urlPattern          *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
	compiled            bool
	mu                  sync.RWMutex
}

func NewSupportService(db *gorm.DB) *SupportService {
	s := &SupportService{db: db}
	s.compilePatterns()
	return s
}

func (s *SupportService) compilePatterns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.compiled {
		return
	}

	s.bannedWordRegexps = make([]*regexp.Regexp, 0, len(BannedWords))
	for _, word := range BannedWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		re, err := regexp.Compile(pattern)
		if err == nil {
			s.bannedWordRegexps = append(s.bannedWordRegexps, re)
		}
	}

	s.urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`)
	s.repeatedCharPattern = regexp.MustCompile(`(?i)(a{6,}|b{6,}|c{6,}|d{6,}|e{6,}|f{6,}|g{6,}|h{6,}|i{6,}|j{6,}|k{6,}|l{6,}|m{6,}|n{6,}|o{6,}|p{6,}|q{6,}|r{6,}|s{6,}|t{6,}|u{6,}|v{6,}|w{6,}|x{6,}|y{6,}|z{6,}|!{6,}|\?{6,}|\.{6,})`)
	s.compiled = true
}

// FilterContent returns (accepted, reason). Support messages frequently quote
// frustrating situations, so the filter is looser than a public-UGC one.
func (s *SupportService) FilterContent(text string) (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if text == "" {
		return true, ""
	}
	for _, re := range s.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_language"
		}
	}
	if s.urlPattern.MatchString(text) {
		return false, "url_not_allowed"
	}
	if s.repeatedCharPattern.MatchString(text) {
		return false, "spam_detected"
	}
	return true, ""
}

func (s *SupportService) GetRejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_language": "Your message contains inappropriate language.",
		"url_not_allowed":        "URLs and web links are not allowed.",
		"spam_detected":          "Your message appears to be spam.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your message does not meet our content guidelines."
}

func (s *SupportService) CreateMessage(userID uuid.UUID, req *dto.CreateSupportMessageRequest) (*models.SupportMessage, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("message is required")
	}

	if ok, reason := s.FilterContent(req.Message); !ok {
		return nil, errors.New(s.GetRejectionMessage(reason))
	}

	msg := models.SupportMessage{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  "open",
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create support message: %w", err)
	}
	return &msg, nil
}

func (s *SupportService) ListMessages(status string, limit, offset int) ([]models.SupportMessage, int64, error) {
	var messages []models.SupportMessage
	var total int64

	query := s.db.Model(&models.SupportMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (s *SupportService) ActionMessage(messageID uuid.UUID, req *dto.ActionSupportMessageRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	result := s.db.Model(&models.SupportMessage{}).
		Where("id = ?", messageID).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"admin_note": req.AdminNote,
		})
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return result.Error
}
