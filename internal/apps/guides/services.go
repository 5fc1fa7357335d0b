package guides

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vocesapp/voces-backend/internal/validation"
)

var ErrGuideNotFound = errors.New("guide not found")

type GuideService struct {
	db *gorm.DB
}

func NewGuideService(db *gorm.DB) *GuideService {
	return &GuideService{db: db}
}

func (s *GuideService) ListGuides() ([]Guide, error) {
	var guides []Guide
	if err := s.db.Order("created_at DESC").Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}

func (s *GuideService) GetGuide(id uuid.UUID) (*Guide, error) {
	var guide Guide
	if err := s.db.Where("id = ?", id).First(&guide).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}
	return &guide, nil
}

func (s *GuideService) CreateGuide(req UpsertGuideRequest) (*Guide, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	guide := Guide{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Content:     req.Content,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		Favorite:    req.Favorite,
		Icon:        req.Icon,
	}
	if err := s.db.Create(&guide).Error; err != nil {
		return nil, err
	}
	return &guide, nil
}

func (s *GuideService) UpdateGuide(id uuid.UUID, req UpsertGuideRequest) (*Guide, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	guide, err := s.GetGuide(id)
	if err != nil {
		return nil, err
	}

	guide.Title = req.Title
	guide.Category = req.Category
	guide.Description = req.Description
	guide.Content = req.Content
	guide.Duration = req.Duration
	guide.Difficulty = req.Difficulty
	guide.Favorite = req.Favorite
	guide.Icon = req.Icon
	if err := s.db.Save(guide).Error; err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *GuideService) DeleteGuide(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&Guide{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGuideNotFound
	}
	return nil
}
