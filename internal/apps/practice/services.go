package practice

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vocesapp/voces-backend/internal/session"
	"github.com/vocesapp/voces-backend/internal/validation"
)

var ErrProfileNotFound = errors.New("practice profile not found")

type PracticeService struct {
	db *gorm.DB
}

func NewPracticeService(db *gorm.DB) *PracticeService {
	return &PracticeService{db: db}
}

func (s *PracticeService) GetProfile(userID uuid.UUID) (*PracticeProfile, error) {
	var profile PracticeProfile
	if err := s.db.Scopes(session.ForOwner(userID)).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SaveProfile replaces the user's profile wholesale; the request is the
// new state, so omitted fields end up empty rather than untouched.
func (s *PracticeService) SaveProfile(userID uuid.UUID, req SaveProfileRequest) (*PracticeProfile, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	team := req.TeamMembers
	if team == nil {
		team = []string{}
	}

	var profile PracticeProfile
	err := s.db.Scopes(session.ForOwner(userID)).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = PracticeProfile{ID: uuid.New(), UserID: userID}
	}

	profile.PracticeName = req.PracticeName
	profile.Address = req.Address
	profile.City = req.City
	profile.State = req.State
	profile.Zip = req.Zip
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.OpeningHours = req.OpeningHours
	profile.TeamMembers = team
	profile.Notes = req.Notes

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
