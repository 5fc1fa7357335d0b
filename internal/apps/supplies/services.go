package supplies

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vocesapp/voces-backend/internal/session"
	"github.com/vocesapp/voces-backend/internal/validation"
)

var (
	ErrItemNotFound          = errors.New("supply item not found")
	ErrUnknownKind           = errors.New("unknown supply kind")
	ErrInvalidExpirationDate = errors.New("expiration_date must be formatted as YYYY-MM-DD")
)

type SupplyService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSupplyService(db *gorm.DB) *SupplyService {
	return &SupplyService{db: db, now: time.Now}
}

func tableFor(kind Kind) (string, error) {
	switch kind {
	case KindMedical:
		return medicalTable, nil
	case KindPharmacy:
		return pharmacyTable, nil
	default:
		return "", ErrUnknownKind
	}
}

// ListSupplies returns every item of one kind for the user, alphabetized
// by drug name.
func (s *SupplyService) ListSupplies(userID uuid.UUID, kind Kind) ([]SupplyItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var items []SupplyItem
	if err := s.db.Table(table).
		Scopes(session.ForOwner(userID)).
		Order("drug_name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SupplyService) AddSupply(userID uuid.UUID, kind Kind, req AddSupplyRequest) (*SupplyItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var expiration *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return nil, ErrInvalidExpirationDate
		}
		expiration = &parsed
	}

	item := SupplyItem{
		ID:                uuid.New(),
		UserID:            userID,
		DrugName:          req.DrugName,
		GenericName:       req.GenericName,
		Manufacturer:      req.Manufacturer,
		LotNumber:         req.LotNumber,
		ExpirationDate:    expiration,
		Quantity:          *req.Quantity,
		UnitOfMeasure:     req.UnitOfMeasure,
		Category:          req.Category,
		StorageConditions: req.StorageConditions,
		Notes:             req.Notes,
		UsageHistory:      []UsageEntry{},
	}
	if err := s.db.Table(table).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RecordUsage decrements an item's quantity and prepends an entry to its
// usage history. The request is validated in full before any write; a
// usage larger than the remaining stock drains the item to zero.
func (s *SupplyService) RecordUsage(userID uuid.UUID, kind Kind, itemID uuid.UUID, req RecordUsageRequest) (*SupplyItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var item SupplyItem
	if err := s.db.Table(table).
		Scopes(session.ForOwner(userID)).
		Where("id = ?", itemID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	entry := UsageEntry{
		Amount:    *req.Amount,
		Notes:     req.Notes,
		Timestamp: s.now().UTC(),
	}
	item.Quantity = ApplyUsage(item.Quantity, *req.Amount)
	item.UsageHistory = append([]UsageEntry{entry}, item.UsageHistory...)

	if err := s.db.Table(table).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity":      item.Quantity,
			"usage_history": item.UsageHistory,
			"updated_at":    s.now().UTC(),
		}).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Dashboard aggregates both tracking tables into the landing-screen
// summary: counts, soonest expirations, latest usage and the dominant
// category. Medical items come first in the combined ordering so ties
// in the derivations resolve toward them.
func (s *SupplyService) Dashboard(userID uuid.UUID) (*DashboardResponse, error) {
	medical, err := s.ListSupplies(userID, KindMedical)
	if err != nil {
		return nil, err
	}
	pharmacy, err := s.ListSupplies(userID, KindPharmacy)
	if err != nil {
		return nil, err
	}

	combined := make([]SupplyItem, 0, len(medical)+len(pharmacy))
	combined = append(combined, medical...)
	combined = append(combined, pharmacy...)

	return &DashboardResponse{
		TotalMedical:       len(medical),
		TotalPharmacy:      len(pharmacy),
		ExpiringSoon:       ExpiringSoon(combined, s.now()),
		RecentlyUsed:       RecentlyUsed(combined),
		MostCommonCategory: MostCommonCategory(combined),
	}, nil
}

// AllSupplies returns both kinds for callers that need the raw records,
// medical first.
func (s *SupplyService) AllSupplies(userID uuid.UUID) ([]SupplyItem, error) {
	medical, err := s.ListSupplies(userID, KindMedical)
	if err != nil {
		return nil, err
	}
	pharmacy, err := s.ListSupplies(userID, KindPharmacy)
	if err != nil {
		return nil, err
	}
	return append(medical, pharmacy...), nil
}
