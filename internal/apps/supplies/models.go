package supplies

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Kind selects which tracking table a request targets.
type Kind string

const (
	KindMedical  Kind = "medical"
	KindPharmacy Kind = "pharmacy"
)

const (
	medicalTable  = "medicaltracking"
	pharmacyTable = "pharmacytracking"
)

// ExpiryWindowDays is how far ahead the dashboard looks for expirations.
const ExpiryWindowDays = 30

// UsageEntry is one consumption event; the newest entry sits at index 0.
type UsageEntry struct {
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SupplyItem is the shared record shape of both tracking tables.
type SupplyItem struct {
	ID                uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID                       `gorm:"type:uuid;not null;index" json:"user_id"`
	DrugName          string                          `gorm:"not null;size:255" json:"drug_name"`
	GenericName       string                          `gorm:"size:255" json:"generic_name,omitempty"`
	Manufacturer      string                          `gorm:"size:255" json:"manufacturer,omitempty"`
	LotNumber         string                          `gorm:"size:100" json:"lot_number,omitempty"`
	ExpirationDate    *time.Time                      `gorm:"type:date" json:"expiration_date"`
	Quantity          int                             `gorm:"not null;default:0" json:"quantity"`
	UnitOfMeasure     string                          `gorm:"size:50" json:"unit_of_measure,omitempty"`
	Category          string                          `gorm:"size:100" json:"category,omitempty"`
	StorageConditions string                          `gorm:"size:255" json:"storage_conditions,omitempty"`
	Notes             string                          `gorm:"type:text" json:"notes,omitempty"`
	UsageHistory      datatypes.JSONSlice[UsageEntry] `gorm:"type:jsonb" json:"usage_history"`
	CreatedAt         time.Time                       `json:"created_at"`
	UpdatedAt         time.Time                       `json:"updated_at"`
}

// MedicalSupply and PharmacySupply exist so AutoMigrate can create both
// tracking tables from the shared shape; queries go through Table() instead.
type MedicalSupply struct {
	SupplyItem `gorm:"embedded"`
}

func (MedicalSupply) TableName() string { return medicalTable }

type PharmacySupply struct {
	SupplyItem `gorm:"embedded"`
}

func (PharmacySupply) TableName() string { return pharmacyTable }

// --- DTOs ---

type AddSupplyRequest struct {
	DrugName          string `json:"drug_name" validate:"required"`
	GenericName       string `json:"generic_name"`
	Manufacturer      string `json:"manufacturer"`
	LotNumber         string `json:"lot_number"`
	ExpirationDate    string `json:"expiration_date"` // "2006-01-02", optional
	Quantity          *int   `json:"quantity" validate:"required,gte=0"`
	UnitOfMeasure     string `json:"unit_of_measure"`
	Category          string `json:"category"`
	StorageConditions string `json:"storage_conditions"`
	Notes             string `json:"notes"`
}

// RecordUsageRequest uses a pointer amount so a missing field is
// distinguishable from zero; a non-numeric amount fails JSON decoding
// before any state is touched.
type RecordUsageRequest struct {
	Amount *float64 `json:"amount" validate:"required,gt=0"`
	Notes  string   `json:"notes"`
}

type DashboardResponse struct {
	TotalMedical       int          `json:"total_medical"`
	TotalPharmacy      int          `json:"total_pharmacy"`
	ExpiringSoon       []SupplyItem `json:"expiring_soon"`
	RecentlyUsed       []SupplyItem `json:"recently_used"`
	MostCommonCategory string       `json:"most_common_category"`
}
