package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SurvivalDataset is a set of field or test life records and its last fit.
type SurvivalDataset struct {
	BaseModel
	RevisionID   uuid.UUID `json:"revision_id" gorm:"type:uuid;not null;index" validate:"required"`
	Distribution string    `json:"distribution" gorm:"size:20;default:'exponential'"`
	Confidence   float64   `json:"confidence" gorm:"not null;default:0.9"`

	// Fit results
	Failures      int             `json:"failures"`
	Suspensions   int             `json:"suspensions"`
	Parameters    json.RawMessage `json:"parameters" gorm:"type:jsonb"`
	Lower         json.RawMessage `json:"lower" gorm:"type:jsonb"`
	Upper         json.RawMessage `json:"upper" gorm:"type:jsonb"`
	LogLikelihood float64         `json:"log_likelihood"`
	AIC           float64         `json:"aic"`
	BIC           float64         `json:"bic"`
	FittedAt      *time.Time      `json:"fitted_at,omitempty"`

	// Relationships
	Revision Revision         `json:"-" gorm:"foreignKey:RevisionID;constraint:OnDelete:CASCADE"`
	Records  []SurvivalRecord `json:"records,omitempty" gorm:"foreignKey:DatasetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SurvivalDataset
func (SurvivalDataset) TableName() string {
	return "survival_datasets"
}

// SurvivalRecord is Quantity identical units observed over (LeftTime, RightTime].
type SurvivalRecord struct {
	RecordBase
	DatasetID uuid.UUID `json:"dataset_id" gorm:"type:uuid;not null;index"`
	Unit      string    `json:"unit" gorm:"size:100"`
	LeftTime  float64   `json:"left_time" validate:"gte=0"`
	RightTime float64   `json:"right_time" validate:"gt=0"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'failure'"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1" validate:"gte=0"`
}

// TableName returns the table name for SurvivalRecord
func (SurvivalRecord) TableName() string {
	return "survival_records"
}
