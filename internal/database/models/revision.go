package models

import (
	"time"
)

// Revision is one version of a system under analysis. It owns the hardware
// tree, growth tests and survival datasets.
type Revision struct {
	BaseModel
	// MissionTime in hours, used for every reliability figure of the revision.
	MissionTime float64 `json:"mission_time" gorm:"not null;default:100" validate:"gte=0"`

	// Results of the last revision calculation
	HazardRateActive    float64    `json:"hazard_rate_active"`
	HazardRateDormant   float64    `json:"hazard_rate_dormant"`
	HazardRateLogistics float64    `json:"hazard_rate_logistics"`
	MTBF                float64    `json:"mtbf"`
	Reliability         float64    `json:"reliability"`
	PartCount           int        `json:"part_count"`
	CalculatedAt        *time.Time `json:"calculated_at,omitempty"`

	// Relationships
	Hardware         []Hardware        `json:"hardware,omitempty" gorm:"foreignKey:RevisionID;constraint:OnDelete:CASCADE"`
	GrowthTests      []GrowthTest      `json:"growth_tests,omitempty" gorm:"foreignKey:RevisionID;constraint:OnDelete:CASCADE"`
	SurvivalDatasets []SurvivalDataset `json:"survival_datasets,omitempty" gorm:"foreignKey:RevisionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Revision
func (Revision) TableName() string {
	return "revisions"
}
