package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CategoryAssembly marks a hardware item whose hazard rate is the sum of its
// children. Every other category names a handbook part family.
const CategoryAssembly = "assembly"

// Hardware is one part or assembly of a revision's hardware tree.
type Hardware struct {
	BaseModel
	RevisionID uuid.UUID  `json:"revision_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_revision_refdes,priority:1" validate:"required"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	RefDes     string     `json:"ref_des" gorm:"size:100;not null;uniqueIndex:idx_revision_refdes,priority:2" validate:"required,max=100"`

	Category    string `json:"category" gorm:"size:40;not null" validate:"required"`
	Subcategory string `json:"subcategory" gorm:"size:60"`
	Quantity    int    `json:"quantity" gorm:"not null;default:1" validate:"gte=0"`
	Environment string `json:"environment" gorm:"size:10;default:'GB'"`
	Quality     string `json:"quality" gorm:"size:20"`
	Method      string `json:"method" gorm:"size:20;default:'parts_count'"`

	// Adjustment of the modelled hazard rate
	HazardRateType      string  `json:"hazard_rate_type" gorm:"size:30;default:'assessed'"`
	SpecifiedHazardRate float64 `json:"specified_hazard_rate"`
	SpecifiedMTBF       float64 `json:"specified_mtbf"`
	MultAdjFactor       float64 `json:"mult_adj_factor" gorm:"default:1"`
	AddAdjFactor        float64 `json:"add_adj_factor"`

	AmbientTemp float64         `json:"ambient_temp" gorm:"default:30"`
	Attributes  json.RawMessage `json:"attributes" gorm:"type:jsonb"`
	Options     json.RawMessage `json:"options" gorm:"type:jsonb"`

	// Calculation results
	HazardRateActive    float64         `json:"hazard_rate_active"`
	HazardRateDormant   float64         `json:"hazard_rate_dormant"`
	HazardRateLogistics float64         `json:"hazard_rate_logistics"`
	MTBF                float64         `json:"mtbf"`
	Reliability         float64         `json:"reliability"`
	PercentOfParent     float64         `json:"percent_of_parent"`
	Model               string          `json:"model" gorm:"size:60"`
	Factors             json.RawMessage `json:"factors" gorm:"type:jsonb"`
	Stress              json.RawMessage `json:"stress" gorm:"type:jsonb"`
	Overstressed        bool            `json:"overstressed" gorm:"default:false"`
	Reason              string          `json:"reason" gorm:"type:text"`
	CalculatedAt        *time.Time      `json:"calculated_at,omitempty"`

	// Relationships
	Revision Revision `json:"-" gorm:"foreignKey:RevisionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Hardware
func (Hardware) TableName() string {
	return "hardware"
}

// IsAssembly reports whether the item aggregates children.
func (h *Hardware) IsAssembly() bool {
	return h.Category == CategoryAssembly
}
