package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GrowthTestType defines how failures of a growth test were recorded
type GrowthTestType string

const (
	GrowthTestTypeTimeTerminated    GrowthTestType = "time_terminated"
	GrowthTestTypeFailureTerminated GrowthTestType = "failure_terminated"
	GrowthTestTypeGrouped           GrowthTestType = "grouped"
)

// IsValid checks if the GrowthTestType is valid
func (t GrowthTestType) IsValid() bool {
	switch t {
	case GrowthTestTypeTimeTerminated, GrowthTestTypeFailureTerminated, GrowthTestTypeGrouped:
		return true
	}
	return false
}

// GrowthTest is a reliability growth test and its last fit.
type GrowthTest struct {
	BaseModel
	RevisionID uuid.UUID      `json:"revision_id" gorm:"type:uuid;not null;index" validate:"required"`
	TestType   GrowthTestType `json:"test_type" gorm:"type:varchar(30);not null;default:'time_terminated'" validate:"required"`
	TestTime   float64        `json:"test_time" validate:"gte=0"`
	Confidence float64        `json:"confidence" gorm:"not null;default:0.9"`
	GoalMTBF   float64        `json:"goal_mtbf" validate:"gte=0"`

	// Planned growth
	InitialMTBF float64 `json:"initial_mtbf" validate:"gte=0"`
	InitialTime float64 `json:"initial_time" validate:"gte=0"`
	PlannedRate float64 `json:"planned_rate" validate:"gte=0,lt=1"`

	// Fit results
	Beta                   float64         `json:"beta"`
	BetaLower              float64         `json:"beta_lower"`
	BetaUpper              float64         `json:"beta_upper"`
	Lambda                 float64         `json:"lambda"`
	GrowthRate             float64         `json:"growth_rate"`
	CumulativeMTBF         float64         `json:"cumulative_mtbf"`
	InstantaneousMTBF      float64         `json:"instantaneous_mtbf"`
	InstantaneousMTBFLower float64         `json:"instantaneous_mtbf_lower"`
	InstantaneousMTBFUpper float64         `json:"instantaneous_mtbf_upper"`
	ChiSquare              float64         `json:"chi_square"`
	PValue                 float64         `json:"p_value"`
	TimeToGoal             float64         `json:"time_to_goal"`
	Results                json.RawMessage `json:"results" gorm:"type:jsonb"`
	FittedAt               *time.Time      `json:"fitted_at,omitempty"`

	// Relationships
	Revision Revision       `json:"-" gorm:"foreignKey:RevisionID;constraint:OnDelete:CASCADE"`
	Records  []GrowthRecord `json:"records,omitempty" gorm:"foreignKey:GrowthTestID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GrowthTest
func (GrowthTest) TableName() string {
	return "growth_tests"
}

// GrowthRecord is one row of growth test data. For individual failure data
// RightTime is the cumulative failure time; for grouped data the row is the
// interval (LeftTime, RightTime] with Failures observed inside it.
type GrowthRecord struct {
	RecordBase
	GrowthTestID uuid.UUID `json:"growth_test_id" gorm:"type:uuid;not null;index"`
	LeftTime     float64   `json:"left_time" validate:"gte=0"`
	RightTime    float64   `json:"right_time" validate:"gt=0"`
	Failures     int       `json:"failures" gorm:"not null" validate:"gte=0"`
}

// TableName returns the table name for GrowthRecord
func (GrowthRecord) TableName() string {
	return "growth_records"
}
