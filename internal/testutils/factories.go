package testutils

import (
	"encoding/json"
	"time"

	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
)

// RevisionFactory provides methods to create test Revision data
type RevisionFactory struct{}

// NewRevisionFactory creates a new RevisionFactory
func NewRevisionFactory() *RevisionFactory {
	return &RevisionFactory{}
}

// Create creates a test Revision with default values
func (f *RevisionFactory) Create() *models.Revision {
	id := uuid.New()
	return &models.Revision{
		BaseModel: models.BaseModel{
			ID:          id,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			Name:        "rev-" + id.String()[:8],
			Title:       "Test Revision",
			Description: "A revision for testing purposes",
		},
		MissionTime: 100,
	}
}

// WithName sets a custom name for the revision
func (f *RevisionFactory) WithName(name string) *models.Revision {
	rev := f.Create()
	rev.Name = name
	return rev
}

// HardwareFactory provides methods to create test Hardware data
type HardwareFactory struct{}

// NewHardwareFactory creates a new HardwareFactory
func NewHardwareFactory() *HardwareFactory {
	return &HardwareFactory{}
}

// Create creates a fixed film resistor at parts count in ground benign
func (f *HardwareFactory) Create(revisionID uuid.UUID) *models.Hardware {
	id := uuid.New()
	attrs, _ := json.Marshal(map[string]float64{"resistance": 10000, "power_operating": 0.05, "power_rated": 0.25})
	return &models.Hardware{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "R" + id.String()[:4],
			Title:     "Fixed film resistor",
		},
		RevisionID:     revisionID,
		RefDes:         "R" + id.String()[:4],
		Category:       "resistor",
		Subcategory:    "film",
		Quantity:       1,
		Environment:    "GB",
		Quality:        "M",
		Method:         "parts_count",
		HazardRateType: "assessed",
		MultAdjFactor:  1,
		AmbientTemp:    30,
		Attributes:     attrs,
	}
}

// Assembly creates an assembly with the given reference designator
func (f *HardwareFactory) Assembly(revisionID uuid.UUID, refDes string) *models.Hardware {
	hw := f.Create(revisionID)
	hw.RefDes = refDes
	hw.Name = refDes
	hw.Title = "Assembly " + refDes
	hw.Category = models.CategoryAssembly
	hw.Subcategory = ""
	hw.Attributes = nil
	return hw
}

// Part creates a resistor under parent with the given reference designator
func (f *HardwareFactory) Part(revisionID uuid.UUID, parentID *uuid.UUID, refDes string) *models.Hardware {
	hw := f.Create(revisionID)
	hw.RefDes = refDes
	hw.Name = refDes
	hw.ParentID = parentID
	return hw
}

// GrowthTestFactory provides methods to create test GrowthTest data
type GrowthTestFactory struct{}

// NewGrowthTestFactory creates a new GrowthTestFactory
func NewGrowthTestFactory() *GrowthTestFactory {
	return &GrowthTestFactory{}
}

// Create creates a time terminated growth test
func (f *GrowthTestFactory) Create(revisionID uuid.UUID) *models.GrowthTest {
	id := uuid.New()
	return &models.GrowthTest{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "taaf-" + id.String()[:6],
			Title:     "Test, analyze and fix",
		},
		RevisionID: revisionID,
		TestType:   models.GrowthTestTypeTimeTerminated,
		TestTime:   600,
		Confidence: 0.9,
	}
}

// Records returns failure records at the given times
func (f *GrowthTestFactory) Records(testID uuid.UUID, times ...float64) []models.GrowthRecord {
	records := make([]models.GrowthRecord, 0, len(times))
	for _, t := range times {
		records = append(records, models.GrowthRecord{GrowthTestID: testID, RightTime: t, Failures: 1})
	}
	return records
}

// SurvivalDatasetFactory provides methods to create test SurvivalDataset data
type SurvivalDatasetFactory struct{}

// NewSurvivalDatasetFactory creates a new SurvivalDatasetFactory
func NewSurvivalDatasetFactory() *SurvivalDatasetFactory {
	return &SurvivalDatasetFactory{}
}

// Create creates an exponential data set
func (f *SurvivalDatasetFactory) Create(revisionID uuid.UUID) *models.SurvivalDataset {
	id := uuid.New()
	return &models.SurvivalDataset{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "life-" + id.String()[:6],
			Title:     "Life test",
		},
		RevisionID:   revisionID,
		Distribution: "exponential",
		Confidence:   0.9,
	}
}

// Record returns one record of quantity units
func (f *SurvivalDatasetFactory) Record(datasetID uuid.UUID, unit string, t float64, status string, quantity int) models.SurvivalRecord {
	return models.SurvivalRecord{
		DatasetID: datasetID,
		Unit:      unit,
		RightTime: t,
		Status:    status,
		Quantity:  quantity,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Revision        *RevisionFactory
	Hardware        *HardwareFactory
	GrowthTest      *GrowthTestFactory
	SurvivalDataset *SurvivalDatasetFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Revision:        NewRevisionFactory(),
		Hardware:        NewHardwareFactory(),
		GrowthTest:      NewGrowthTestFactory(),
		SurvivalDataset: NewSurvivalDatasetFactory(),
	}
}
