package repository

import (
	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RevisionRepositoryInterface defines the interface for revision repository operations
type RevisionRepositoryInterface interface {
	Create(revision *models.Revision) error
	GetByID(id uuid.UUID) (*models.Revision, error)
	GetByName(name string) (*models.Revision, error)
	GetAll(limit, offset int) ([]models.Revision, int64, error)
	Update(revision *models.Revision) error
	Delete(id uuid.UUID) error
}

// HardwareRepositoryInterface defines the interface for hardware repository operations
type HardwareRepositoryInterface interface {
	Create(hardware *models.Hardware) error
	GetByID(id uuid.UUID) (*models.Hardware, error)
	GetByRefDes(revisionID uuid.UUID, refDes string) (*models.Hardware, error)
	GetByRevisionID(revisionID uuid.UUID) ([]models.Hardware, error)
	GetChildren(parentID uuid.UUID) ([]models.Hardware, error)
	Update(hardware *models.Hardware) error
	SaveResults(items []models.Hardware) error
	Delete(id uuid.UUID) error
}

// GrowthTestRepositoryInterface defines the interface for growth test repository operations
type GrowthTestRepositoryInterface interface {
	Create(test *models.GrowthTest) error
	GetByID(id uuid.UUID) (*models.GrowthTest, error)
	GetByName(revisionID uuid.UUID, name string) (*models.GrowthTest, error)
	GetByRevisionID(revisionID uuid.UUID, limit, offset int) ([]models.GrowthTest, int64, error)
	Update(test *models.GrowthTest) error
	Delete(id uuid.UUID) error
}

// GrowthRecordRepositoryInterface defines the interface for growth record repository operations
type GrowthRecordRepositoryInterface interface {
	CreateBatch(records []models.GrowthRecord) error
	GetByTestID(testID uuid.UUID) ([]models.GrowthRecord, error)
	Delete(id uuid.UUID) error
	DeleteByTestID(testID uuid.UUID) error
}

// SurvivalDatasetRepositoryInterface defines the interface for survival dataset repository operations
type SurvivalDatasetRepositoryInterface interface {
	Create(dataset *models.SurvivalDataset) error
	GetByID(id uuid.UUID) (*models.SurvivalDataset, error)
	GetByName(revisionID uuid.UUID, name string) (*models.SurvivalDataset, error)
	GetByRevisionID(revisionID uuid.UUID, limit, offset int) ([]models.SurvivalDataset, int64, error)
	Update(dataset *models.SurvivalDataset) error
	Delete(id uuid.UUID) error
}

// SurvivalRecordRepositoryInterface defines the interface for survival record repository operations
type SurvivalRecordRepositoryInterface interface {
	CreateBatch(records []models.SurvivalRecord) error
	GetByDatasetID(datasetID uuid.UUID) ([]models.SurvivalRecord, error)
	Delete(id uuid.UUID) error
	DeleteByDatasetID(datasetID uuid.UUID) error
}
