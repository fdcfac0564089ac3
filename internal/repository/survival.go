package repository

import (
	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurvivalDatasetRepository handles database operations for survival datasets
type SurvivalDatasetRepository struct {
	db *gorm.DB
}

// NewSurvivalDatasetRepository creates a new survival dataset repository
func NewSurvivalDatasetRepository(db *gorm.DB) *SurvivalDatasetRepository {
	return &SurvivalDatasetRepository{db: db}
}

var _ SurvivalDatasetRepositoryInterface = (*SurvivalDatasetRepository)(nil)

// Create creates a new dataset
func (r *SurvivalDatasetRepository) Create(dataset *models.SurvivalDataset) error {
	return r.db.Omit("Revision", "Records").Create(dataset).Error
}

// GetByID retrieves a dataset by ID
func (r *SurvivalDatasetRepository) GetByID(id uuid.UUID) (*models.SurvivalDataset, error) {
	var dataset models.SurvivalDataset
	err := r.db.First(&dataset, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// GetByName retrieves a dataset by name within a revision
func (r *SurvivalDatasetRepository) GetByName(revisionID uuid.UUID, name string) (*models.SurvivalDataset, error) {
	var dataset models.SurvivalDataset
	err := r.db.First(&dataset, "revision_id = ? AND name = ?", revisionID, name).Error
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// GetByRevisionID retrieves the datasets of a revision with pagination
func (r *SurvivalDatasetRepository) GetByRevisionID(revisionID uuid.UUID, limit, offset int) ([]models.SurvivalDataset, int64, error) {
	var datasets []models.SurvivalDataset
	var total int64

	query := r.db.Model(&models.SurvivalDataset{}).Where("revision_id = ?", revisionID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&datasets).Error; err != nil {
		return nil, 0, err
	}

	return datasets, total, nil
}

// Update updates a dataset
func (r *SurvivalDatasetRepository) Update(dataset *models.SurvivalDataset) error {
	return r.db.Omit("Revision", "Records").Save(dataset).Error
}

// Delete deletes a dataset and its records
func (r *SurvivalDatasetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SurvivalDataset{}, "id = ?", id).Error
}

// SurvivalRecordRepository handles database operations for survival records
type SurvivalRecordRepository struct {
	db *gorm.DB
}

// NewSurvivalRecordRepository creates a new survival record repository
func NewSurvivalRecordRepository(db *gorm.DB) *SurvivalRecordRepository {
	return &SurvivalRecordRepository{db: db}
}

var _ SurvivalRecordRepositoryInterface = (*SurvivalRecordRepository)(nil)

// CreateBatch inserts records in batches of 500
func (r *SurvivalRecordRepository) CreateBatch(records []models.SurvivalRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.CreateInBatches(records, 500).Error
}

// GetByDatasetID retrieves the records of a dataset ordered by unit and time
func (r *SurvivalRecordRepository) GetByDatasetID(datasetID uuid.UUID) ([]models.SurvivalRecord, error) {
	var records []models.SurvivalRecord
	err := r.db.Where("dataset_id = ?", datasetID).Order("unit ASC, right_time ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete deletes one record
func (r *SurvivalRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SurvivalRecord{}, "id = ?", id).Error
}

// DeleteByDatasetID deletes every record of a dataset
func (r *SurvivalRecordRepository) DeleteByDatasetID(datasetID uuid.UUID) error {
	return r.db.Where("dataset_id = ?", datasetID).Delete(&models.SurvivalRecord{}).Error
}
