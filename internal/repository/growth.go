package repository

import (
	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GrowthTestRepository handles database operations for growth tests
type GrowthTestRepository struct {
	db *gorm.DB
}

// NewGrowthTestRepository creates a new growth test repository
func NewGrowthTestRepository(db *gorm.DB) *GrowthTestRepository {
	return &GrowthTestRepository{db: db}
}

var _ GrowthTestRepositoryInterface = (*GrowthTestRepository)(nil)

// Create creates a new growth test
func (r *GrowthTestRepository) Create(test *models.GrowthTest) error {
	return r.db.Omit("Revision", "Records").Create(test).Error
}

// GetByID retrieves a growth test by ID
func (r *GrowthTestRepository) GetByID(id uuid.UUID) (*models.GrowthTest, error) {
	var test models.GrowthTest
	err := r.db.First(&test, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// GetByName retrieves a growth test by name within a revision
func (r *GrowthTestRepository) GetByName(revisionID uuid.UUID, name string) (*models.GrowthTest, error) {
	var test models.GrowthTest
	err := r.db.First(&test, "revision_id = ? AND name = ?", revisionID, name).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// GetByRevisionID retrieves the growth tests of a revision with pagination
func (r *GrowthTestRepository) GetByRevisionID(revisionID uuid.UUID, limit, offset int) ([]models.GrowthTest, int64, error) {
	var tests []models.GrowthTest
	var total int64

	query := r.db.Model(&models.GrowthTest{}).Where("revision_id = ?", revisionID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&tests).Error; err != nil {
		return nil, 0, err
	}

	return tests, total, nil
}

// Update updates a growth test
func (r *GrowthTestRepository) Update(test *models.GrowthTest) error {
	return r.db.Omit("Revision", "Records").Save(test).Error
}

// Delete deletes a growth test and its records
func (r *GrowthTestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GrowthTest{}, "id = ?", id).Error
}

// GrowthRecordRepository handles database operations for growth test records
type GrowthRecordRepository struct {
	db *gorm.DB
}

// NewGrowthRecordRepository creates a new growth record repository
func NewGrowthRecordRepository(db *gorm.DB) *GrowthRecordRepository {
	return &GrowthRecordRepository{db: db}
}

var _ GrowthRecordRepositoryInterface = (*GrowthRecordRepository)(nil)

// CreateBatch inserts records in batches of 500
func (r *GrowthRecordRepository) CreateBatch(records []models.GrowthRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.CreateInBatches(records, 500).Error
}

// GetByTestID retrieves the records of a growth test in time order
func (r *GrowthRecordRepository) GetByTestID(testID uuid.UUID) ([]models.GrowthRecord, error) {
	var records []models.GrowthRecord
	err := r.db.Where("growth_test_id = ?", testID).Order("right_time ASC, left_time ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete deletes one record
func (r *GrowthRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GrowthRecord{}, "id = ?", id).Error
}

// DeleteByTestID deletes every record of a growth test
func (r *GrowthRecordRepository) DeleteByTestID(testID uuid.UUID) error {
	return r.db.Where("growth_test_id = ?", testID).Delete(&models.GrowthRecord{}).Error
}
