package repository

import (
	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevisionRepository handles database operations for revisions
type RevisionRepository struct {
	db *gorm.DB
}

// NewRevisionRepository creates a new revision repository
func NewRevisionRepository(db *gorm.DB) *RevisionRepository {
	return &RevisionRepository{db: db}
}

var _ RevisionRepositoryInterface = (*RevisionRepository)(nil)

// Create creates a new revision
func (r *RevisionRepository) Create(revision *models.Revision) error {
	return r.db.Create(revision).Error
}

// GetByID retrieves a revision by ID
func (r *RevisionRepository) GetByID(id uuid.UUID) (*models.Revision, error) {
	var revision models.Revision
	err := r.db.First(&revision, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

// GetByName retrieves a revision by name
func (r *RevisionRepository) GetByName(name string) (*models.Revision, error) {
	var revision models.Revision
	err := r.db.First(&revision, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

// GetAll retrieves revisions with pagination, oldest first
func (r *RevisionRepository) GetAll(limit, offset int) ([]models.Revision, int64, error) {
	var revisions []models.Revision
	var total int64

	if err := r.db.Model(&models.Revision{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&revisions).Error; err != nil {
		return nil, 0, err
	}

	return revisions, total, nil
}

// Update updates a revision
func (r *RevisionRepository) Update(revision *models.Revision) error {
	return r.db.Omit("Hardware", "GrowthTests", "SurvivalDatasets").Save(revision).Error
}

// Delete deletes a revision and, through the foreign keys, everything it owns
func (r *RevisionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Revision{}, "id = ?", id).Error
}
