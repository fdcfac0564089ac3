package repository

import (
	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resultColumns are written by SaveResults.
var resultColumns = []string{
	"hazard_rate_active",
	"hazard_rate_dormant",
	"hazard_rate_logistics",
	"mtbf",
	"reliability",
	"percent_of_parent",
	"model",
	"factors",
	"stress",
	"overstressed",
	"reason",
	"calculated_at",
}

// HardwareRepository handles database operations for hardware items
type HardwareRepository struct {
	db *gorm.DB
}

// NewHardwareRepository creates a new hardware repository
func NewHardwareRepository(db *gorm.DB) *HardwareRepository {
	return &HardwareRepository{db: db}
}

var _ HardwareRepositoryInterface = (*HardwareRepository)(nil)

// Create creates a new hardware item
func (r *HardwareRepository) Create(hardware *models.Hardware) error {
	return r.db.Omit("Revision").Create(hardware).Error
}

// GetByID retrieves a hardware item by ID
func (r *HardwareRepository) GetByID(id uuid.UUID) (*models.Hardware, error) {
	var hardware models.Hardware
	err := r.db.First(&hardware, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hardware, nil
}

// GetByRefDes retrieves a hardware item by reference designator within a revision
func (r *HardwareRepository) GetByRefDes(revisionID uuid.UUID, refDes string) (*models.Hardware, error) {
	var hardware models.Hardware
	err := r.db.First(&hardware, "revision_id = ? AND ref_des = ?", revisionID, refDes).Error
	if err != nil {
		return nil, err
	}
	return &hardware, nil
}

// GetByRevisionID retrieves the whole hardware tree of a revision ordered by reference designator
func (r *HardwareRepository) GetByRevisionID(revisionID uuid.UUID) ([]models.Hardware, error) {
	var items []models.Hardware
	err := r.db.Where("revision_id = ?", revisionID).Order("ref_des ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetChildren retrieves the direct children of an assembly
func (r *HardwareRepository) GetChildren(parentID uuid.UUID) ([]models.Hardware, error) {
	var items []models.Hardware
	err := r.db.Where("parent_id = ?", parentID).Order("ref_des ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a hardware item
func (r *HardwareRepository) Update(hardware *models.Hardware) error {
	return r.db.Omit("Revision").Save(hardware).Error
}

// SaveResults writes the calculation result columns of every item in one transaction
func (r *HardwareRepository) SaveResults(items []models.Hardware) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			err := tx.Model(&items[i]).Select(resultColumns).Updates(&items[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a hardware item and detaches its children
func (r *HardwareRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Hardware{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hardware{}, "id = ?", id).Error
	})
}
