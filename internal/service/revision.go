package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"rtk-backend/internal/database/models"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevisionService handles business logic for revisions
type RevisionService struct {
	repo               repository.RevisionRepositoryInterface
	validator          *validator.Validate
	defaultMissionTime float64
}

// NewRevisionService creates a new revision service
func NewRevisionService(repo repository.RevisionRepositoryInterface, validator *validator.Validate, defaultMissionTime float64) *RevisionService {
	return &RevisionService{
		repo:               repo,
		validator:          validator,
		defaultMissionTime: defaultMissionTime,
	}
}

var _ RevisionServiceInterface = (*RevisionService)(nil)

// CreateRevisionRequest represents the request to create a revision
type CreateRevisionRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=40"`
	Title       string          `json:"title" validate:"required,min=1,max=100"`
	Description string          `json:"description,omitempty" validate:"max=200"`
	MissionTime *float64        `json:"mission_time,omitempty" validate:"omitempty,gte=0"`
	CreatedBy   string          `json:"created_by,omitempty" validate:"max=40"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdateRevisionRequest represents the request to update a revision
type UpdateRevisionRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=100"`
	Description string          `json:"description,omitempty" validate:"max=200"`
	MissionTime *float64        `json:"mission_time,omitempty" validate:"omitempty,gte=0"`
	UpdatedBy   string          `json:"updated_by,omitempty" validate:"max=40"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// RevisionResponse represents the response for revision operations
type RevisionResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	MissionTime         float64         `json:"mission_time"`
	HazardRateActive    float64         `json:"hazard_rate_active"`
	HazardRateDormant   float64         `json:"hazard_rate_dormant"`
	HazardRateLogistics float64         `json:"hazard_rate_logistics"`
	MTBF                float64         `json:"mtbf"`
	Reliability         float64         `json:"reliability"`
	PartCount           int             `json:"part_count"`
	CalculatedAt        string          `json:"calculated_at,omitempty"`
	Metadata            json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}

// RevisionListResponse represents a paginated list of revisions
type RevisionListResponse struct {
	Revisions []RevisionResponse `json:"revisions"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new revision
func (s *RevisionService) Create(req *CreateRevisionRequest) (*RevisionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing revision: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRevisionExists
	}

	missionTime := s.defaultMissionTime
	if req.MissionTime != nil {
		missionTime = *req.MissionTime
	}

	revision := &models.Revision{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
			CreatedBy:   req.CreatedBy,
			UpdatedBy:   req.CreatedBy,
			Metadata:    req.Metadata,
		},
		MissionTime: missionTime,
	}

	if err := s.repo.Create(revision); err != nil {
		return nil, fmt.Errorf("failed to create revision: %w", err)
	}

	return s.toResponse(revision), nil
}

// GetByID retrieves a revision by ID
func (s *RevisionService) GetByID(id uuid.UUID) (*RevisionResponse, error) {
	revision, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}
	return s.toResponse(revision), nil
}

// GetAll retrieves revisions with pagination
func (s *RevisionService) GetAll(page, pageSize int) (*RevisionListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	revisions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get revisions: %w", err)
	}

	responses := make([]RevisionResponse, len(revisions))
	for i := range revisions {
		responses[i] = *s.toResponse(&revisions[i])
	}

	return &RevisionListResponse{
		Revisions: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a revision's descriptive fields and mission time
func (s *RevisionService) Update(id uuid.UUID, req *UpdateRevisionRequest) (*RevisionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	revision, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}

	revision.Title = req.Title
	revision.Description = req.Description
	revision.UpdatedBy = req.UpdatedBy
	if req.MissionTime != nil {
		revision.MissionTime = *req.MissionTime
	}
	if req.Metadata != nil {
		revision.Metadata = req.Metadata
	}

	if err := s.repo.Update(revision); err != nil {
		return nil, fmt.Errorf("failed to update revision: %w", err)
	}

	return s.toResponse(revision), nil
}

// Delete deletes a revision with its hardware, growth tests and datasets
func (s *RevisionService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete revision: %w", err)
	}
	return nil
}

func (s *RevisionService) toResponse(r *models.Revision) *RevisionResponse {
	return &RevisionResponse{
		ID:                  r.ID,
		Name:                r.Name,
		Title:               r.Title,
		Description:         r.Description,
		MissionTime:         r.MissionTime,
		HazardRateActive:    r.HazardRateActive,
		HazardRateDormant:   r.HazardRateDormant,
		HazardRateLogistics: r.HazardRateLogistics,
		MTBF:                r.MTBF,
		Reliability:         r.Reliability,
		PartCount:           r.PartCount,
		CalculatedAt:        formatTime(r.CalculatedAt),
		Metadata:            r.Metadata,
		CreatedAt:           r.CreatedAt.Format(timeLayout),
		UpdatedAt:           r.UpdatedAt.Format(timeLayout),
	}
}
