package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rtk-backend/internal/database/models"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/repository"
	"rtk-backend/internal/survival"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// distributionAll asks a fit to rank every supported distribution.
const distributionAll = "all"

// SurvivalService handles life data sets, their records and distribution fits
type SurvivalService struct {
	datasetRepo       repository.SurvivalDatasetRepositoryInterface
	recordRepo        repository.SurvivalRecordRepositoryInterface
	revisionRepo      repository.RevisionRepositoryInterface
	validator         *validator.Validate
	defaultConfidence float64
}

// NewSurvivalService creates a new survival service
func NewSurvivalService(datasetRepo repository.SurvivalDatasetRepositoryInterface, recordRepo repository.SurvivalRecordRepositoryInterface, revisionRepo repository.RevisionRepositoryInterface, validator *validator.Validate, defaultConfidence float64) *SurvivalService {
	return &SurvivalService{
		datasetRepo:       datasetRepo,
		recordRepo:        recordRepo,
		revisionRepo:      revisionRepo,
		validator:         validator,
		defaultConfidence: defaultConfidence,
	}
}

var _ SurvivalServiceInterface = (*SurvivalService)(nil)

// CreateDatasetRequest represents the request to create a survival data set
type CreateDatasetRequest struct {
	RevisionID   uuid.UUID `json:"revision_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=40"`
	Title        string    `json:"title" validate:"required,min=1,max=100"`
	Description  string    `json:"description,omitempty" validate:"max=200"`
	Distribution string    `json:"distribution,omitempty" validate:"omitempty,oneof=exponential weibull"`
	Confidence   float64   `json:"confidence,omitempty" validate:"omitempty,gt=0,lt=1"`
	CreatedBy    string    `json:"created_by,omitempty" validate:"max=40"`
}

// UpdateDatasetRequest represents the request to update a survival data set.
// Nil fields are left unchanged.
type UpdateDatasetRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	Distribution *string  `json:"distribution,omitempty" validate:"omitempty,oneof=exponential weibull"`
	Confidence   *float64 `json:"confidence,omitempty" validate:"omitempty,gt=0,lt=1"`
	UpdatedBy    string   `json:"updated_by,omitempty" validate:"max=40"`
}

// DatasetResponse represents a survival data set with its last fit
type DatasetResponse struct {
	ID            uuid.UUID          `json:"id"`
	RevisionID    uuid.UUID          `json:"revision_id"`
	Name          string             `json:"name"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Distribution  string             `json:"distribution"`
	Confidence    float64            `json:"confidence"`
	Failures      int                `json:"failures"`
	Suspensions   int                `json:"suspensions"`
	Parameters    map[string]float64 `json:"parameters"`
	Lower         map[string]float64 `json:"lower"`
	Upper         map[string]float64 `json:"upper"`
	LogLikelihood float64            `json:"log_likelihood"`
	AIC           float64            `json:"aic"`
	BIC           float64            `json:"bic"`
	FittedAt      string             `json:"fitted_at,omitempty"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}

// DatasetListResponse represents a paginated list of survival data sets
type DatasetListResponse struct {
	Datasets []DatasetResponse `json:"datasets"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// SurvivalRecordInput is one observation of Quantity identical units
type SurvivalRecordInput struct {
	Unit      string  `json:"unit,omitempty" validate:"max=100"`
	LeftTime  float64 `json:"left_time,omitempty" validate:"gte=0"`
	RightTime float64 `json:"right_time" validate:"gt=0"`
	Status    string  `json:"status,omitempty" validate:"omitempty,oneof=failure right_censored interval_censored"`
	Quantity  int     `json:"quantity,omitempty" validate:"gte=0"`
}

// AddSurvivalRecordsRequest represents records appended to a data set
type AddSurvivalRecordsRequest struct {
	Records []SurvivalRecordInput `json:"records" validate:"required,min=1,dive"`
}

// SurvivalRecordResponse represents a stored survival record
type SurvivalRecordResponse struct {
	ID        uuid.UUID `json:"id"`
	Unit      string    `json:"unit,omitempty"`
	LeftTime  float64   `json:"left_time"`
	RightTime float64   `json:"right_time"`
	Status    string    `json:"status"`
	Quantity  int       `json:"quantity"`
}

// SurvivalRecordListResponse represents the records of a data set
type SurvivalRecordListResponse struct {
	Records []SurvivalRecordResponse `json:"records"`
	Total   int64                    `json:"total"`
}

// SurvivalFitRequest carries life data for a fit. Distribution is
// exponential, weibull or all.
type SurvivalFitRequest struct {
	Distribution string            `json:"distribution,omitempty" yaml:"distribution,omitempty" validate:"omitempty,oneof=exponential weibull all"`
	Confidence   float64           `json:"confidence,omitempty" yaml:"confidence,omitempty" validate:"omitempty,gt=0,lt=1"`
	Records      []survival.Record `json:"records" yaml:"records" validate:"required,min=1"`
}

// SurvivalFitResponse holds the parametric fit and the nonparametric estimates
type SurvivalFitResponse struct {
	DatasetID    *uuid.UUID          `json:"dataset_id,omitempty"`
	Distribution string              `json:"distribution"`
	Fit          *survival.Fit       `json:"fit"`
	Rankings     []survival.Ranking  `json:"rankings,omitempty"`
	KaplanMeier  []survival.KMPoint  `json:"kaplan_meier,omitempty"`
	MCF          []survival.MCFPoint `json:"mcf,omitempty"`
}

// Create creates a new survival data set in a revision
func (s *SurvivalService) Create(req *CreateDatasetRequest) (*DatasetResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.revisionRepo.GetByID(req.RevisionID); err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}

	existing, err := s.datasetRepo.GetByName(req.RevisionID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing dataset: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDatasetExists
	}

	dataset := &models.SurvivalDataset{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
			CreatedBy:   req.CreatedBy,
			UpdatedBy:   req.CreatedBy,
		},
		RevisionID:   req.RevisionID,
		Distribution: req.Distribution,
		Confidence:   req.Confidence,
	}
	if dataset.Distribution == "" {
		dataset.Distribution = string(survival.Exponential)
	}
	if dataset.Confidence == 0 {
		dataset.Confidence = s.defaultConfidence
	}

	if err := s.datasetRepo.Create(dataset); err != nil {
		return nil, fmt.Errorf("failed to create dataset: %w", err)
	}
	return s.toResponse(dataset), nil
}

// GetByID retrieves a survival data set by ID
func (s *SurvivalService) GetByID(id uuid.UUID) (*DatasetResponse, error) {
	dataset, err := s.datasetRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}
	return s.toResponse(dataset), nil
}

// GetByRevision retrieves the data sets of a revision with pagination
func (s *SurvivalService) GetByRevision(revisionID uuid.UUID, page, pageSize int) (*DatasetListResponse, error) {
	if _, err := s.revisionRepo.GetByID(revisionID); err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}
	page, pageSize, offset := normalizePage(page, pageSize)

	datasets, total, err := s.datasetRepo.GetByRevisionID(revisionID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get datasets: %w", err)
	}

	responses := make([]DatasetResponse, len(datasets))
	for i := range datasets {
		responses[i] = *s.toResponse(&datasets[i])
	}
	return &DatasetListResponse{
		Datasets: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a data set's settings
func (s *SurvivalService) Update(id uuid.UUID, req *UpdateDatasetRequest) (*DatasetResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	dataset, err := s.datasetRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}

	if req.Title != nil {
		dataset.Title = *req.Title
	}
	if req.Description != nil {
		dataset.Description = *req.Description
	}
	if req.Distribution != nil {
		dataset.Distribution = *req.Distribution
	}
	if req.Confidence != nil {
		dataset.Confidence = *req.Confidence
	}
	dataset.UpdatedBy = req.UpdatedBy

	if err := s.datasetRepo.Update(dataset); err != nil {
		return nil, fmt.Errorf("failed to update dataset: %w", err)
	}
	return s.toResponse(dataset), nil
}

// Delete deletes a data set and its records
func (s *SurvivalService) Delete(id uuid.UUID) error {
	if _, err := s.datasetRepo.GetByID(id); err != nil {
		return notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}
	if err := s.datasetRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}

// AddRecords appends observations to a data set
func (s *SurvivalService) AddRecords(datasetID uuid.UUID, req *AddSurvivalRecordsRequest) (*SurvivalRecordListResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.datasetRepo.GetByID(datasetID); err != nil {
		return nil, notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}

	records := make([]models.SurvivalRecord, len(req.Records))
	for i, in := range req.Records {
		rec := survival.Record{
			Unit:      in.Unit,
			LeftTime:  in.LeftTime,
			RightTime: in.RightTime,
			Status:    survival.Status(in.Status),
			Quantity:  in.Quantity,
		}
		if rec.Status == "" {
			rec.Status = survival.Failure
		}
		if rec.Quantity == 0 {
			rec.Quantity = 1
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = models.SurvivalRecord{
			DatasetID: datasetID,
			Unit:      rec.Unit,
			LeftTime:  rec.LeftTime,
			RightTime: rec.RightTime,
			Status:    string(rec.Status),
			Quantity:  rec.Quantity,
		}
	}
	if err := s.recordRepo.CreateBatch(records); err != nil {
		return nil, fmt.Errorf("failed to create survival records: %w", err)
	}
	return s.GetRecords(datasetID)
}

// GetRecords retrieves the records of a data set
func (s *SurvivalService) GetRecords(datasetID uuid.UUID) (*SurvivalRecordListResponse, error) {
	if _, err := s.datasetRepo.GetByID(datasetID); err != nil {
		return nil, notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}
	records, err := s.recordRepo.GetByDatasetID(datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get survival records: %w", err)
	}
	out := make([]SurvivalRecordResponse, len(records))
	for i, r := range records {
		out[i] = SurvivalRecordResponse{
			ID:        r.ID,
			Unit:      r.Unit,
			LeftTime:  r.LeftTime,
			RightTime: r.RightTime,
			Status:    r.Status,
			Quantity:  r.Quantity,
		}
	}
	return &SurvivalRecordListResponse{Records: out, Total: int64(len(out))}, nil
}

// DeleteRecords removes every record of a data set
func (s *SurvivalService) DeleteRecords(datasetID uuid.UUID) error {
	if _, err := s.datasetRepo.GetByID(datasetID); err != nil {
		return notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}
	if err := s.recordRepo.DeleteByDatasetID(datasetID); err != nil {
		return fmt.Errorf("failed to delete survival records: %w", err)
	}
	return nil
}

// Fit fits the stored records of a data set and saves the estimates. An
// empty distribution uses the data set's own; "all" stores the best ranked
// fit.
func (s *SurvivalService) Fit(ctx context.Context, datasetID uuid.UUID, distribution string) (*SurvivalFitResponse, error) {
	dataset, err := s.datasetRepo.GetByID(datasetID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDatasetNotFound, "get dataset")
	}
	records, err := s.recordRepo.GetByDatasetID(datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get survival records: %w", err)
	}

	if distribution == "" {
		distribution = dataset.Distribution
	}
	req := &SurvivalFitRequest{
		Distribution: strings.ToLower(distribution),
		Confidence:   dataset.Confidence,
		Records:      make([]survival.Record, len(records)),
	}
	for i, r := range records {
		req.Records[i] = survival.Record{
			Unit:      r.Unit,
			LeftTime:  r.LeftTime,
			RightTime: r.RightTime,
			Status:    survival.Status(r.Status),
			Quantity:  r.Quantity,
		}
	}
	if len(req.Records) == 0 {
		return nil, fmt.Errorf("%w: dataset has no records", apperrors.ErrInsufficientData)
	}

	resp, err := s.FitData(ctx, req)
	if err != nil {
		return nil, err
	}
	resp.DatasetID = &dataset.ID

	fit := resp.Fit
	now := time.Now()
	dataset.Distribution = string(fit.Distribution)
	dataset.Failures = fit.Failures
	dataset.Suspensions = fit.Suspensions
	dataset.Parameters = toJSON(fit.Parameters)
	dataset.Lower = toJSON(fit.Lower)
	dataset.Upper = toJSON(fit.Upper)
	dataset.LogLikelihood = fit.LogLikelihood
	dataset.AIC = fit.AIC
	dataset.BIC = fit.BIC
	dataset.FittedAt = &now
	if err := s.datasetRepo.Update(dataset); err != nil {
		return nil, fmt.Errorf("failed to save dataset fit: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"dataset_id":   dataset.ID,
		"distribution": dataset.Distribution,
		"aic":          dataset.AIC,
	}).Info("Survival dataset fitted")
	return resp, nil
}

// FitData fits life data that is not stored
func (s *SurvivalService) FitData(ctx context.Context, req *SurvivalFitRequest) (*SurvivalFitResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	confidence := req.Confidence
	if confidence == 0 {
		confidence = s.defaultConfidence
	}
	distribution := strings.ToLower(req.Distribution)
	if distribution == "" {
		distribution = string(survival.Exponential)
	}

	start := time.Now()
	resp, err := fitSurvival(req.Records, distribution, confidence)
	observe(metrics.KindSurvival, start, err)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Survival fit failed")
		return nil, err
	}
	return resp, nil
}

func fitSurvival(records []survival.Record, distribution string, confidence float64) (*SurvivalFitResponse, error) {
	for i := range records {
		if records[i].Status == "" {
			records[i].Status = survival.Failure
		}
	}

	resp := &SurvivalFitResponse{Distribution: distribution}
	if distribution == distributionAll {
		rankings, err := survival.Compare(records, confidence)
		if err != nil {
			return nil, err
		}
		resp.Rankings = rankings
		resp.Fit = rankings[0].Fit
	} else {
		fit, err := survival.FitDistribution(records, survival.Distribution(distribution), confidence)
		if err != nil {
			return nil, err
		}
		resp.Fit = fit
	}

	km, err := survival.KaplanMeier(records, confidence)
	if err != nil {
		return nil, err
	}
	resp.KaplanMeier = km

	if everyRecordHasUnit(records) {
		mcf, err := survival.MCF(records, confidence)
		if err != nil && !errors.Is(err, apperrors.ErrInsufficientData) {
			return nil, err
		}
		resp.MCF = mcf
	}
	return resp, nil
}

func everyRecordHasUnit(records []survival.Record) bool {
	for _, r := range records {
		if r.Unit == "" {
			return false
		}
	}
	return len(records) > 0
}

func (s *SurvivalService) toResponse(d *models.SurvivalDataset) *DatasetResponse {
	return &DatasetResponse{
		ID:            d.ID,
		RevisionID:    d.RevisionID,
		Name:          d.Name,
		Title:         d.Title,
		Description:   d.Description,
		Distribution:  d.Distribution,
		Confidence:    d.Confidence,
		Failures:      d.Failures,
		Suspensions:   d.Suspensions,
		Parameters:    floatMap(d.Parameters),
		Lower:         floatMap(d.Lower),
		Upper:         floatMap(d.Upper),
		LogLikelihood: d.LogLikelihood,
		AIC:           d.AIC,
		BIC:           d.BIC,
		FittedAt:      formatTime(d.FittedAt),
		CreatedAt:     d.CreatedAt.Format(timeLayout),
		UpdatedAt:     d.UpdatedAt.Format(timeLayout),
	}
}
