package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RevisionServiceInterface defines the interface for revision service
type RevisionServiceInterface interface {
	Create(req *CreateRevisionRequest) (*RevisionResponse, error)
	GetByID(id uuid.UUID) (*RevisionResponse, error)
	GetAll(page, pageSize int) (*RevisionListResponse, error)
	Update(id uuid.UUID, req *UpdateRevisionRequest) (*RevisionResponse, error)
	Delete(id uuid.UUID) error
}

// HardwareServiceInterface defines the interface for hardware service
type HardwareServiceInterface interface {
	Create(revisionID uuid.UUID, req *CreateHardwareRequest) (*HardwareResponse, error)
	GetByID(id uuid.UUID) (*HardwareResponse, error)
	GetByRevision(revisionID uuid.UUID) (*HardwareListResponse, error)
	Update(id uuid.UUID, req *UpdateHardwareRequest) (*HardwareResponse, error)
	Delete(id uuid.UUID) error
	Calculate(ctx context.Context, id uuid.UUID) (*HardwareResponse, error)
	CalculateRevision(ctx context.Context, revisionID uuid.UUID) (*RevisionCalculationResponse, error)
}

// PredictionServiceInterface defines the interface for stateless hazard rate predictions
type PredictionServiceInterface interface {
	Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error)
	Catalog() *CatalogResponse
}

// GrowthServiceInterface defines the interface for reliability growth service
type GrowthServiceInterface interface {
	Create(req *CreateGrowthTestRequest) (*GrowthTestResponse, error)
	GetByID(id uuid.UUID) (*GrowthTestResponse, error)
	GetByRevision(revisionID uuid.UUID, page, pageSize int) (*GrowthTestListResponse, error)
	Update(id uuid.UUID, req *UpdateGrowthTestRequest) (*GrowthTestResponse, error)
	Delete(id uuid.UUID) error
	AddRecords(testID uuid.UUID, req *AddGrowthRecordsRequest) (*GrowthRecordListResponse, error)
	GetRecords(testID uuid.UUID) (*GrowthRecordListResponse, error)
	DeleteRecords(testID uuid.UUID) error
	Fit(ctx context.Context, testID uuid.UUID) (*GrowthFitResponse, error)
	FitData(ctx context.Context, req *GrowthFitRequest) (*GrowthFitResponse, error)
}

// SurvivalServiceInterface defines the interface for survival analysis service
type SurvivalServiceInterface interface {
	Create(req *CreateDatasetRequest) (*DatasetResponse, error)
	GetByID(id uuid.UUID) (*DatasetResponse, error)
	GetByRevision(revisionID uuid.UUID, page, pageSize int) (*DatasetListResponse, error)
	Update(id uuid.UUID, req *UpdateDatasetRequest) (*DatasetResponse, error)
	Delete(id uuid.UUID) error
	AddRecords(datasetID uuid.UUID, req *AddSurvivalRecordsRequest) (*SurvivalRecordListResponse, error)
	GetRecords(datasetID uuid.UUID) (*SurvivalRecordListResponse, error)
	DeleteRecords(datasetID uuid.UUID) error
	Fit(ctx context.Context, datasetID uuid.UUID, distribution string) (*SurvivalFitResponse, error)
	FitData(ctx context.Context, req *SurvivalFitRequest) (*SurvivalFitResponse, error)
}

// ExportServiceInterface defines the interface for workbook export service
type ExportServiceInterface interface {
	Export(ctx context.Context, revisionID uuid.UUID) (*ExportResponse, error)
}
