package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"rtk-backend/internal/database/models"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/export"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/repository"

	"github.com/google/uuid"
)

// ExportRepositories groups the repositories an export reads from
type ExportRepositories struct {
	Revisions       repository.RevisionRepositoryInterface
	Hardware        repository.HardwareRepositoryInterface
	GrowthTests     repository.GrowthTestRepositoryInterface
	GrowthRecords   repository.GrowthRecordRepositoryInterface
	Datasets        repository.SurvivalDatasetRepositoryInterface
	SurvivalRecords repository.SurvivalRecordRepositoryInterface
}

// ExportService writes revisions into standalone SQLite workbooks
type ExportService struct {
	repos ExportRepositories
	dir   string
}

// NewExportService creates a new export service writing below dir
func NewExportService(repos ExportRepositories, dir string) *ExportService {
	return &ExportService{repos: repos, dir: dir}
}

var _ ExportServiceInterface = (*ExportService)(nil)

// ExportResponse describes a written workbook
type ExportResponse struct {
	RevisionID       uuid.UUID `json:"revision_id"`
	Path             string    `json:"path"`
	FileName         string    `json:"file_name"`
	Hardware         int       `json:"hardware"`
	GrowthTests      int       `json:"growth_tests"`
	SurvivalDatasets int       `json:"survival_datasets"`
	ExportedAt       string    `json:"exported_at"`
}

// Export writes a revision with its hardware, growth tests, data sets and
// their records into <dir>/<revision id>.db, replacing an earlier export.
func (s *ExportService) Export(ctx context.Context, revisionID uuid.UUID) (*ExportResponse, error) {
	revision, err := s.repos.Revisions.GetByID(revisionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}

	log := logger.WithContext(ctx).WithField("revision_id", revisionID)
	fileName := revision.ID.String() + ".db"
	path := filepath.Join(s.dir, fileName)

	start := time.Now()
	wb, err := s.collect(revision)
	if err == nil {
		err = export.Write(ctx, path, wb)
	}
	observe(metrics.KindExport, start, err)
	if err != nil {
		log.WithError(err).Error("Revision export failed")
		return nil, err
	}

	log.WithField("path", path).Info("Revision exported")
	return &ExportResponse{
		RevisionID:       revisionID,
		Path:             path,
		FileName:         fileName,
		Hardware:         len(wb.Hardware),
		GrowthTests:      len(wb.GrowthTests),
		SurvivalDatasets: len(wb.SurvivalDatasets),
		ExportedAt:       time.Now().Format(timeLayout),
	}, nil
}

func (s *ExportService) collect(revision *models.Revision) (*export.Workbook, error) {
	wb := &export.Workbook{Revision: *revision}

	hardware, err := s.repos.Hardware.GetByRevisionID(revision.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hardware: %w", err)
	}
	wb.Hardware = hardware

	for offset := 0; ; offset += maxPageSize {
		tests, total, err := s.repos.GrowthTests.GetByRevisionID(revision.ID, maxPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get growth tests: %w", err)
		}
		wb.GrowthTests = append(wb.GrowthTests, tests...)
		if len(tests) == 0 || int64(len(wb.GrowthTests)) >= total {
			break
		}
	}
	for _, t := range wb.GrowthTests {
		records, err := s.repos.GrowthRecords.GetByTestID(t.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get growth records: %w", err)
		}
		wb.GrowthRecords = append(wb.GrowthRecords, records...)
	}

	for offset := 0; ; offset += maxPageSize {
		datasets, total, err := s.repos.Datasets.GetByRevisionID(revision.ID, maxPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get datasets: %w", err)
		}
		wb.SurvivalDatasets = append(wb.SurvivalDatasets, datasets...)
		if len(datasets) == 0 || int64(len(wb.SurvivalDatasets)) >= total {
			break
		}
	}
	for _, d := range wb.SurvivalDatasets {
		records, err := s.repos.SurvivalRecords.GetByDatasetID(d.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get survival records: %w", err)
		}
		wb.SurvivalRecords = append(wb.SurvivalRecords, records...)
	}
	return wb, nil
}
