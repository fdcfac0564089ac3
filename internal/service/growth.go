package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rtk-backend/internal/database/models"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/growth"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// planPoints is the number of points of a stored ideal growth curve.
const planPoints = 20

// GrowthService handles reliability growth tests, their records and fits
type GrowthService struct {
	testRepo          repository.GrowthTestRepositoryInterface
	recordRepo        repository.GrowthRecordRepositoryInterface
	revisionRepo      repository.RevisionRepositoryInterface
	validator         *validator.Validate
	defaultConfidence float64
}

// NewGrowthService creates a new growth service
func NewGrowthService(testRepo repository.GrowthTestRepositoryInterface, recordRepo repository.GrowthRecordRepositoryInterface, revisionRepo repository.RevisionRepositoryInterface, validator *validator.Validate, defaultConfidence float64) *GrowthService {
	return &GrowthService{
		testRepo:          testRepo,
		recordRepo:        recordRepo,
		revisionRepo:      revisionRepo,
		validator:         validator,
		defaultConfidence: defaultConfidence,
	}
}

var _ GrowthServiceInterface = (*GrowthService)(nil)

// CreateGrowthTestRequest represents the request to create a growth test
type CreateGrowthTestRequest struct {
	RevisionID  uuid.UUID `json:"revision_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=40"`
	Title       string    `json:"title" validate:"required,min=1,max=100"`
	Description string    `json:"description,omitempty" validate:"max=200"`
	TestType    string    `json:"test_type,omitempty" validate:"omitempty,oneof=time_terminated failure_terminated grouped"`
	TestTime    float64   `json:"test_time,omitempty" validate:"gte=0"`
	Confidence  float64   `json:"confidence,omitempty" validate:"omitempty,gt=0,lt=1"`
	GoalMTBF    float64   `json:"goal_mtbf,omitempty" validate:"gte=0"`
	InitialMTBF float64   `json:"initial_mtbf,omitempty" validate:"gte=0"`
	InitialTime float64   `json:"initial_time,omitempty" validate:"gte=0"`
	PlannedRate float64   `json:"planned_rate,omitempty" validate:"gte=0,lt=1"`
	CreatedBy   string    `json:"created_by,omitempty" validate:"max=40"`
}

// UpdateGrowthTestRequest represents the request to update a growth test.
// Nil fields are left unchanged.
type UpdateGrowthTestRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	TestType    *string  `json:"test_type,omitempty" validate:"omitempty,oneof=time_terminated failure_terminated grouped"`
	TestTime    *float64 `json:"test_time,omitempty" validate:"omitempty,gte=0"`
	Confidence  *float64 `json:"confidence,omitempty" validate:"omitempty,gt=0,lt=1"`
	GoalMTBF    *float64 `json:"goal_mtbf,omitempty" validate:"omitempty,gte=0"`
	InitialMTBF *float64 `json:"initial_mtbf,omitempty" validate:"omitempty,gte=0"`
	InitialTime *float64 `json:"initial_time,omitempty" validate:"omitempty,gte=0"`
	PlannedRate *float64 `json:"planned_rate,omitempty" validate:"omitempty,gte=0,lt=1"`
	UpdatedBy   string   `json:"updated_by,omitempty" validate:"max=40"`
}

// GrowthTestResponse represents a growth test with its last fit
type GrowthTestResponse struct {
	ID                     uuid.UUID       `json:"id"`
	RevisionID             uuid.UUID       `json:"revision_id"`
	Name                   string          `json:"name"`
	Title                  string          `json:"title"`
	Description            string          `json:"description"`
	TestType               string          `json:"test_type"`
	TestTime               float64         `json:"test_time"`
	Confidence             float64         `json:"confidence"`
	GoalMTBF               float64         `json:"goal_mtbf"`
	InitialMTBF            float64         `json:"initial_mtbf"`
	InitialTime            float64         `json:"initial_time"`
	PlannedRate            float64         `json:"planned_rate"`
	Beta                   float64         `json:"beta"`
	BetaLower              float64         `json:"beta_lower"`
	BetaUpper              float64         `json:"beta_upper"`
	Lambda                 float64         `json:"lambda"`
	GrowthRate             float64         `json:"growth_rate"`
	CumulativeMTBF         float64         `json:"cumulative_mtbf"`
	InstantaneousMTBF      float64         `json:"instantaneous_mtbf"`
	InstantaneousMTBFLower float64         `json:"instantaneous_mtbf_lower"`
	InstantaneousMTBFUpper float64         `json:"instantaneous_mtbf_upper"`
	ChiSquare              float64         `json:"chi_square"`
	PValue                 float64         `json:"p_value"`
	TimeToGoal             float64         `json:"time_to_goal"`
	Results                json.RawMessage `json:"results,omitempty" swaggertype:"object"`
	FittedAt               string          `json:"fitted_at,omitempty"`
	CreatedAt              string          `json:"created_at"`
	UpdatedAt              string          `json:"updated_at"`
}

// GrowthTestListResponse represents a paginated list of growth tests
type GrowthTestListResponse struct {
	GrowthTests []GrowthTestResponse `json:"growth_tests"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// GrowthRecordInput is one failure time or inspection interval. Failures
// defaults to 1 when omitted.
type GrowthRecordInput struct {
	LeftTime  float64 `json:"left_time,omitempty" validate:"gte=0"`
	RightTime float64 `json:"right_time" validate:"gt=0"`
	Failures  *int    `json:"failures,omitempty" validate:"omitempty,gte=0"`
}

// AddGrowthRecordsRequest represents records appended to a growth test
type AddGrowthRecordsRequest struct {
	Records []GrowthRecordInput `json:"records" validate:"required,min=1,dive"`
}

// GrowthRecordResponse represents a stored growth record
type GrowthRecordResponse struct {
	ID        uuid.UUID `json:"id"`
	LeftTime  float64   `json:"left_time"`
	RightTime float64   `json:"right_time"`
	Failures  int       `json:"failures"`
}

// GrowthRecordListResponse represents the records of a growth test
type GrowthRecordListResponse struct {
	Records []GrowthRecordResponse `json:"records"`
	Total   int64                  `json:"total"`
}

// GrowthFitRequest carries growth data for a fit. Individual tests use
// Times; grouped tests use Intervals.
type GrowthFitRequest struct {
	TestType   string            `json:"test_type" yaml:"test_type" validate:"required,oneof=time_terminated failure_terminated grouped"`
	TestTime   float64           `json:"test_time,omitempty" yaml:"test_time,omitempty" validate:"gte=0"`
	Confidence float64           `json:"confidence,omitempty" yaml:"confidence,omitempty" validate:"omitempty,gt=0,lt=1"`
	Times      []float64         `json:"times,omitempty" yaml:"times,omitempty"`
	Intervals  []growth.Interval `json:"intervals,omitempty" yaml:"intervals,omitempty"`
	GoalMTBF   float64           `json:"goal_mtbf,omitempty" yaml:"goal_mtbf,omitempty" validate:"gte=0"`
	Plan       *growth.Plan      `json:"plan,omitempty" yaml:"plan,omitempty"`
}

// GrowthFitResponse holds every estimate computed for a growth data set
type GrowthFitResponse struct {
	TestID      *uuid.UUID              `json:"test_id,omitempty"`
	TestType    string                  `json:"test_type"`
	CrowAMSAA   *growth.CrowAMSAAResult `json:"crow_amsaa,omitempty"`
	Grouped     *growth.GroupedResult   `json:"grouped,omitempty"`
	Duane       *growth.DuaneResult     `json:"duane,omitempty"`
	MilHandbook *growth.TrendResult     `json:"mil_handbook,omitempty"`
	Laplace     *growth.TrendResult     `json:"laplace,omitempty"`
	GoalMTBF    float64                 `json:"goal_mtbf,omitempty"`
	TimeToGoal  float64                 `json:"time_to_goal,omitempty"`
	PlanCurve   []growth.PlanPoint      `json:"plan_curve,omitempty"`
}

// Create creates a new growth test in a revision
func (s *GrowthService) Create(req *CreateGrowthTestRequest) (*GrowthTestResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.revisionRepo.GetByID(req.RevisionID); err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}

	existing, err := s.testRepo.GetByName(req.RevisionID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing growth test: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGrowthTestExists
	}

	test := &models.GrowthTest{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
			CreatedBy:   req.CreatedBy,
			UpdatedBy:   req.CreatedBy,
		},
		RevisionID:  req.RevisionID,
		TestType:    models.GrowthTestType(req.TestType),
		TestTime:    req.TestTime,
		Confidence:  req.Confidence,
		GoalMTBF:    req.GoalMTBF,
		InitialMTBF: req.InitialMTBF,
		InitialTime: req.InitialTime,
		PlannedRate: req.PlannedRate,
	}
	if test.TestType == "" {
		test.TestType = models.GrowthTestTypeTimeTerminated
	}
	if test.Confidence == 0 {
		test.Confidence = s.defaultConfidence
	}

	if err := s.testRepo.Create(test); err != nil {
		return nil, fmt.Errorf("failed to create growth test: %w", err)
	}
	return s.toResponse(test), nil
}

// GetByID retrieves a growth test by ID
func (s *GrowthService) GetByID(id uuid.UUID) (*GrowthTestResponse, error) {
	test, err := s.testRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}
	return s.toResponse(test), nil
}

// GetByRevision retrieves the growth tests of a revision with pagination
func (s *GrowthService) GetByRevision(revisionID uuid.UUID, page, pageSize int) (*GrowthTestListResponse, error) {
	if _, err := s.revisionRepo.GetByID(revisionID); err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}
	page, pageSize, offset := normalizePage(page, pageSize)

	tests, total, err := s.testRepo.GetByRevisionID(revisionID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get growth tests: %w", err)
	}

	responses := make([]GrowthTestResponse, len(tests))
	for i := range tests {
		responses[i] = *s.toResponse(&tests[i])
	}
	return &GrowthTestListResponse{
		GrowthTests: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a growth test's settings
func (s *GrowthService) Update(id uuid.UUID, req *UpdateGrowthTestRequest) (*GrowthTestResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	test, err := s.testRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.TestType != nil {
		test.TestType = models.GrowthTestType(*req.TestType)
	}
	if req.TestTime != nil {
		test.TestTime = *req.TestTime
	}
	if req.Confidence != nil {
		test.Confidence = *req.Confidence
	}
	if req.GoalMTBF != nil {
		test.GoalMTBF = *req.GoalMTBF
	}
	if req.InitialMTBF != nil {
		test.InitialMTBF = *req.InitialMTBF
	}
	if req.InitialTime != nil {
		test.InitialTime = *req.InitialTime
	}
	if req.PlannedRate != nil {
		test.PlannedRate = *req.PlannedRate
	}
	test.UpdatedBy = req.UpdatedBy

	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("failed to update growth test: %w", err)
	}
	return s.toResponse(test), nil
}

// Delete deletes a growth test and its records
func (s *GrowthService) Delete(id uuid.UUID) error {
	if _, err := s.testRepo.GetByID(id); err != nil {
		return notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}
	if err := s.testRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete growth test: %w", err)
	}
	return nil
}

// AddRecords appends failure times or intervals to a growth test
func (s *GrowthService) AddRecords(testID uuid.UUID, req *AddGrowthRecordsRequest) (*GrowthRecordListResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}

	records := make([]models.GrowthRecord, len(req.Records))
	for i, in := range req.Records {
		if in.LeftTime > in.RightTime {
			return nil, apperrors.NewValidationError("left_time", fmt.Sprintf("record %d: must not exceed right_time", i))
		}
		failures := 1
		if in.Failures != nil {
			failures = *in.Failures
		}
		records[i] = models.GrowthRecord{
			GrowthTestID: testID,
			LeftTime:     in.LeftTime,
			RightTime:    in.RightTime,
			Failures:     failures,
		}
	}
	if err := s.recordRepo.CreateBatch(records); err != nil {
		return nil, fmt.Errorf("failed to create growth records: %w", err)
	}
	return s.GetRecords(testID)
}

// GetRecords retrieves the records of a growth test in time order
func (s *GrowthService) GetRecords(testID uuid.UUID) (*GrowthRecordListResponse, error) {
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}
	records, err := s.recordRepo.GetByTestID(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to get growth records: %w", err)
	}
	out := make([]GrowthRecordResponse, len(records))
	for i, r := range records {
		out[i] = GrowthRecordResponse{ID: r.ID, LeftTime: r.LeftTime, RightTime: r.RightTime, Failures: r.Failures}
	}
	return &GrowthRecordListResponse{Records: out, Total: int64(len(out))}, nil
}

// DeleteRecords removes every record of a growth test
func (s *GrowthService) DeleteRecords(testID uuid.UUID) error {
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}
	if err := s.recordRepo.DeleteByTestID(testID); err != nil {
		return fmt.Errorf("failed to delete growth records: %w", err)
	}
	return nil
}

// Fit fits the stored records of a growth test and saves the estimates
func (s *GrowthService) Fit(ctx context.Context, testID uuid.UUID) (*GrowthFitResponse, error) {
	test, err := s.testRepo.GetByID(testID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGrowthTestNotFound, "get growth test")
	}
	records, err := s.recordRepo.GetByTestID(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to get growth records: %w", err)
	}

	req := &GrowthFitRequest{
		TestType:   string(test.TestType),
		TestTime:   test.TestTime,
		Confidence: test.Confidence,
		GoalMTBF:   test.GoalMTBF,
	}
	if test.TestType == models.GrowthTestTypeGrouped {
		for _, r := range records {
			req.Intervals = append(req.Intervals, growth.Interval{End: r.RightTime, Failures: r.Failures})
		}
	} else {
		for _, r := range records {
			for n := 0; n < r.Failures; n++ {
				req.Times = append(req.Times, r.RightTime)
			}
		}
	}
	if test.InitialMTBF > 0 && test.InitialTime > 0 && test.PlannedRate > 0 {
		req.Plan = &growth.Plan{InitialMTBF: test.InitialMTBF, InitialTime: test.InitialTime, Alpha: test.PlannedRate}
	}

	resp, err := s.FitData(ctx, req)
	if err != nil {
		return nil, err
	}
	resp.TestID = &test.ID

	now := time.Now()
	test.FittedAt = &now
	test.TimeToGoal = resp.TimeToGoal
	test.Results = toJSON(resp)
	if g := resp.Grouped; g != nil {
		test.Beta = g.Beta
		test.BetaLower, test.BetaUpper = 0, 0
		test.Lambda = g.Lambda
		test.GrowthRate = g.GrowthRate
		test.CumulativeMTBF = g.CumulativeMTBF
		test.InstantaneousMTBF = g.InstantaneousMTBF
		test.InstantaneousMTBFLower, test.InstantaneousMTBFUpper = 0, 0
		test.ChiSquare = g.ChiSquare
		test.PValue = g.PValue
	}
	if c := resp.CrowAMSAA; c != nil {
		test.Beta = c.Beta
		test.BetaLower = c.BetaLower
		test.BetaUpper = c.BetaUpper
		test.Lambda = c.Lambda
		test.GrowthRate = c.GrowthRate
		test.CumulativeMTBF = c.CumulativeMTBF
		test.InstantaneousMTBF = c.InstantaneousMTBF
		test.InstantaneousMTBFLower = c.InstantaneousMTBFLower
		test.InstantaneousMTBFUpper = c.InstantaneousMTBFUpper
		test.ChiSquare = resp.MilHandbook.Statistic
		test.PValue = resp.MilHandbook.PValue
	}

	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("failed to save growth fit: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"growth_test_id": test.ID,
		"beta":           test.Beta,
	}).Info("Growth test fitted")
	return resp, nil
}

// FitData fits growth data that is not stored
func (s *GrowthService) FitData(ctx context.Context, req *GrowthFitRequest) (*GrowthFitResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	confidence := req.Confidence
	if confidence == 0 {
		confidence = s.defaultConfidence
	}

	start := time.Now()
	resp, err := fitGrowth(req, confidence)
	observe(metrics.KindGrowth, start, err)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Growth fit failed")
		return nil, err
	}
	return resp, nil
}

func fitGrowth(req *GrowthFitRequest, confidence float64) (*GrowthFitResponse, error) {
	resp := &GrowthFitResponse{TestType: req.TestType, GoalMTBF: req.GoalMTBF}

	var endTime float64
	if req.TestType == string(models.GrowthTestTypeGrouped) {
		g, err := growth.CrowAMSAAGrouped(req.Intervals, confidence)
		if err != nil {
			return nil, err
		}
		resp.Grouped = g
		endTime = g.TestTime
	} else {
		term := growth.Termination(req.TestType)
		c, err := growth.CrowAMSAA(req.Times, req.TestTime, term, confidence)
		if err != nil {
			return nil, err
		}
		resp.CrowAMSAA = c
		endTime = c.TestTime

		if resp.Duane, err = growth.Duane(req.Times); err != nil {
			return nil, err
		}
		if resp.MilHandbook, err = growth.MilHandbookTest(req.Times, req.TestTime, term, confidence); err != nil {
			return nil, err
		}
		if resp.Laplace, err = growth.LaplaceTest(req.Times, req.TestTime, term, confidence); err != nil {
			return nil, err
		}
	}

	if req.Plan != nil {
		if req.GoalMTBF > 0 {
			t, err := growth.TimeToGoal(*req.Plan, req.GoalMTBF)
			if err != nil {
				return nil, err
			}
			resp.TimeToGoal = t
			if t > endTime {
				endTime = t
			}
		}
		curve, err := growth.IdealGrowthCurve(*req.Plan, planTimes(req.Plan.InitialTime, endTime))
		if err != nil {
			return nil, err
		}
		resp.PlanCurve = curve
	}
	return resp, nil
}

// planTimes spreads planPoints times evenly from the initial phase to end.
func planTimes(initial, end float64) []float64 {
	if end <= initial {
		return []float64{initial}
	}
	step := (end - initial) / float64(planPoints-1)
	out := make([]float64, planPoints)
	for i := range out {
		out[i] = initial + float64(i)*step
	}
	out[planPoints-1] = end
	return out
}

func (s *GrowthService) toResponse(t *models.GrowthTest) *GrowthTestResponse {
	return &GrowthTestResponse{
		ID:                     t.ID,
		RevisionID:             t.RevisionID,
		Name:                   t.Name,
		Title:                  t.Title,
		Description:            t.Description,
		TestType:               string(t.TestType),
		TestTime:               t.TestTime,
		Confidence:             t.Confidence,
		GoalMTBF:               t.GoalMTBF,
		InitialMTBF:            t.InitialMTBF,
		InitialTime:            t.InitialTime,
		PlannedRate:            t.PlannedRate,
		Beta:                   t.Beta,
		BetaLower:              t.BetaLower,
		BetaUpper:              t.BetaUpper,
		Lambda:                 t.Lambda,
		GrowthRate:             t.GrowthRate,
		CumulativeMTBF:         t.CumulativeMTBF,
		InstantaneousMTBF:      t.InstantaneousMTBF,
		InstantaneousMTBFLower: t.InstantaneousMTBFLower,
		InstantaneousMTBFUpper: t.InstantaneousMTBFUpper,
		ChiSquare:              t.ChiSquare,
		PValue:                 t.PValue,
		TimeToGoal:             t.TimeToGoal,
		Results:                t.Results,
		FittedAt:               formatTime(t.FittedAt),
		CreatedAt:              t.CreatedAt.Format(timeLayout),
		UpdatedAt:              t.UpdatedAt.Format(timeLayout),
	}
}
