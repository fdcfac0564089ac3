package service_test

import (
	"context"
	"math"
	"testing"

	"rtk-backend/internal/database/models"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/growth"
	"rtk-backend/internal/mocks"
	"rtk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GrowthServiceTestSuite defines the test suite for GrowthService
type GrowthServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTestRepo     *mocks.MockGrowthTestRepositoryInterface
	mockRecordRepo   *mocks.MockGrowthRecordRepositoryInterface
	mockRevisionRepo *mocks.MockRevisionRepositoryInterface
	growthService    *service.GrowthService
}

// SetupTest sets up the test suite
func (suite *GrowthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTestRepo = mocks.NewMockGrowthTestRepositoryInterface(suite.ctrl)
	suite.mockRecordRepo = mocks.NewMockGrowthRecordRepositoryInterface(suite.ctrl)
	suite.mockRevisionRepo = mocks.NewMockRevisionRepositoryInterface(suite.ctrl)
	suite.growthService = service.NewGrowthService(suite.mockTestRepo, suite.mockRecordRepo, suite.mockRevisionRepo, validator.New(), 0.9)
}

// TearDownTest cleans up after each test
func (suite *GrowthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GrowthServiceTestSuite) TestCreateGrowthTestDefaults() {
	revisionID := uuid.New()
	req := &service.CreateGrowthTestRequest{RevisionID: revisionID, Name: "tt-1", Title: "Qualification"}

	suite.mockRevisionRepo.EXPECT().GetByID(revisionID).Return(&models.Revision{}, nil)
	suite.mockTestRepo.EXPECT().GetByName(revisionID, "tt-1").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTestRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.growthService.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "time_terminated", response.TestType)
	assert.Equal(suite.T(), 0.9, response.Confidence)
}

func (suite *GrowthServiceTestSuite) TestCreateGrowthTestDuplicate() {
	revisionID := uuid.New()
	suite.mockRevisionRepo.EXPECT().GetByID(revisionID).Return(&models.Revision{}, nil)
	suite.mockTestRepo.EXPECT().GetByName(revisionID, "tt-1").Return(&models.GrowthTest{}, nil)

	_, err := suite.growthService.Create(&service.CreateGrowthTestRequest{RevisionID: revisionID, Name: "tt-1", Title: "Q"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGrowthTestExists)
}

func (suite *GrowthServiceTestSuite) TestCreateGrowthTestInvalidType() {
	_, err := suite.growthService.Create(&service.CreateGrowthTestRequest{
		RevisionID: uuid.New(), Name: "x", Title: "x", TestType: "weekly",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *GrowthServiceTestSuite) TestAddRecordsDefaultsFailures() {
	testID := uuid.New()
	zero := 0
	req := &service.AddGrowthRecordsRequest{Records: []service.GrowthRecordInput{
		{RightTime: 10},
		{LeftTime: 10, RightTime: 50, Failures: &zero},
	}}

	suite.mockTestRepo.EXPECT().GetByID(testID).Return(&models.GrowthTest{}, nil).Times(2)
	suite.mockRecordRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(records []models.GrowthRecord) error {
			require.Len(suite.T(), records, 2)
			assert.Equal(suite.T(), 1, records[0].Failures)
			assert.Equal(suite.T(), 0, records[1].Failures)
			assert.Equal(suite.T(), testID, records[1].GrowthTestID)
			return nil
		})
	suite.mockRecordRepo.EXPECT().GetByTestID(testID).Return([]models.GrowthRecord{{RightTime: 10, Failures: 1}, {LeftTime: 10, RightTime: 50}}, nil)

	response, err := suite.growthService.AddRecords(testID, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), response.Total)
}

func (suite *GrowthServiceTestSuite) TestAddRecordsRejectsInvertedInterval() {
	testID := uuid.New()
	suite.mockTestRepo.EXPECT().GetByID(testID).Return(&models.GrowthTest{}, nil)

	_, err := suite.growthService.AddRecords(testID, &service.AddGrowthRecordsRequest{Records: []service.GrowthRecordInput{
		{LeftTime: 60, RightTime: 50},
	}})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *GrowthServiceTestSuite) TestFitDataTimeTerminated() {
	times := []float64{10, 40, 90, 160, 300, 500}
	req := &service.GrowthFitRequest{TestType: "time_terminated", TestTime: 600, Times: times}

	response, err := suite.growthService.FitData(context.Background(), req)

	require.NoError(suite.T(), err)
	sum := 0.0
	for _, t := range times {
		sum += math.Log(600 / t)
	}
	beta := 6 / sum
	require.NotNil(suite.T(), response.CrowAMSAA)
	assert.InDelta(suite.T(), beta, response.CrowAMSAA.Beta, 1e-12)
	assert.InDelta(suite.T(), 6/math.Pow(600, beta), response.CrowAMSAA.Lambda, 1e-12)
	assert.Equal(suite.T(), 0.9, response.CrowAMSAA.Confidence)
	require.NotNil(suite.T(), response.Duane)
	require.NotNil(suite.T(), response.MilHandbook)
	assert.InDelta(suite.T(), 2*sum, response.MilHandbook.Statistic, 1e-9)
	assert.NotNil(suite.T(), response.Laplace)
	assert.Nil(suite.T(), response.Grouped)
	assert.Empty(suite.T(), response.PlanCurve)
}

func (suite *GrowthServiceTestSuite) TestFitDataGrouped() {
	req := &service.GrowthFitRequest{
		TestType: "grouped",
		Intervals: []growth.Interval{
			{End: 100, Failures: 8},
			{End: 200, Failures: 5},
			{End: 300, Failures: 4},
			{End: 400, Failures: 3},
		},
	}

	response, err := suite.growthService.FitData(context.Background(), req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.Grouped)
	assert.Nil(suite.T(), response.CrowAMSAA)
	assert.Nil(suite.T(), response.Duane)
	assert.Equal(suite.T(), 20, response.Grouped.Failures)
	// failures thin out over time, so the shape shows growth
	assert.Less(suite.T(), response.Grouped.Beta, 1.0)
}

func (suite *GrowthServiceTestSuite) TestFitDataTooFewFailures() {
	_, err := suite.growthService.FitData(context.Background(), &service.GrowthFitRequest{TestType: "failure_terminated", Times: []float64{5}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientData)
}

func (suite *GrowthServiceTestSuite) TestFitStoresResults() {
	testID := uuid.New()
	test := &models.GrowthTest{
		BaseModel:   models.BaseModel{ID: testID, Name: "ft"},
		TestType:    models.GrowthTestTypeFailureTerminated,
		Confidence:  0.95,
		GoalMTBF:    100,
		InitialMTBF: 20,
		InitialTime: 50,
		PlannedRate: 0.3,
	}
	records := []models.GrowthRecord{
		{RightTime: 25, Failures: 1},
		{RightTime: 80, Failures: 1},
		{RightTime: 150, Failures: 2},
		{RightTime: 270, Failures: 1},
		{RightTime: 400, Failures: 1},
	}

	suite.mockTestRepo.EXPECT().GetByID(testID).Return(test, nil)
	suite.mockRecordRepo.EXPECT().GetByTestID(testID).Return(records, nil)
	suite.mockTestRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.GrowthTest) error {
			assert.NotZero(suite.T(), t.Beta)
			assert.NotEmpty(suite.T(), t.Results)
			assert.NotNil(suite.T(), t.FittedAt)
			assert.Greater(suite.T(), t.TimeToGoal, 50.0)
			return nil
		})

	response, err := suite.growthService.Fit(context.Background(), testID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), response.TestID)
	assert.Equal(suite.T(), testID, *response.TestID)
	// a record with two failures counts twice
	assert.Equal(suite.T(), 6, response.CrowAMSAA.Failures)
	assert.Equal(suite.T(), 400.0, response.CrowAMSAA.TestTime)
	assert.Equal(suite.T(), test.Beta, response.CrowAMSAA.Beta)
	assert.Len(suite.T(), response.PlanCurve, 20)
	assert.Equal(suite.T(), 50.0, response.PlanCurve[0].Time)
}

func (suite *GrowthServiceTestSuite) TestFitNotFound() {
	testID := uuid.New()
	suite.mockTestRepo.EXPECT().GetByID(testID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.growthService.Fit(context.Background(), testID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrGrowthTestNotFound)
}

// TestGrowthServiceTestSuite runs the test suite
func TestGrowthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GrowthServiceTestSuite))
}
