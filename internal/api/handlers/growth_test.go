package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"rtk-backend/internal/api/handlers"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/growth"
	"rtk-backend/internal/mocks"
	"rtk-backend/internal/service"
	"rtk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GrowthHandlerTestSuite defines the test suite for GrowthHandler
type GrowthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGrowthServiceInterface
	handler     *handlers.GrowthHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *GrowthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGrowthServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGrowthHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	tests := v1.Group("/growth-tests")
	{
		tests.POST("", suite.handler.CreateGrowthTest)
		tests.GET("", suite.handler.ListGrowthTests)
		tests.GET("/:id", suite.handler.GetGrowthTest)
		tests.PUT("/:id", suite.handler.UpdateGrowthTest)
		tests.DELETE("/:id", suite.handler.DeleteGrowthTest)
		tests.GET("/:id/records", suite.handler.GetGrowthRecords)
		tests.POST("/:id/records", suite.handler.AddGrowthRecords)
		tests.DELETE("/:id/records", suite.handler.DeleteGrowthRecords)
		tests.POST("/:id/fit", suite.handler.FitGrowthTest)
	}
	v1.POST("/growth/fit", suite.handler.FitGrowthData)
}

func (suite *GrowthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GrowthHandlerTestSuite) TestCreateGrowthTest() {
	suite.T().Run("Success", func(t *testing.T) {
		revisionID := uuid.New()
		testID := uuid.New()

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateGrowthTestRequest) (*service.GrowthTestResponse, error) {
				assert.Equal(t, revisionID, req.RevisionID)
				assert.Equal(t, "grouped", req.TestType)
				return &service.GrowthTestResponse{ID: testID, RevisionID: revisionID, Name: req.Name, TestType: req.TestType}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/growth-tests", map[string]interface{}{
			"revision_id": revisionID.String(),
			"name":        "tafit-1",
			"title":       "TAAF phase 1",
			"test_type":   "grouped",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.GrowthTestResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, testID, response.ID)
	})

	suite.T().Run("RevisionNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrRevisionNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/growth-tests", map[string]interface{}{
			"revision_id": uuid.New().String(),
			"name":        "tafit-1",
			"title":       "TAAF",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "revision not found")
	})
}

func (suite *GrowthHandlerTestSuite) TestListGrowthTests() {
	suite.T().Run("Success", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().
			GetByRevision(revisionID, 2, 10).
			Return(&service.GrowthTestListResponse{Total: 12, Page: 2, PageSize: 10}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/growth-tests?revision_id="+revisionID.String()+"&page=2&page_size=10", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("MissingRevision", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/growth-tests", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "revision_id")
	})
}

func (suite *GrowthHandlerTestSuite) TestGetUpdateDelete() {
	testID := uuid.New()

	suite.T().Run("Get", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(testID).Return(&service.GrowthTestResponse{ID: testID, Beta: 0.61}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/growth-tests/"+testID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.GrowthTestResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 0.61, response.Beta)
	})

	suite.T().Run("Update", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(testID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.UpdateGrowthTestRequest) (*service.GrowthTestResponse, error) {
				require.NotNil(t, req.GoalMTBF)
				assert.Equal(t, 250.0, *req.GoalMTBF)
				return &service.GrowthTestResponse{ID: testID, GoalMTBF: *req.GoalMTBF}, nil
			})

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/growth-tests/"+testID.String(), map[string]interface{}{"goal_mtbf": 250})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("DeleteNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(testID).Return(apperrors.ErrGrowthTestNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/growth-tests/"+testID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "growth test not found")
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/growth-tests/123", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid growth test ID")
	})
}

func (suite *GrowthHandlerTestSuite) TestRecords() {
	testID := uuid.New()

	suite.T().Run("Add", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddRecords(testID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.AddGrowthRecordsRequest) (*service.GrowthRecordListResponse, error) {
				require.Len(t, req.Records, 2)
				assert.Nil(t, req.Records[0].Failures)
				require.NotNil(t, req.Records[1].Failures)
				assert.Equal(t, 3, *req.Records[1].Failures)
				return &service.GrowthRecordListResponse{Total: 2}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/growth-tests/"+testID.String()+"/records", map[string]interface{}{
			"records": []map[string]interface{}{
				{"right_time": 25},
				{"left_time": 25, "right_time": 100, "failures": 3},
			},
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().GetRecords(testID).Return(&service.GrowthRecordListResponse{
			Records: []service.GrowthRecordResponse{{RightTime: 25, Failures: 1}},
			Total:   1,
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/growth-tests/"+testID.String()+"/records", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.GrowthRecordListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(1), response.Total)
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteRecords(testID).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/growth-tests/"+testID.String()+"/records", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *GrowthHandlerTestSuite) TestFit() {
	suite.T().Run("StoredTest", func(t *testing.T) {
		testID := uuid.New()
		suite.mockService.EXPECT().
			Fit(gomock.Any(), testID).
			Return(&service.GrowthFitResponse{
				TestID:    &testID,
				TestType:  "time_terminated",
				CrowAMSAA: &growth.CrowAMSAAResult{Failures: 6, Beta: 0.55},
			}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/growth-tests/"+testID.String()+"/fit", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.GrowthFitResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		require.NotNil(t, response.CrowAMSAA)
		assert.Equal(t, 6, response.CrowAMSAA.Failures)
	})

	suite.T().Run("InsufficientData", func(t *testing.T) {
		testID := uuid.New()
		suite.mockService.EXPECT().Fit(gomock.Any(), testID).Return(nil, apperrors.ErrInsufficientData)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/growth-tests/"+testID.String()+"/fit", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "insufficient data")
	})

	suite.T().Run("Stateless", func(t *testing.T) {
		suite.mockService.EXPECT().
			FitData(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.GrowthFitRequest) (*service.GrowthFitResponse, error) {
				assert.Equal(t, "grouped", req.TestType)
				require.Len(t, req.Intervals, 2)
				assert.Equal(t, growth.Interval{End: 200, Failures: 5}, req.Intervals[1])
				return &service.GrowthFitResponse{TestType: req.TestType, Grouped: &growth.GroupedResult{Intervals: 2, Failures: 13}}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/growth/fit", map[string]interface{}{
			"test_type": "grouped",
			"intervals": []map[string]interface{}{{"end": 100, "failures": 8}, {"end": 200, "failures": 5}},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.GrowthFitResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		require.NotNil(t, response.Grouped)
		assert.Equal(t, 13, response.Grouped.Failures)
	})
}

func TestGrowthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GrowthHandlerTestSuite))
}
