package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"rtk-backend/internal/api/handlers"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/mocks"
	"rtk-backend/internal/service"
	"rtk-backend/internal/survival"
	"rtk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SurvivalHandlerTestSuite defines the test suite for SurvivalHandler
type SurvivalHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSurvivalServiceInterface
	handler     *handlers.SurvivalHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *SurvivalHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSurvivalServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSurvivalHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	datasets := v1.Group("/survival-datasets")
	{
		datasets.POST("", suite.handler.CreateDataset)
		datasets.GET("", suite.handler.ListDatasets)
		datasets.GET("/:id", suite.handler.GetDataset)
		datasets.PUT("/:id", suite.handler.UpdateDataset)
		datasets.DELETE("/:id", suite.handler.DeleteDataset)
		datasets.GET("/:id/records", suite.handler.GetSurvivalRecords)
		datasets.POST("/:id/records", suite.handler.AddSurvivalRecords)
		datasets.DELETE("/:id/records", suite.handler.DeleteSurvivalRecords)
		datasets.POST("/:id/fit", suite.handler.FitDataset)
	}
	v1.POST("/survival/fit", suite.handler.FitSurvivalData)
}

func (suite *SurvivalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SurvivalHandlerTestSuite) TestCreateDataset() {
	suite.T().Run("Success", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateDatasetRequest) (*service.DatasetResponse, error) {
				assert.Equal(t, "weibull", req.Distribution)
				return &service.DatasetResponse{ID: uuid.New(), RevisionID: req.RevisionID, Name: req.Name, Distribution: req.Distribution}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival-datasets", map[string]interface{}{
			"revision_id":  revisionID.String(),
			"name":         "field-returns",
			"title":        "Field returns 2025",
			"distribution": "weibull",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.DatasetResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, revisionID, response.RevisionID)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrDatasetExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival-datasets", map[string]interface{}{
			"revision_id": uuid.New().String(),
			"name":        "field-returns",
			"title":       "Field returns",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

func (suite *SurvivalHandlerTestSuite) TestListDatasets() {
	suite.T().Run("DefaultPagination", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().GetByRevision(revisionID, 1, 20).Return(&service.DatasetListResponse{Page: 1, PageSize: 20}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/survival-datasets?revision_id="+revisionID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidRevision", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/survival-datasets?revision_id=abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "revision_id")
	})
}

func (suite *SurvivalHandlerTestSuite) TestGetUpdateDelete() {
	datasetID := uuid.New()

	suite.T().Run("GetNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(datasetID).Return(nil, apperrors.ErrDatasetNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/survival-datasets/"+datasetID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "survival dataset not found")
	})

	suite.T().Run("Update", func(t *testing.T) {
		suite.mockService.EXPECT().Update(datasetID, gomock.Any()).Return(&service.DatasetResponse{ID: datasetID, Confidence: 0.95}, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/survival-datasets/"+datasetID.String(), map[string]interface{}{"confidence": 0.95})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(datasetID).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/survival-datasets/"+datasetID.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *SurvivalHandlerTestSuite) TestRecords() {
	datasetID := uuid.New()

	suite.T().Run("Add", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddRecords(datasetID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.AddSurvivalRecordsRequest) (*service.SurvivalRecordListResponse, error) {
				require.Len(t, req.Records, 2)
				assert.Equal(t, "right_censored", req.Records[1].Status)
				assert.Equal(t, 5, req.Records[1].Quantity)
				return &service.SurvivalRecordListResponse{Total: 2}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival-datasets/"+datasetID.String()+"/records", map[string]interface{}{
			"records": []map[string]interface{}{
				{"right_time": 120, "status": "failure"},
				{"right_time": 500, "status": "right_censored", "quantity": 5},
			},
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("AddValidationError", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddRecords(datasetID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("left_time", "must not exceed right_time"))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival-datasets/"+datasetID.String()+"/records", map[string]interface{}{
			"records": []map[string]interface{}{{"left_time": 300, "right_time": 100, "status": "interval_censored"}},
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "left_time")
	})

	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().GetRecords(datasetID).Return(&service.SurvivalRecordListResponse{Total: 0}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/survival-datasets/"+datasetID.String()+"/records", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteRecords(datasetID).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/survival-datasets/"+datasetID.String()+"/records", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *SurvivalHandlerTestSuite) TestFit() {
	suite.T().Run("DistributionQuery", func(t *testing.T) {
		datasetID := uuid.New()
		fit := &survival.Fit{Distribution: survival.Weibull, Failures: 3, Parameters: map[string]float64{"beta": 1.8, "eta": 410}}
		suite.mockService.EXPECT().
			Fit(gomock.Any(), datasetID, "all").
			Return(&service.SurvivalFitResponse{
				DatasetID:    &datasetID,
				Distribution: "all",
				Fit:          fit,
				Rankings: []survival.Ranking{
					{Rank: 1, Distribution: survival.Weibull, Fit: fit},
					{Rank: 2, Distribution: survival.Exponential},
				},
			}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival-datasets/"+datasetID.String()+"/fit?distribution=all", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.SurvivalFitResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		require.NotNil(t, response.Fit)
		assert.Equal(t, survival.Weibull, response.Fit.Distribution)
		assert.Len(t, response.Rankings, 2)
	})

	suite.T().Run("DefaultDistribution", func(t *testing.T) {
		datasetID := uuid.New()
		suite.mockService.EXPECT().Fit(gomock.Any(), datasetID, "").Return(nil, apperrors.ErrInsufficientData)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival-datasets/"+datasetID.String()+"/fit", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "insufficient data")
	})

	suite.T().Run("Stateless", func(t *testing.T) {
		suite.mockService.EXPECT().
			FitData(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.SurvivalFitRequest) (*service.SurvivalFitResponse, error) {
				require.Len(t, req.Records, 2)
				assert.Equal(t, survival.RightCensored, req.Records[1].Status)
				return &service.SurvivalFitResponse{
					Distribution: "exponential",
					Fit:          &survival.Fit{Distribution: survival.Exponential, Failures: 1, Suspensions: 1},
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/survival/fit", map[string]interface{}{
			"distribution": "exponential",
			"records": []map[string]interface{}{
				{"right_time": 100, "status": "failure", "quantity": 1},
				{"right_time": 300, "status": "right_censored", "quantity": 1},
			},
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestSurvivalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SurvivalHandlerTestSuite))
}
