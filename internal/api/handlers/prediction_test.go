package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"rtk-backend/internal/api/handlers"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/mocks"
	"rtk-backend/internal/service"
	"rtk-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PredictionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPredictionServiceInterface
	handler     *handlers.PredictionHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *PredictionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPredictionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPredictionHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/predict", suite.handler.Predict)
	v1.GET("/predict/catalog", suite.handler.Catalog)
}

func (suite *PredictionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PredictionHandlerTestSuite) TestPredict() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"mission_time": 1000,
			"parts": []map[string]interface{}{
				{"id": "SYS", "category": "assembly"},
				{"id": "R1", "parent_id": "SYS", "category": "resistor", "quantity": 10},
			},
		}

		suite.mockService.EXPECT().
			Predict(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.PredictRequest) (*service.PredictResponse, error) {
				assert.Len(t, req.Parts, 2)
				assert.Equal(t, "SYS", req.Parts[1].ParentID)
				return &service.PredictResponse{
					MissionTime:      req.MissionTime,
					HazardRateActive: 0.02,
					Parts:            []service.PredictPartResult{{ID: "SYS"}, {ID: "R1", ParentID: "SYS"}},
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/predict", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.PredictResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 1000.0, response.MissionTime)
		assert.Len(t, response.Parts, 2)
	})

	suite.T().Run("UnknownQuality", func(t *testing.T) {
		suite.mockService.EXPECT().
			Predict(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewCalculationError("R1", apperrors.ErrUnknownQuality.Error()))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/predict", map[string]interface{}{
			"parts": []map[string]interface{}{{"id": "R1", "category": "resistor", "quality": "Z"}},
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unknown quality level")
	})
}

func (suite *PredictionHandlerTestSuite) TestCatalog() {
	suite.mockService.EXPECT().Catalog().Return(&service.CatalogResponse{
		Categories:   []service.CategoryInfo{{Category: "resistor"}},
		Environments: []string{"GB", "GF"},
		Multiplier:   1e6,
	})

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/predict/catalog", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.CatalogResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "resistor", response.Categories[0].Category)
	assert.Equal(suite.T(), 1e6, response.Multiplier)
}

func TestPredictionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PredictionHandlerTestSuite))
}
