package handlers_test

import (
	"net/http"
	"testing"

	"rtk-backend/internal/api/handlers"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/mocks"
	"rtk-backend/internal/service"
	"rtk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HardwareHandlerTestSuite defines the test suite for HardwareHandler
type HardwareHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHardwareServiceInterface
	handler     *handlers.HardwareHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HardwareHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHardwareServiceInterface(suite.ctrl)
	suite.handler = handlers.NewHardwareHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/revisions/:id/hardware", suite.handler.ListHardware)
	v1.POST("/revisions/:id/hardware", suite.handler.CreateHardware)
	v1.POST("/revisions/:id/calculate", suite.handler.CalculateRevision)
	hardware := v1.Group("/hardware")
	{
		hardware.GET("/:id", suite.handler.GetHardware)
		hardware.PUT("/:id", suite.handler.UpdateHardware)
		hardware.DELETE("/:id", suite.handler.DeleteHardware)
		hardware.POST("/:id/calculate", suite.handler.CalculateHardware)
	}
}

// TearDownTest cleans up after each test
func (suite *HardwareHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HardwareHandlerTestSuite) TestCreateHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		revisionID := uuid.New()
		hardwareID := uuid.New()
		requestBody := map[string]interface{}{
			"ref_des":     "R1",
			"category":    "resistor",
			"subcategory": "film",
			"quantity":    4,
			"attributes":  map[string]float64{"resistance": 10000, "power_ratio": 0.3},
		}

		suite.mockService.EXPECT().
			Create(revisionID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.CreateHardwareRequest) (*service.HardwareResponse, error) {
				assert.Equal(t, "R1", req.RefDes)
				assert.Equal(t, 4, req.Quantity)
				assert.Equal(t, 0.3, req.Attributes["power_ratio"])
				return &service.HardwareResponse{ID: hardwareID, RevisionID: revisionID, RefDes: req.RefDes, Category: req.Category, Quantity: req.Quantity}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/hardware", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.HardwareResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, hardwareID, response.ID)
		assert.Equal(t, "resistor", response.Category)
	})

	suite.T().Run("InvalidRevisionID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/bad/hardware", map[string]interface{}{"ref_des": "R1"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid revision ID")
	})

	suite.T().Run("ParentNotFound", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().Create(revisionID, gomock.Any()).Return(nil, apperrors.ErrParentHardwareNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/hardware",
			map[string]interface{}{"ref_des": "R1", "category": "resistor", "parent_id": uuid.New().String()})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "parent assembly not found")
	})

	suite.T().Run("DuplicateRefDes", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().Create(revisionID, gomock.Any()).Return(nil, apperrors.ErrHardwareExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/hardware",
			map[string]interface{}{"ref_des": "R1", "category": "resistor"})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

func (suite *HardwareHandlerTestSuite) TestListHardware() {
	revisionID := uuid.New()
	suite.mockService.EXPECT().GetByRevision(revisionID).Return(&service.HardwareListResponse{
		Hardware: []service.HardwareResponse{{RefDes: "SYS"}, {RefDes: "R1"}},
		Total:    2,
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/revisions/"+revisionID.String()+"/hardware", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.HardwareListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Hardware, 2)
}

func (suite *HardwareHandlerTestSuite) TestGetUpdateDeleteHardware() {
	hardwareID := uuid.New()

	suite.T().Run("Get", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(hardwareID).Return(&service.HardwareResponse{ID: hardwareID, RefDes: "C3"}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/hardware/"+hardwareID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("GetNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(hardwareID).Return(nil, apperrors.ErrHardwareNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/hardware/"+hardwareID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "hardware item not found")
	})

	suite.T().Run("UpdateCycle", func(t *testing.T) {
		suite.mockService.EXPECT().Update(hardwareID, gomock.Any()).Return(nil, apperrors.ErrAssemblyCycle)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/hardware/"+hardwareID.String(), map[string]interface{}{"parent_id": uuid.New().String()})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "cycle")
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(hardwareID).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/hardware/"+hardwareID.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func (suite *HardwareHandlerTestSuite) TestCalculateHardware() {
	suite.T().Run("Success", func(t *testing.T) {
		hardwareID := uuid.New()
		suite.mockService.EXPECT().
			Calculate(gomock.Any(), hardwareID).
			Return(&service.HardwareResponse{ID: hardwareID, HazardRateActive: 0.0042, Overstressed: true}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/hardware/"+hardwareID.String()+"/calculate", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.HardwareResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.InDelta(t, 0.0042, response.HazardRateActive, 1e-12)
		assert.True(t, response.Overstressed)
	})

	suite.T().Run("UnknownCategory", func(t *testing.T) {
		hardwareID := uuid.New()
		suite.mockService.EXPECT().
			Calculate(gomock.Any(), hardwareID).
			Return(nil, apperrors.NewCalculationError("R1", apperrors.ErrUnknownCategory.Error()))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/hardware/"+hardwareID.String()+"/calculate", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "calculation failed for R1")
	})
}

func (suite *HardwareHandlerTestSuite) TestCalculateRevision() {
	revisionID := uuid.New()
	suite.mockService.EXPECT().
		CalculateRevision(gomock.Any(), revisionID).
		Return(&service.RevisionCalculationResponse{
			RevisionID:       revisionID,
			HazardRateActive: 1.25,
			MTBF:             800000,
			PartCount:        3,
			Failures:         []service.PartFailure{{RefDes: "U9", Error: "unknown part category"}},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/calculate", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.RevisionCalculationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 3, response.PartCount)
	assert.Len(suite.T(), response.Failures, 1)
	assert.Equal(suite.T(), "U9", response.Failures[0].RefDes)
}

func TestHardwareHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HardwareHandlerTestSuite))
}
