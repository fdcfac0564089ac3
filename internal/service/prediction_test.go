package service_test

import (
	"context"
	"testing"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PredictionServiceTestSuite defines the test suite for PredictionService
type PredictionServiceTestSuite struct {
	suite.Suite
	predictionService *service.PredictionService
}

// SetupTest sets up the test suite
func (suite *PredictionServiceTestSuite) SetupTest() {
	suite.predictionService = service.NewPredictionService(validator.New(), 1e6, 100)
}

func (suite *PredictionServiceTestSuite) TestPredictRollsUpAssemblies() {
	req := &service.PredictRequest{
		MissionTime: 1000,
		Parts: []service.PredictPart{
			{ID: "board", Category: "assembly", Quantity: 2},
			{ID: "F1", ParentID: "board", Category: "miscellaneous", Subcategory: "fuse", Quality: "MIL-SPEC"},
			{ID: "R1", ParentID: "board", Category: "resistor", Subcategory: "film", Quality: "M", Quantity: 5},
			{ID: "Y1", Category: "miscellaneous", HazardRateType: "specified_mtbf", SpecifiedMTBF: 2e6},
		},
	}

	response, err := suite.predictionService.Predict(context.Background(), req)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), response.Parts, 4)
	board := response.Parts[0]
	// 0.010 + 5 * 0.0012 per board
	assert.InDelta(suite.T(), 0.016, board.HazardRateActive, 1e-12)
	assert.InDelta(suite.T(), 0.032, board.HazardRateLogistics, 1e-12)
	require.Len(suite.T(), board.Contributions, 2)

	assert.InDelta(suite.T(), 0.5, response.Parts[3].HazardRateActive, 1e-12)
	assert.InDelta(suite.T(), 0.532, response.HazardRateActive, 1e-12)
	assert.InDelta(suite.T(), 1e6/0.532, response.MTBF, 1e-6)
	assert.Equal(suite.T(), 1000.0, response.MissionTime)
	assert.InDelta(suite.T(), 100*0.006/0.016, response.Parts[2].PercentOfParent, 1e-9)
	assert.Equal(suite.T(), 0.0012, response.Parts[2].Factors["lambda_g"])
}

func (suite *PredictionServiceTestSuite) TestPredictDefaultsMissionTime() {
	req := &service.PredictRequest{
		Parts: []service.PredictPart{{ID: "F1", Category: "miscellaneous", Subcategory: "fuse", Quality: "MIL-SPEC"}},
	}

	response, err := suite.predictionService.Predict(context.Background(), req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100.0, response.MissionTime)
}

func (suite *PredictionServiceTestSuite) TestPredictUnknownSubcategory() {
	req := &service.PredictRequest{
		Parts: []service.PredictPart{{ID: "X1", Category: "resistor", Subcategory: "bogus", Quality: "M"}},
	}

	_, err := suite.predictionService.Predict(context.Background(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnknownSubcategory)
	assert.Contains(suite.T(), err.Error(), "part X1")
}

func (suite *PredictionServiceTestSuite) TestPredictDuplicateID() {
	part := service.PredictPart{ID: "F1", Category: "miscellaneous", Subcategory: "fuse", Quality: "MIL-SPEC"}

	_, err := suite.predictionService.Predict(context.Background(), &service.PredictRequest{Parts: []service.PredictPart{part, part}})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PredictionServiceTestSuite) TestPredictParentMustBeAssembly() {
	req := &service.PredictRequest{
		Parts: []service.PredictPart{
			{ID: "F1", Category: "miscellaneous", Subcategory: "fuse", Quality: "MIL-SPEC"},
			{ID: "F2", ParentID: "F1", Category: "miscellaneous", Subcategory: "fuse", Quality: "MIL-SPEC"},
		},
	}

	_, err := suite.predictionService.Predict(context.Background(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrParentNotAssembly)
}

func (suite *PredictionServiceTestSuite) TestPredictInvalidEnvironment() {
	req := &service.PredictRequest{
		Parts: []service.PredictPart{{ID: "F1", Category: "miscellaneous", Subcategory: "fuse", Quality: "MIL-SPEC", Environment: "moon"}},
	}

	_, err := suite.predictionService.Predict(context.Background(), req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PredictionServiceTestSuite) TestPredictRequiresParts() {
	_, err := suite.predictionService.Predict(context.Background(), &service.PredictRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PredictionServiceTestSuite) TestCatalog() {
	catalog := suite.predictionService.Catalog()

	assert.Len(suite.T(), catalog.Environments, 14)
	assert.Equal(suite.T(), "GB", catalog.Environments[0])
	assert.Equal(suite.T(), []string{"parts_count", "parts_stress"}, catalog.Methods)
	assert.Equal(suite.T(), 1e6, catalog.Multiplier)

	var meter *service.CategoryInfo
	for i := range catalog.Categories {
		if catalog.Categories[i].Category == "meter" {
			meter = &catalog.Categories[i]
		}
	}
	require.NotNil(suite.T(), meter)
	assert.Equal(suite.T(), []string{"elapsed_time", "panel"}, meter.Subcategories)
	assert.Equal(suite.T(), []string{"LOWER", "MIL-SPEC"}, meter.Qualities)
}

// TestPredictionServiceTestSuite runs the test suite
func TestPredictionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PredictionServiceTestSuite))
}
