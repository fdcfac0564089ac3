//go:build integration
// +build integration

package repository

import (
	"testing"

	"rtk-backend/internal/database/models"
	"rtk-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SurvivalRepositoryTestSuite tests the survival data set and record repositories
type SurvivalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	datasetRepo   *SurvivalDatasetRepository
	recordRepo    *SurvivalRecordRepository
	factories     *testutils.FactorySet
	revision      *models.Revision
}

func (suite *SurvivalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.datasetRepo = NewSurvivalDatasetRepository(suite.baseTestSuite.DB)
	suite.recordRepo = NewSurvivalRecordRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SurvivalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SurvivalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.revision = suite.factories.Revision.Create()
	suite.Require().NoError(NewRevisionRepository(suite.baseTestSuite.DB).Create(suite.revision))
}

func (suite *SurvivalRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SurvivalRepositoryTestSuite) TestCreateUpdateGet() {
	dataset := suite.factories.SurvivalDataset.Create(suite.revision.ID)
	suite.NoError(suite.datasetRepo.Create(dataset))

	dataset.Failures = 3
	dataset.Suspensions = 2
	dataset.AIC = 41.2
	dataset.Parameters = []byte(`{"lambda":0.002}`)
	suite.NoError(suite.datasetRepo.Update(dataset))

	stored, err := suite.datasetRepo.GetByName(suite.revision.ID, dataset.Name)
	suite.NoError(err)
	suite.Equal(3, stored.Failures)
	suite.Equal(41.2, stored.AIC)
	suite.JSONEq(`{"lambda":0.002}`, string(stored.Parameters))

	list, total, err := suite.datasetRepo.GetByRevisionID(suite.revision.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(list, 1)
}

func (suite *SurvivalRepositoryTestSuite) TestRecordsOrderedByUnitAndTime() {
	dataset := suite.factories.SurvivalDataset.Create(suite.revision.ID)
	suite.NoError(suite.datasetRepo.Create(dataset))

	f := suite.factories.SurvivalDataset
	suite.NoError(suite.recordRepo.CreateBatch([]models.SurvivalRecord{
		f.Record(dataset.ID, "B", 50, "failure", 1),
		f.Record(dataset.ID, "A", 70, "failure", 1),
		f.Record(dataset.ID, "A", 20, "failure", 1),
		f.Record(dataset.ID, "A", 100, "right_censored", 1),
	}))

	records, err := suite.recordRepo.GetByDatasetID(dataset.ID)
	suite.NoError(err)
	suite.Len(records, 4)
	suite.Equal("A", records[0].Unit)
	suite.Equal(20.0, records[0].RightTime)
	suite.Equal("right_censored", records[2].Status)
	suite.Equal("B", records[3].Unit)

	suite.NoError(suite.recordRepo.DeleteByDatasetID(dataset.ID))
	records, err = suite.recordRepo.GetByDatasetID(dataset.ID)
	suite.NoError(err)
	suite.Empty(records)
}

func TestSurvivalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SurvivalRepositoryTestSuite))
}
