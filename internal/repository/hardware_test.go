//go:build integration
// +build integration

package repository

import (
	"encoding/json"
	"testing"
	"time"

	"rtk-backend/internal/database/models"
	"rtk-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// HardwareRepositoryTestSuite tests the HardwareRepository
type HardwareRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *HardwareRepository
	factories     *testutils.FactorySet
	revision      *models.Revision
}

func (suite *HardwareRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewHardwareRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *HardwareRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest cleans the database and creates a fresh revision
func (suite *HardwareRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.revision = suite.factories.Revision.Create()
	suite.Require().NoError(NewRevisionRepository(suite.baseTestSuite.DB).Create(suite.revision))
}

func (suite *HardwareRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *HardwareRepositoryTestSuite) TestTree() {
	sys := suite.factories.Hardware.Assembly(suite.revision.ID, "SYS")
	suite.NoError(suite.repo.Create(sys))
	r2 := suite.factories.Hardware.Part(suite.revision.ID, &sys.ID, "R2")
	r1 := suite.factories.Hardware.Part(suite.revision.ID, &sys.ID, "R1")
	suite.NoError(suite.repo.Create(r2))
	suite.NoError(suite.repo.Create(r1))

	all, err := suite.repo.GetByRevisionID(suite.revision.ID)
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("R1", all[0].RefDes)

	children, err := suite.repo.GetChildren(sys.ID)
	suite.NoError(err)
	suite.Len(children, 2)
	suite.Equal("R1", children[0].RefDes)
	suite.Equal("R2", children[1].RefDes)

	byRef, err := suite.repo.GetByRefDes(suite.revision.ID, "R2")
	suite.NoError(err)
	suite.Equal(r2.ID, byRef.ID)
}

func (suite *HardwareRepositoryTestSuite) TestDuplicateRefDes() {
	suite.NoError(suite.repo.Create(suite.factories.Hardware.Part(suite.revision.ID, nil, "U1")))

	err := suite.repo.Create(suite.factories.Hardware.Part(suite.revision.ID, nil, "U1"))
	suite.Error(err)
}

func (suite *HardwareRepositoryTestSuite) TestSaveResults() {
	part := suite.factories.Hardware.Part(suite.revision.ID, nil, "R1")
	suite.NoError(suite.repo.Create(part))

	now := time.Now()
	part.HazardRateActive = 0.0032
	part.Overstressed = true
	part.Reason = "power ratio above harsh limit"
	part.Stress, _ = json.Marshal(map[string]float64{"power_ratio": 0.9})
	part.CalculatedAt = &now
	part.Quantity = 99 // not a result column

	suite.NoError(suite.repo.SaveResults([]models.Hardware{*part}))

	stored, err := suite.repo.GetByID(part.ID)
	suite.NoError(err)
	suite.InDelta(0.0032, stored.HazardRateActive, 1e-12)
	suite.True(stored.Overstressed)
	suite.Equal("power ratio above harsh limit", stored.Reason)
	suite.NotNil(stored.CalculatedAt)
	suite.Equal(1, stored.Quantity)
}

func (suite *HardwareRepositoryTestSuite) TestDeleteDetachesChildren() {
	sys := suite.factories.Hardware.Assembly(suite.revision.ID, "SYS")
	suite.NoError(suite.repo.Create(sys))
	child := suite.factories.Hardware.Part(suite.revision.ID, &sys.ID, "C1")
	suite.NoError(suite.repo.Create(child))

	suite.NoError(suite.repo.Delete(sys.ID))

	_, err := suite.repo.GetByID(sys.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	orphan, err := suite.repo.GetByID(child.ID)
	suite.NoError(err)
	suite.Nil(orphan.ParentID)
}

func TestHardwareRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(HardwareRepositoryTestSuite))
}
