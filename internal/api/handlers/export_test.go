package handlers_test

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"rtk-backend/internal/api/handlers"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/mocks"
	"rtk-backend/internal/service"
	"rtk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockExportServiceInterface
	handler     *handlers.ExportHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ExportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewExportHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.POST("/api/v1/revisions/:id/export", suite.handler.ExportRevision)
}

func (suite *ExportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExportHandlerTestSuite) TestExportRevision() {
	suite.T().Run("Summary", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().Export(gomock.Any(), revisionID).Return(&service.ExportResponse{
			RevisionID: revisionID,
			Path:       "/var/lib/rtk/exports/" + revisionID.String() + ".db",
			FileName:   revisionID.String() + ".db",
			Hardware:   12,
		}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/export", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.ExportResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 12, response.Hardware)
	})

	suite.T().Run("Download", func(t *testing.T) {
		revisionID := uuid.New()
		path := filepath.Join(t.TempDir(), revisionID.String()+".db")
		require.NoError(t, os.WriteFile(path, []byte("SQLite format 3\x00"), 0o644))

		suite.mockService.EXPECT().Export(gomock.Any(), revisionID).Return(&service.ExportResponse{
			RevisionID: revisionID,
			Path:       path,
			FileName:   revisionID.String() + ".db",
		}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/export?download=true", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), revisionID.String()+".db")
		assert.Equal(t, "SQLite format 3\x00", recorder.Body.String())
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().Export(gomock.Any(), revisionID).Return(nil, apperrors.ErrRevisionNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/export", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "revision not found")
	})

	suite.T().Run("WriteFailure", func(t *testing.T) {
		revisionID := uuid.New()
		suite.mockService.EXPECT().Export(gomock.Any(), revisionID).Return(nil, errors.New("disk full"))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/revisions/"+revisionID.String()+"/export", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to export revision")
	})
}

func TestExportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}
