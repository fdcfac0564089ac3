package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a bare gin router in handler tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body encoded as JSON; a nil body sends none.
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	return suite.serve(method, url, reader, body != nil, nil)
}

// MakeRawRequest sends body verbatim as application/json, for malformed
// documents.
func (suite *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return suite.serve(method, url, strings.NewReader(body), true, nil)
}

// MakeAuthorizedRequest is MakeRequest with a bearer token.
func (suite *HTTPTestSuite) MakeAuthorizedRequest(method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	return suite.serve(method, url, reader, body != nil, map[string]string{"Authorization": "Bearer " + token})
}

func (suite *HTTPTestSuite) serve(method, url string, body io.Reader, isJSON bool, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertErrorResponse asserts the status and that the "error" field contains
// expectedMessage. An empty message only checks the body is a JSON object.
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse), recorder.Body.String())

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target), recorder.Body.String())
}

// AssertStatus fails with the response body when the status differs, which
// makes failed handler tests show the server's error.
func AssertStatus(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) bool {
	t.Helper()
	return assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
}
