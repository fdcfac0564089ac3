package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rtk-backend/internal/auth"
	"rtk-backend/internal/config"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/service"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partsYAML = `mission_time: 100
parts:
  - id: board
    category: assembly
  - id: F1
    parent_id: board
    category: miscellaneous
    subcategory: fuse
    quality: MIL-SPEC
  - id: R1
    parent_id: board
    category: resistor
    subcategory: film
    quality: M
    quantity: 5
`

const growthYAML = `test_type: time_terminated
test_time: 600
times: [10, 40, 90, 160, 300, 500]
`

const lifeYAML = `records:
  - {right_time: 120, status: failure}
  - {right_time: 340, status: failure}
  - {right_time: 410, status: right_censored}
  - {right_time: 560, status: failure}
  - {right_time: 800, status: failure}
  - {right_time: 900, status: right_censored}
`

// useTestConfig resets the command flags and installs a config that does not
// depend on the environment of the machine running the tests.
func useTestConfig(t *testing.T) {
	t.Helper()
	cfg = &config.Config{
		LogLevel:           "error",
		JWTSecret:          "cli-test-secret",
		DefaultConfidence:  0.9,
		DefaultMissionTime: 100,
		HRMultiplier:       1e6,
	}
	inputFile, outputFormat, distribution = "", "table", ""
	confidence, missionTime = 0, 0
	tokenUser, tokenEmail, tokenTTL = "", "", time.Hour

	t.Cleanup(func() { cfg = nil })
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCommand(run func(*cobra.Command, []string) error, stdin string) (string, error) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := run(cmd, nil)
	return out.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	for _, name := range []string{"predict", "catalog", "growth", "fit", "token"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, fitCmd.Flags().Lookup("distribution"))
	assert.NotNil(t, predictCmd.Flags().Lookup("file"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("output"))
}

func TestPredictTable(t *testing.T) {
	useTestConfig(t)
	inputFile = writeInput(t, "parts.yaml", partsYAML)

	output, err := runCommand(runPredict, "")

	require.NoError(t, err)
	assert.Contains(t, output, "Hazard rates in failures per 1e+06 hours")
	assert.Contains(t, output, "board")
	assert.Contains(t, output, "R1")
	assert.Contains(t, output, "Total hazard rate")
	assert.Contains(t, output, "Reliability at 100 h")
}

func TestPredictJSONFromStdin(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"
	outputFormat = "json"
	missionTime = 250

	output, err := runCommand(runPredict, partsYAML)

	require.NoError(t, err)
	var response service.PredictResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	assert.Equal(t, 250.0, response.MissionTime)
	require.Len(t, response.Parts, 3)
	assert.Greater(t, response.HazardRateActive, 0.0)
	assert.InDelta(t, math.Exp(-response.HazardRateActive*250/1e6), response.Reliability, 1e-9)
}

func TestPredictRejectsUnknownField(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"

	_, err := runCommand(runPredict, "parts:\n  - id: F1\n    categry: fuse\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse stdin")
}

func TestPredictEmptyInput(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"

	_, err := runCommand(runPredict, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin is empty")
}

func TestPredictMissingFile(t *testing.T) {
	useTestConfig(t)
	inputFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := runCommand(runPredict, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}

func TestPredictValidationError(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"

	_, err := runCommand(runPredict, "mission_time: 10\nparts: []\n")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCatalog(t *testing.T) {
	useTestConfig(t)

	output, err := runCommand(runCatalog, "")

	require.NoError(t, err)
	assert.Contains(t, output, "resistor")
	assert.Contains(t, output, "Environments")
}

func TestGrowthTable(t *testing.T) {
	useTestConfig(t)
	inputFile = writeInput(t, "growth.yaml", growthYAML)

	output, err := runCommand(runGrowth, "")

	require.NoError(t, err)
	assert.Contains(t, output, "Crow-AMSAA (time_terminated, 6 failures")
	assert.Contains(t, output, "Duane")
	assert.Contains(t, output, "mil_hdbk_189 trend test")
	assert.Contains(t, output, "laplace trend test")
}

func TestGrowthJSON(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"
	outputFormat = "json"
	confidence = 0.95

	output, err := runCommand(runGrowth, growthYAML)

	require.NoError(t, err)
	var response service.GrowthFitResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	require.NotNil(t, response.CrowAMSAA)
	sum := 0.0
	for _, ti := range []float64{10, 40, 90, 160, 300, 500} {
		sum += math.Log(600 / ti)
	}
	assert.InDelta(t, 6/sum, response.CrowAMSAA.Beta, 1e-12)
	assert.Equal(t, 0.95, response.CrowAMSAA.Confidence)
	assert.NotNil(t, response.Duane)
}

func TestGrowthYAML(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"
	outputFormat = "yaml"

	output, err := runCommand(runGrowth, growthYAML)

	require.NoError(t, err)
	assert.Contains(t, output, "crow_amsaa:")
	assert.Contains(t, output, "test_type: time_terminated")
}

func TestGrowthGroupedTable(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"

	input := `test_type: grouped
intervals:
  - {end: 100, failures: 8}
  - {end: 200, failures: 5}
  - {end: 300, failures: 4}
  - {end: 400, failures: 3}
`
	output, err := runCommand(runGrowth, input)

	require.NoError(t, err)
	assert.Contains(t, output, "Crow-AMSAA grouped (4 intervals, 20 failures")
	assert.Contains(t, output, "chi-square")
}

func TestFitExponential(t *testing.T) {
	useTestConfig(t)
	inputFile = writeInput(t, "life.yaml", lifeYAML)

	output, err := runCommand(runFit, "")

	require.NoError(t, err)
	assert.Contains(t, output, "exponential fit (4 failures, 2 suspensions")
	assert.Contains(t, output, "lambda")
	assert.Contains(t, output, "AIC")
	assert.Contains(t, output, "SURVIVAL")
}

func TestFitAllRanksDistributions(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"
	outputFormat = "json"
	distribution = "all"

	output, err := runCommand(runFit, lifeYAML)

	require.NoError(t, err)
	var response service.SurvivalFitResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	assert.Equal(t, "all", response.Distribution)
	require.NotEmpty(t, response.Rankings)
	assert.Equal(t, 1, response.Rankings[0].Rank)
	require.NotNil(t, response.Fit)
	// exponential MLE: failures over total time on test
	if response.Fit.Distribution == "exponential" {
		assert.InDelta(t, 4.0/3130.0, response.Fit.Parameters["lambda"], 1e-12)
	}
}

func TestFitInvalidDistribution(t *testing.T) {
	useTestConfig(t)
	inputFile = "-"
	distribution = "lognormal"

	_, err := runCommand(runFit, lifeYAML)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUnknownOutputFormat(t *testing.T) {
	useTestConfig(t)
	outputFormat = "xml"

	_, err := runCommand(runCatalog, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestTokenIsAcceptedByAuthService(t *testing.T) {
	useTestConfig(t)
	tokenUser = "jdoe"
	tokenEmail = "jdoe@example.com"

	output, err := runCommand(runToken, "")

	require.NoError(t, err)
	authService, err := auth.NewAuthService("cli-test-secret", 0)
	require.NoError(t, err)
	claims, err := authService.ValidateJWT(strings.TrimSpace(output))
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "jdoe@example.com", claims.Email)
}

func TestTokenRequiresSecret(t *testing.T) {
	useTestConfig(t)
	cfg.JWTSecret = ""
	tokenUser = "jdoe"

	_, err := runCommand(runToken, "")

	assert.Error(t, err)
}
