package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rtk-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorkbook() *Workbook {
	revID := uuid.New()
	asmID := uuid.New()
	testID := uuid.New()
	dsID := uuid.New()

	rev := models.Revision{MissionTime: 100, HazardRateActive: 0.6, PartCount: 2}
	rev.ID = revID
	rev.Name = "rev-a"

	asm := models.Hardware{RevisionID: revID, RefDes: "A1", Category: models.CategoryAssembly, Quantity: 1, HazardRateActive: 0.6}
	asm.ID = asmID
	part := models.Hardware{
		RevisionID:       revID,
		ParentID:         &asmID,
		RefDes:           "R1",
		Category:         "resistor",
		Subcategory:      "film",
		Quantity:         2,
		HazardRateActive: 0.3,
		Factors:          json.RawMessage(`{"pi_E":1}`),
		Overstressed:     true,
		Reason:           "resistor.power ratio 0.90 exceeds 0.80",
	}
	part.ID = uuid.New()

	test := models.GrowthTest{RevisionID: revID, TestType: models.GrowthTestTypeTimeTerminated, Beta: 0.53}
	test.ID = testID
	test.Name = "tt-1"
	rec := models.GrowthRecord{GrowthTestID: testID, RightTime: 2.6, Failures: 1}
	rec.ID = uuid.New()

	ds := models.SurvivalDataset{RevisionID: revID, Distribution: "weibull", Parameters: json.RawMessage(`{"shape":1.6}`)}
	ds.ID = dsID
	ds.Name = "field"
	srec := models.SurvivalRecord{DatasetID: dsID, Unit: "u1", RightTime: 50, Status: "failure", Quantity: 1}
	srec.ID = uuid.New()

	return &Workbook{
		Revision:         rev,
		Hardware:         []models.Hardware{asm, part},
		GrowthTests:      []models.GrowthTest{test},
		GrowthRecords:    []models.GrowthRecord{rec},
		SurvivalDatasets: []models.SurvivalDataset{ds},
		SurvivalRecords:  []models.SurvivalRecord{srec},
	}
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rev-a.db")
	wb := sampleWorkbook()

	require.NoError(t, Write(context.Background(), path, wb))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, count(t, db, "revision"))
	assert.Equal(t, 2, count(t, db, "hardware"))
	assert.Equal(t, 1, count(t, db, "growth_tests"))
	assert.Equal(t, 1, count(t, db, "growth_records"))
	assert.Equal(t, 1, count(t, db, "survival_datasets"))
	assert.Equal(t, 1, count(t, db, "survival_records"))

	var parent sql.NullString
	var factors string
	var overstressed bool
	require.NoError(t, db.QueryRow(`SELECT parent_id, factors, overstressed FROM hardware WHERE ref_des = 'R1'`).
		Scan(&parent, &factors, &overstressed))
	assert.Equal(t, wb.Hardware[0].ID.String(), parent.String)
	assert.JSONEq(t, `{"pi_E":1}`, factors)
	assert.True(t, overstressed)

	require.NoError(t, db.QueryRow(`SELECT parent_id FROM hardware WHERE ref_des = 'A1'`).Scan(&parent))
	assert.False(t, parent.Valid)
}

func TestWriteReplacesExistingWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rev-a.db")
	wb := sampleWorkbook()
	require.NoError(t, Write(context.Background(), path, wb))

	wb.Hardware = wb.Hardware[:1]
	require.NoError(t, Write(context.Background(), path, wb))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, 1, count(t, db, "hardware"))
}

func TestWriteFailureKeepsPreviousWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rev-a.db")
	wb := sampleWorkbook()
	require.NoError(t, Write(context.Background(), path, wb))

	broken := sampleWorkbook()
	broken.Hardware[1].ID = broken.Hardware[0].ID
	err := Write(context.Background(), path, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")

	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, 1, count(t, db, "revision"))
	assert.Equal(t, 2, count(t, db, "hardware"))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM revision`).Scan(&name))
	assert.Equal(t, wb.Revision.Name, name)
}
