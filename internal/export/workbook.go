// Package export writes a revision and its analyses into a standalone
// SQLite workbook that can be opened without the server.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rtk-backend/internal/database/models"

	_ "modernc.org/sqlite" // database/sql driver "sqlite"
)

// Workbook is everything written for one revision.
type Workbook struct {
	Revision         models.Revision
	Hardware         []models.Hardware
	GrowthTests      []models.GrowthTest
	GrowthRecords    []models.GrowthRecord
	SurvivalDatasets []models.SurvivalDataset
	SurvivalRecords  []models.SurvivalRecord
}

const schema = `
CREATE TABLE revision (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	title TEXT,
	description TEXT,
	mission_time REAL,
	hazard_rate_active REAL,
	hazard_rate_dormant REAL,
	hazard_rate_logistics REAL,
	mtbf REAL,
	reliability REAL,
	part_count INTEGER,
	exported_at TEXT NOT NULL
);
CREATE TABLE hardware (
	id TEXT PRIMARY KEY,
	parent_id TEXT,
	ref_des TEXT NOT NULL,
	name TEXT,
	category TEXT NOT NULL,
	subcategory TEXT,
	quantity INTEGER,
	environment TEXT,
	quality TEXT,
	method TEXT,
	hazard_rate_type TEXT,
	ambient_temp REAL,
	attributes TEXT,
	options TEXT,
	hazard_rate_active REAL,
	hazard_rate_dormant REAL,
	hazard_rate_logistics REAL,
	mtbf REAL,
	reliability REAL,
	percent_of_parent REAL,
	model TEXT,
	factors TEXT,
	stress TEXT,
	overstressed INTEGER,
	reason TEXT
);
CREATE INDEX idx_hardware_parent ON hardware(parent_id);
CREATE TABLE growth_tests (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	test_type TEXT,
	test_time REAL,
	confidence REAL,
	goal_mtbf REAL,
	beta REAL,
	beta_lower REAL,
	beta_upper REAL,
	lambda REAL,
	growth_rate REAL,
	cumulative_mtbf REAL,
	instantaneous_mtbf REAL,
	instantaneous_mtbf_lower REAL,
	instantaneous_mtbf_upper REAL,
	results TEXT
);
CREATE TABLE growth_records (
	id TEXT PRIMARY KEY,
	growth_test_id TEXT NOT NULL REFERENCES growth_tests(id),
	left_time REAL,
	right_time REAL,
	failures INTEGER
);
CREATE TABLE survival_datasets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	distribution TEXT,
	confidence REAL,
	failures INTEGER,
	suspensions INTEGER,
	parameters TEXT,
	lower_bounds TEXT,
	upper_bounds TEXT,
	log_likelihood REAL,
	aic REAL,
	bic REAL
);
CREATE TABLE survival_records (
	id TEXT PRIMARY KEY,
	dataset_id TEXT NOT NULL REFERENCES survival_datasets(id),
	unit TEXT,
	left_time REAL,
	right_time REAL,
	status TEXT,
	quantity INTEGER
);
`

// Write replaces the workbook at path. The workbook is built next to path
// and renamed over it only once committed, so a failed export leaves the
// previous workbook in place.
func Write(ctx context.Context, path string, wb *Workbook) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp := path + ".tmp"
	removeTemp := func() {
		_ = os.Remove(tmp)
		_ = os.Remove(tmp + "-journal")
	}
	removeTemp()

	if err := build(ctx, tmp, wb); err != nil {
		removeTemp()
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		removeTemp()
		return fmt.Errorf("failed to replace workbook: %w", err)
	}
	return nil
}

// build writes a complete workbook at path and closes it.
func build(ctx context.Context, path string, wb *Workbook) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create workbook schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin workbook transaction: %w", err)
	}
	if err := writeAll(ctx, tx, wb); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit workbook: %w", err)
	}
	return nil
}

func writeAll(ctx context.Context, tx *sql.Tx, wb *Workbook) error {
	r := wb.Revision
	_, err := tx.ExecContext(ctx, `INSERT INTO revision VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Name, r.Title, r.Description, r.MissionTime,
		r.HazardRateActive, r.HazardRateDormant, r.HazardRateLogistics, r.MTBF, r.Reliability, r.PartCount,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write revision: %w", err)
	}

	for _, h := range wb.Hardware {
		var parent interface{}
		if h.ParentID != nil {
			parent = h.ParentID.String()
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO hardware VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID.String(), parent, h.RefDes, h.Name, h.Category, h.Subcategory, h.Quantity,
			h.Environment, h.Quality, h.Method, h.HazardRateType, h.AmbientTemp,
			text(h.Attributes), text(h.Options),
			h.HazardRateActive, h.HazardRateDormant, h.HazardRateLogistics, h.MTBF, h.Reliability, h.PercentOfParent,
			h.Model, text(h.Factors), text(h.Stress), h.Overstressed, h.Reason)
		if err != nil {
			return fmt.Errorf("failed to write hardware %s: %w", h.RefDes, err)
		}
	}

	for _, g := range wb.GrowthTests {
		_, err := tx.ExecContext(ctx, `INSERT INTO growth_tests VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID.String(), g.Name, string(g.TestType), g.TestTime, g.Confidence, g.GoalMTBF,
			g.Beta, g.BetaLower, g.BetaUpper, g.Lambda, g.GrowthRate, g.CumulativeMTBF,
			g.InstantaneousMTBF, g.InstantaneousMTBFLower, g.InstantaneousMTBFUpper, text(g.Results))
		if err != nil {
			return fmt.Errorf("failed to write growth test %s: %w", g.Name, err)
		}
	}
	for _, rec := range wb.GrowthRecords {
		_, err := tx.ExecContext(ctx, `INSERT INTO growth_records VALUES (?, ?, ?, ?, ?)`,
			rec.ID.String(), rec.GrowthTestID.String(), rec.LeftTime, rec.RightTime, rec.Failures)
		if err != nil {
			return fmt.Errorf("failed to write growth record: %w", err)
		}
	}

	for _, d := range wb.SurvivalDatasets {
		_, err := tx.ExecContext(ctx, `INSERT INTO survival_datasets VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID.String(), d.Name, d.Distribution, d.Confidence, d.Failures, d.Suspensions,
			text(d.Parameters), text(d.Lower), text(d.Upper), d.LogLikelihood, d.AIC, d.BIC)
		if err != nil {
			return fmt.Errorf("failed to write survival dataset %s: %w", d.Name, err)
		}
	}
	for _, rec := range wb.SurvivalRecords {
		_, err := tx.ExecContext(ctx, `INSERT INTO survival_records VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.ID.String(), rec.DatasetID.String(), rec.Unit, rec.LeftTime, rec.RightTime, rec.Status, rec.Quantity)
		if err != nil {
			return fmt.Errorf("failed to write survival record: %w", err)
		}
	}
	return nil
}

// text stores JSON columns as SQLite TEXT, NULL when empty.
func text(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
