package database

import (
	"fmt"
	"time"

	"rtk-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipMigrate leaves the schema untouched, for read-only tooling.
	SkipMigrate bool
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.LogLevel == 0 {
		out.LogLevel = logger.Error
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 20
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 10
	}
	if out.ConnMaxLifetime == 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime == 0 {
		out.ConnMaxIdleTime = 10 * time.Minute
	}
	return &out
}

// Models lists every persisted model, parents before children.
func Models() []interface{} {
	return []interface{}{
		&models.Revision{},
		&models.Hardware{},
		&models.GrowthTest{},
		&models.GrowthRecord{},
		&models.SurvivalDataset{},
		&models.SurvivalRecord{},
	}
}

// TableNames lists the tables of Models, children before parents.
func TableNames() []string {
	return []string{
		"survival_records",
		"survival_datasets",
		"growth_records",
		"growth_tests",
		"hardware",
		"revisions",
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = opts.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() backs the primary key defaults
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
