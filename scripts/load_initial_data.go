package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rtk-backend/internal/config"
	"rtk-backend/internal/database"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/repository"
	"rtk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Simple structures that mirror the API requests
type RevisionData struct {
	Name             string                `yaml:"name"`
	Title            string                `yaml:"title"`
	Description      string                `yaml:"description"`
	MissionTime      *float64              `yaml:"mission_time,omitempty"`
	Hardware         []HardwareData        `yaml:"hardware"`
	GrowthTests      []GrowthTestData      `yaml:"growth_tests"`
	SurvivalDatasets []SurvivalDatasetData `yaml:"survival_datasets"`
}

// HardwareData is one part or assembly. Parent names the reference
// designator of an assembly listed earlier in the same revision.
type HardwareData struct {
	RefDes              string             `yaml:"ref_des"`
	Parent              string             `yaml:"parent,omitempty"`
	Title               string             `yaml:"title,omitempty"`
	Category            string             `yaml:"category"`
	Subcategory         string             `yaml:"subcategory,omitempty"`
	Quantity            int                `yaml:"quantity,omitempty"`
	Environment         string             `yaml:"environment,omitempty"`
	Quality             string             `yaml:"quality,omitempty"`
	Method              string             `yaml:"method,omitempty"`
	HazardRateType      string             `yaml:"hazard_rate_type,omitempty"`
	SpecifiedHazardRate float64            `yaml:"specified_hazard_rate,omitempty"`
	SpecifiedMTBF       float64            `yaml:"specified_mtbf,omitempty"`
	AmbientTemp         *float64           `yaml:"ambient_temp,omitempty"`
	Attributes          map[string]float64 `yaml:"attributes,omitempty"`
	Options             map[string]string  `yaml:"options,omitempty"`
}

type GrowthTestData struct {
	Name        string    `yaml:"name"`
	Title       string    `yaml:"title"`
	TestType    string    `yaml:"test_type"`
	TestTime    float64   `yaml:"test_time,omitempty"`
	GoalMTBF    float64   `yaml:"goal_mtbf,omitempty"`
	InitialMTBF float64   `yaml:"initial_mtbf,omitempty"`
	InitialTime float64   `yaml:"initial_time,omitempty"`
	PlannedRate float64   `yaml:"planned_rate,omitempty"`
	Times       []float64 `yaml:"times,omitempty"`
}

type SurvivalDatasetData struct {
	Name         string               `yaml:"name"`
	Title        string               `yaml:"title"`
	Distribution string               `yaml:"distribution,omitempty"`
	Records      []SurvivalRecordData `yaml:"records"`
}

type SurvivalRecordData struct {
	Unit      string  `yaml:"unit,omitempty"`
	LeftTime  float64 `yaml:"left_time,omitempty"`
	RightTime float64 `yaml:"right_time"`
	Status    string  `yaml:"status,omitempty"`
	Quantity  int     `yaml:"quantity,omitempty"`
}

type seedFile struct {
	Revisions []RevisionData `yaml:"revisions"`
}

// seeder creates seed data through the services so it passes the same
// validation as API requests.
type seeder struct {
	revisions *service.RevisionService
	hardware  *service.HardwareService
	growth    *service.GrowthService
	survival  *service.SurvivalService
}

func main() {
	logger.Setup("info")
	log := logger.New()
	log.Info("Loading initial data from YAML files")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := loadDataFromYAMLFiles(newSeeder(db, cfg), "scripts/data"); err != nil {
		log.WithError(err).Fatal("Failed to load data from YAML files")
	}

	log.Info("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logger.New().WithError(err).WithField("attempt", attempt).Warn("Database not ready")
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func newSeeder(db *gorm.DB, cfg *config.Config) *seeder {
	v := validator.New()
	revisionRepo := repository.NewRevisionRepository(db)
	return &seeder{
		revisions: service.NewRevisionService(revisionRepo, v, cfg.DefaultMissionTime),
		hardware:  service.NewHardwareService(repository.NewHardwareRepository(db), revisionRepo, v, cfg.HRMultiplier),
		growth: service.NewGrowthService(repository.NewGrowthTestRepository(db), repository.NewGrowthRecordRepository(db),
			revisionRepo, v, cfg.DefaultConfidence),
		survival: service.NewSurvivalService(repository.NewSurvivalDatasetRepository(db), repository.NewSurvivalRecordRepository(db),
			revisionRepo, v, cfg.DefaultConfidence),
	}
}

func loadDataFromYAMLFiles(s *seeder, dataDir string) error {
	files, err := filepath.Glob(filepath.Join(dataDir, "*.yaml"))
	if err != nil {
		return err
	}

	created, skipped := 0, 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var seed seedFile
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, rev := range seed.Revisions {
			ok, err := s.createRevision(rev)
			if err != nil {
				return fmt.Errorf("failed to create revision %s: %w", rev.Name, err)
			}
			if ok {
				created++
			} else {
				skipped++
			}
		}
	}

	logger.New().WithFields(map[string]interface{}{
		"files":   len(files),
		"created": created,
		"skipped": skipped,
	}).Info("Revisions loaded")
	return nil
}

// createRevision returns false when a revision with the same name exists.
func (s *seeder) createRevision(data RevisionData) (bool, error) {
	rev, err := s.revisions.Create(&service.CreateRevisionRequest{
		Name:        data.Name,
		Title:       data.Title,
		Description: data.Description,
		MissionTime: data.MissionTime,
		CreatedBy:   "seed",
	})
	if apperrors.IsAlreadyExists(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ids := make(map[string]uuid.UUID)
	for _, hw := range data.Hardware {
		req := &service.CreateHardwareRequest{
			RefDes:              hw.RefDes,
			Title:               hw.Title,
			Category:            hw.Category,
			Subcategory:         hw.Subcategory,
			Quantity:            hw.Quantity,
			Environment:         hw.Environment,
			Quality:             hw.Quality,
			Method:              hw.Method,
			HazardRateType:      hw.HazardRateType,
			SpecifiedHazardRate: hw.SpecifiedHazardRate,
			SpecifiedMTBF:       hw.SpecifiedMTBF,
			AmbientTemp:         hw.AmbientTemp,
			Attributes:          hw.Attributes,
			Options:             hw.Options,
			CreatedBy:           "seed",
		}
		if hw.Parent != "" {
			parentID, ok := ids[hw.Parent]
			if !ok {
				return false, fmt.Errorf("hardware %s: parent %s must be listed before it", hw.RefDes, hw.Parent)
			}
			req.ParentID = &parentID
		}
		item, err := s.hardware.Create(rev.ID, req)
		if err != nil {
			return false, fmt.Errorf("hardware %s: %w", hw.RefDes, err)
		}
		ids[hw.RefDes] = item.ID
	}

	for _, gt := range data.GrowthTests {
		test, err := s.growth.Create(&service.CreateGrowthTestRequest{
			RevisionID:  rev.ID,
			Name:        gt.Name,
			Title:       gt.Title,
			TestType:    gt.TestType,
			TestTime:    gt.TestTime,
			GoalMTBF:    gt.GoalMTBF,
			InitialMTBF: gt.InitialMTBF,
			InitialTime: gt.InitialTime,
			PlannedRate: gt.PlannedRate,
			CreatedBy:   "seed",
		})
		if err != nil {
			return false, fmt.Errorf("growth test %s: %w", gt.Name, err)
		}
		if len(gt.Times) == 0 {
			continue
		}
		records := make([]service.GrowthRecordInput, len(gt.Times))
		for i, t := range gt.Times {
			records[i] = service.GrowthRecordInput{RightTime: t}
		}
		if _, err := s.growth.AddRecords(test.ID, &service.AddGrowthRecordsRequest{Records: records}); err != nil {
			return false, fmt.Errorf("growth test %s: %w", gt.Name, err)
		}
	}

	for _, ds := range data.SurvivalDatasets {
		dataset, err := s.survival.Create(&service.CreateDatasetRequest{
			RevisionID:   rev.ID,
			Name:         ds.Name,
			Title:        ds.Title,
			Distribution: ds.Distribution,
			CreatedBy:    "seed",
		})
		if err != nil {
			return false, fmt.Errorf("survival dataset %s: %w", ds.Name, err)
		}
		if len(ds.Records) == 0 {
			continue
		}
		records := make([]service.SurvivalRecordInput, len(ds.Records))
		for i, r := range ds.Records {
			records[i] = service.SurvivalRecordInput{
				Unit:      r.Unit,
				LeftTime:  r.LeftTime,
				RightTime: r.RightTime,
				Status:    r.Status,
				Quantity:  r.Quantity,
			}
		}
		if _, err := s.survival.AddRecords(dataset.ID, &service.AddSurvivalRecordsRequest{Records: records}); err != nil {
			return false, fmt.Errorf("survival dataset %s: %w", ds.Name, err)
		}
	}

	return true, nil
}
