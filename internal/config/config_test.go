package config

import (
	"testing"

	apperrors "rtk-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:        "development",
		DatabaseName:       "rtk",
		JWTSecret:          defaultJWTSecret,
		DefaultConfidence:  0.9,
		DefaultMissionTime: 100,
		HRMultiplier:       1e6,
	}
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid in development", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		err := validate(cfg)
		assert.ErrorIs(t, err, apperrors.ErrDefaultJWTSecret)

		cfg.JWTSecret = "a-real-secret"
		assert.NoError(t, validate(cfg))
	})

	t.Run("database name required", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseName = ""
		assert.ErrorIs(t, validate(cfg), apperrors.ErrDatabaseNameEmpty)
	})

	t.Run("confidence bounds", func(t *testing.T) {
		for _, c := range []float64{0, 1, -0.5, 1.5} {
			cfg := validConfig()
			cfg.DefaultConfidence = c
			err := validate(cfg)
			require.Error(t, err)
			assert.True(t, apperrors.IsConfiguration(err))
		}
	})

	t.Run("hazard rate multiplier must be positive", func(t *testing.T) {
		cfg := validConfig()
		cfg.HRMultiplier = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("negative mission time", func(t *testing.T) {
		cfg := validConfig()
		cfg.DefaultMissionTime = -1
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "rtk",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5433/rtk?sslmode=disable", buildDatabaseURL(cfg))
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "rtk_test")
	t.Setenv("HR_MULTIPLIER", "1000")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rtk_test", cfg.DatabaseName)
	assert.Equal(t, 1000.0, cfg.HRMultiplier)
	assert.Equal(t, 0.9, cfg.DefaultConfidence)
	assert.Contains(t, cfg.DatabaseURL, "/rtk_test?")
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
