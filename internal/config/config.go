package config

import (
	"fmt"

	apperrors "rtk-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`

	// Analysis defaults
	DefaultConfidence  float64 `mapstructure:"DEFAULT_CONFIDENCE"`
	DefaultMissionTime float64 `mapstructure:"DEFAULT_MISSION_TIME"`
	HRMultiplier       float64 `mapstructure:"HR_MULTIPLIER"`

	// Directory workbook exports are written to
	ExportDir string `mapstructure:"EXPORT_DIR"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.config/RTK")
	viper.AddConfigPath("/etc/RTK")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "rtk")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("AUTH_ENABLED", false)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("DEFAULT_CONFIDENCE", 0.90)
	viper.SetDefault("DEFAULT_MISSION_TIME", 100.0)
	viper.SetDefault("HR_MULTIPLIER", 1000000.0)
	viper.SetDefault("EXPORT_DIR", "./exports")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return apperrors.ErrDefaultJWTSecret
		}
	}

	if config.DatabaseName == "" {
		return apperrors.ErrDatabaseNameEmpty
	}

	if config.DefaultConfidence <= 0 || config.DefaultConfidence >= 1 {
		return apperrors.NewConfigurationError("DEFAULT_CONFIDENCE must be between 0 and 1")
	}

	if config.HRMultiplier <= 0 {
		return apperrors.NewConfigurationError("HR_MULTIPLIER must be greater than zero")
	}

	if config.DefaultMissionTime < 0 {
		return apperrors.NewConfigurationError("DEFAULT_MISSION_TIME must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
