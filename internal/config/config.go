package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Kumungchi/vyzkumdata/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Server ServerConfig
}

// DataConfig holds the input file locations and ingestion settings
type DataConfig struct {
	Dir                 string
	PlacementsFile      string
	BaselineFile        string
	CodebookFile        string
	PlacementsSeparator string // "" means sniff; survey exports use ";"
	BaselineWordColumn  string // explicit join column; "" enables the detection heuristic
	CacheTTL            time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			Dir:                 getEnvOrDefault("DATA_DIR", "data"),
			PlacementsFile:      getEnvOrDefault("PLACEMENTS_FILE", "hand_dataset.csv"),
			BaselineFile:        getEnvOrDefault("BASELINE_FILE", "vybrana_slova_30.csv"),
			CodebookFile:        getEnvOrDefault("CODEBOOK_FILE", "Detailed_Thematic_Codebook.csv"),
			PlacementsSeparator: getEnvOrDefault("PLACEMENTS_SEPARATOR", ";"),
			BaselineWordColumn:  getEnvOrDefault("BASELINE_WORD_COLUMN", ""),
			CacheTTL:            getEnvDurationOrDefault("CACHE_TTL", time.Hour),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// PlacementsPath returns the full path to the placements file.
func (d DataConfig) PlacementsPath() string {
	return filepath.Join(d.Dir, d.PlacementsFile)
}

// BaselinePath returns the full path to the baseline labels file.
func (d DataConfig) BaselinePath() string {
	return filepath.Join(d.Dir, d.BaselineFile)
}

// CodebookPath returns the full path to the thematic codebook file.
func (d DataConfig) CodebookPath() string {
	return filepath.Join(d.Dir, d.CodebookFile)
}

func validateConfig(config *Config) error {
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("DATA_DIR must not be empty")
	}
	if config.Data.PlacementsFile == "" {
		return errors.ConfigInvalid("PLACEMENTS_FILE must not be empty")
	}
	if config.Data.BaselineFile == "" {
		return errors.ConfigInvalid("BASELINE_FILE must not be empty")
	}
	if len(config.Data.PlacementsSeparator) > 1 {
		return errors.ConfigInvalid("PLACEMENTS_SEPARATOR must be a single character")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
