package config

import (
	"os"
	"strconv"

	"fprsim/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Simulation SimulationConfig
	Export     ExportConfig
}

// DatabaseConfig holds result persistence settings. Persistence is optional;
// an empty URL disables it.
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port string
}

// SimulationConfig holds simulation defaults
type SimulationConfig struct {
	DefaultAlpha  float64
	DefaultTrials int
	Workers       int
}

// ExportConfig holds workbook export settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Simulation: SimulationConfig{
			DefaultAlpha:  getEnvFloat("SIM_DEFAULT_ALPHA", 0.05),
			DefaultTrials: getEnvInt("SIM_DEFAULT_TRIALS", 1000),
			Workers:       getEnvInt("SIM_WORKERS", 0),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "."),
		},
	}
	config.Database.Enabled = config.Database.URL != ""

	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return config, nil
}

func (c *Config) validate() error {
	if !(c.Simulation.DefaultAlpha > 0 && c.Simulation.DefaultAlpha < 1) {
		return errors.New("CONFIG_INVALID", "SIM_DEFAULT_ALPHA must be in (0,1)")
	}
	if c.Simulation.DefaultTrials < 1 {
		return errors.New("CONFIG_INVALID", "SIM_DEFAULT_TRIALS must be >= 1")
	}
	if c.Simulation.Workers < 0 {
		return errors.New("CONFIG_INVALID", "SIM_WORKERS must be >= 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
