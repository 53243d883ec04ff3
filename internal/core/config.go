// Package core wires the screening pipeline together: configuration,
// logging, and the orchestrator that runs one scenario end to end.
package core

import (
	"os"
	"path/filepath"
)

// Config holds the application configuration.
type Config struct {
	LogLevel         string // debug, info, warn, error
	DataDir          string // Root of regulations/ and output/
	OpenRouterAPIKey string // Required for extraction operations
	DefaultModel     string // Default extraction model
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	cfg := &Config{
		LogLevel:         logLevel,
		DataDir:          getEnvOrDefault("CSCREEN_DATA_DIR", "data"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		DefaultModel:     getEnvOrDefault("DEFAULT_MODEL", "openai/gpt-4.1"),
	}

	// The API key is validated when an extraction is attempted; listing
	// regulations and combining requirements work without it.
	return cfg, nil
}

// RegulationsDir is where jurisdiction clause tables live.
func (c *Config) RegulationsDir() string {
	return filepath.Join(c.DataDir, "regulations")
}

// OutputDir is where run archives are written.
func (c *Config) OutputDir() string {
	return filepath.Join(c.DataDir, "output")
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
