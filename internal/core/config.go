package core

import (
	"os"
)

// Config holds the application configuration.
type Config struct {
	LogLevel         string // debug, info, warn, error
	OpenRouterAPIKey string // Required for LLM operations
	DefaultModel     string // Default LLM model to use
	DataDir          string // Directory for the classification history
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
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		DefaultModel:     getEnvOrDefault("DEFAULT_MODEL", "anthropic/claude-3.5-sonnet"),
		DataDir:          getEnvOrDefault("REQSTAGE_DIR", ".reqstage"),
	}

	// The API key is validated when LLM operations are attempted, not
	// here; history inspection works without one.
	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
