package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// DatabasePath points at the packed item database blob (or the raw
	// .json export) loaded once at startup.
	DatabasePath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:  getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:  getEnv("SERVICE_NAME", DefaultServiceName),
		Version:      getEnv("VERSION", DefaultVersion),
		DatabasePath: getEnv("DATABASE_PATH", DefaultDatabasePath),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must point at the item database blob")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
