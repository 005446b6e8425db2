package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DatabaseDriver string
	DatabaseDSN    string
	LogDir         string
	RateLimit      int
	RequestTimeout time.Duration
}

// Load reads an optional .env file and falls back to defaults for anything
// unset. The default DSN is a SQLite file next to the binary.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:       GetEnvAsString("HTTP_PORT", "8080"),
		DatabaseDriver: GetEnvAsString("DB_DRIVER", "sqlite"),
		DatabaseDSN:    GetEnvAsString("DB_DSN", "project.db"),
		LogDir:         GetEnvAsString("LOG_DIR", "logs"),
		RateLimit:      GetEnvAsInt("RATE_LIMIT", 20),
		RequestTimeout: GetEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
