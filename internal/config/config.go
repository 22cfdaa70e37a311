package config

import (
	"os"
	"strconv"
)

// DefaultDBPath is used when no database path is configured.
const DefaultDBPath = "backend/data.db"

// Config holds application configuration loaded from environment and file.
// Priority: CLI argument → Env vars → config file → defaults
type Config struct {
	// DBPath is the request log database to analyse
	DBPath string

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is text or json
	LogFormat string

	Limits Limits
}

// Limits bounds the report listings. Zero means the built-in default.
type Limits struct {
	Recent       int
	Details      int
	FailureTypes int
	Preview      int
}

// Load reads configuration from the file at path (or the default location
// when path is empty) and environment variables. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	fileConfig, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return &Config{
		DBPath:    getEnvOrFile("LOGSCOPE_DB_PATH", fileConfig.DBPath, DefaultDBPath),
		LogLevel:  getEnvOrFile("LOGSCOPE_LOG_LEVEL", fileConfig.LogLevel, "warn"),
		LogFormat: getEnvOrFile("LOGSCOPE_LOG_FORMAT", fileConfig.LogFormat, "text"),
		Limits: Limits{
			Recent:       getEnvIntOrFile("LOGSCOPE_RECENT_LIMIT", fileConfig.Limits.Recent),
			Details:      getEnvIntOrFile("LOGSCOPE_DETAILS_LIMIT", fileConfig.Limits.Details),
			FailureTypes: getEnvIntOrFile("LOGSCOPE_FAILURE_TYPES_LIMIT", fileConfig.Limits.FailureTypes),
			Preview:      getEnvIntOrFile("LOGSCOPE_PREVIEW_LENGTH", fileConfig.Limits.Preview),
		},
	}, nil
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvIntOrFile returns a positive env int or the file value.
// Unparseable env values are ignored.
func getEnvIntOrFile(key string, fileValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fileValue
}
