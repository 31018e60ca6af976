package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for a txengine run
type Config struct {
	LogLevel             string
	ReportFormat         string
	MetricsFile          string // Empty disables the metrics textfile
	StrictTransactionIDs bool
}

// Load loads configuration from environment variables with default values
func Load() (*Config, error) {
	strict, err := strconv.ParseBool(getEnv("STRICT_TX_IDS", "false"))
	if err != nil {
		return nil, fmt.Errorf("STRICT_TX_IDS must be a boolean: %w", err)
	}

	format := getEnv("REPORT_FORMAT", "csv")
	if format != "csv" && format != "table" {
		return nil, fmt.Errorf("REPORT_FORMAT must be csv or table, got %q", format)
	}

	return &Config{
		LogLevel:             getEnv("LOG_LEVEL", "warn"),
		ReportFormat:         format,
		MetricsFile:          os.Getenv("METRICS_FILE"),
		StrictTransactionIDs: strict,
	}, nil
}

// getEnv retrieves an environment variable or returns a default value if not set
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
