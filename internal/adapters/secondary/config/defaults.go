package config

import (
	"os"
	"strconv"

	"github.com/deckgen/deckgen/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment
// overrides applied.
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("DECKGEN_HOST", "localhost"),
			Port:            getEnvIntOrDefault("DECKGEN_PORT", 4100),
			ShutdownTimeout: 5,
		},
		Output: entities.OutputConfig{
			Dir:     getEnvOrDefault("DECKGEN_OUTPUT_DIR", entities.DefaultOutputDir),
			Formats: []string{"pptx", "html"},
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("DECKGEN_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("DECKGEN_LOG_VERBOSE", false),
		},
	}
}

// Merge overlays non-zero fields of the local config over the global one.
func Merge(global, local *entities.Config) *entities.Config {
	if global == nil {
		global = GetDefaultConfig()
	}
	if local == nil {
		return global
	}

	merged := *global

	if local.Server.Host != "" {
		merged.Server.Host = local.Server.Host
	}
	if local.Server.Port != 0 {
		merged.Server.Port = local.Server.Port
	}
	if local.Server.ShutdownTimeout != 0 {
		merged.Server.ShutdownTimeout = local.Server.ShutdownTimeout
	}
	if len(local.Server.CORSOrigins) > 0 {
		merged.Server.CORSOrigins = local.Server.CORSOrigins
	}
	if local.Output.Dir != "" {
		merged.Output.Dir = local.Output.Dir
	}
	if len(local.Output.Formats) > 0 {
		merged.Output.Formats = local.Output.Formats
	}
	if local.Logging.Level != "" {
		merged.Logging.Level = local.Logging.Level
	}
	if local.Logging.Verbose {
		merged.Logging.Verbose = true
	}

	return &merged
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
