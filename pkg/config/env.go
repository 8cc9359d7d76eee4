// Package config provides helpers for reading typed settings from environment variables.
//
// Every GetEnv* function returns defaultValue when the variable is unset or empty.
// A value that is set but cannot be parsed is logged as a warning and also
// replaced by defaultValue, so a typo never prevents startup on its own.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Example:
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt64 returns the value of an environment variable as an int64.
//
// Example:
//
//	maxBody := GetEnvInt64("MAX_BODY_BYTES", 1<<20)
func GetEnvInt64(key string, defaultValue int64) int64 {
	return getEnv(key, defaultValue, "integer", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// GetEnvFloat returns the value of an environment variable as a float64.
//
// Example:
//
//	ratio := GetEnvFloat("TRACING_SAMPLE_RATIO", 1.0)
func GetEnvFloat(key string, defaultValue float64) float64 {
	return getEnv(key, defaultValue, "float", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvBool returns the value of an environment variable as a boolean.
// Accepted values are those of strconv.ParseBool ("1", "t", "true", "0", "f", "false", ...).
//
// Example:
//
//	enabled := GetEnvBool("TRACING_ENABLED", true)
func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue, "boolean", strconv.ParseBool)
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
// The value must be parseable by time.ParseDuration (e.g. "500ms", "10s", "1m30s").
//
// Example:
//
//	timeout := GetEnvDuration("REQUEST_TIMEOUT", 10*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return getEnv(key, defaultValue, "duration", time.ParseDuration)
}

func getEnv[T any](key string, defaultValue T, kind string, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := parse(raw)
	if err != nil {
		slog.Warn("invalid "+kind+" value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}
