package infrastructure

import (
	"os"
	"strconv"
	"time"
)

// Typed environment lookups. A value that is set but unparseable falls back
// to the default rather than failing startup.

func GetEnvAsInt(key string, defaultValue int) int {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func GetEnvAsString(key string, defaultValue string) string {
	if raw := os.Getenv(key); raw != "" {
		return raw
	}
	return defaultValue
}
