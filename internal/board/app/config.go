package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for access tokens

	SessionStorageMode string // Optional: session slot storage (memory, persistent) (default: memory)
	SessionDBFile      string // Optional: path to SQLite session database file (default: ./taskboard.db)

	AccessTTL        time.Duration // Optional: access token lifetime (default: 12h)
	SimulatedLatency time.Duration // Optional: artificial backend latency on login/reset/assistant (default: 0)
	DueSoonWindow    time.Duration // Optional: warning horizon for due-soon notifications (default: 48h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("BOARD_ISSUER"),
		SessionStorageMode:   getEnvOrDefault("BOARD_SESSION_STORAGE_MODE", "memory"),
		SessionDBFile:        getEnvOrDefault("BOARD_SESSION_DB_FILE", "taskboard.db"),
		AccessTTL:            getEnvDurationOrDefault("BOARD_ACCESS_TTL", 12*time.Hour),
		SimulatedLatency:     getEnvDurationOrDefault("BOARD_SIMULATED_LATENCY", 0),
		DueSoonWindow:        getEnvDurationOrDefault("BOARD_DUE_SOON_WINDOW", 48*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "taskboard"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
