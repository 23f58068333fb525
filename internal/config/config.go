package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                  string
	DBPath                string
	LogLevel              string
	XPPerReview           int
	BaseStreakXP          int
	ActivityRetentionDays int
	MaintenanceWorkers    int
	MaintenanceQueueSize  int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                  envOr("ADDR", ":8080"),
		DBPath:                envOr("DB_PATH", "file:lumo.db"),
		LogLevel:              envOr("LOG_LEVEL", "INFO"),
		XPPerReview:           envIntOr("XP_PER_REVIEW", 10),
		BaseStreakXP:          envIntOr("BASE_STREAK_XP", 10),
		ActivityRetentionDays: envIntOr("ACTIVITY_RETENTION_DAYS", 365),
		MaintenanceWorkers:    envIntOr("MAINTENANCE_WORKER_COUNT", 1),
		MaintenanceQueueSize:  envIntOr("MAINTENANCE_QUEUE_SIZE", 8),
	}
}

// Validate checks the configuration for values the server cannot run with.
// All problems are reported at once so operators fix them in a single pass.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	if c.XPPerReview <= 0 {
		problems = append(problems, fmt.Sprintf("XP_PER_REVIEW must be positive (got %d)", c.XPPerReview))
	}
	if c.BaseStreakXP <= 0 {
		problems = append(problems, fmt.Sprintf("BASE_STREAK_XP must be positive (got %d)", c.BaseStreakXP))
	}
	if c.ActivityRetentionDays <= 0 {
		problems = append(problems, fmt.Sprintf("ACTIVITY_RETENTION_DAYS must be positive (got %d)", c.ActivityRetentionDays))
	}
	if c.MaintenanceWorkers <= 0 {
		problems = append(problems, fmt.Sprintf("MAINTENANCE_WORKER_COUNT must be positive (got %d)", c.MaintenanceWorkers))
	}
	if c.MaintenanceQueueSize <= 0 {
		problems = append(problems, fmt.Sprintf("MAINTENANCE_QUEUE_SIZE must be positive (got %d)", c.MaintenanceQueueSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
