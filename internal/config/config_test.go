package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvilela/lumo/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                  ":8080",
		DBPath:                "test.db",
		LogLevel:              "INFO",
		XPPerReview:           10,
		BaseStreakXP:          10,
		ActivityRetentionDays: 365,
		MaintenanceWorkers:    1,
		MaintenanceQueueSize:  8,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_LogLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "uppercase valid", level: "DEBUG", wantErr: false},
		{name: "lowercase valid", level: "warn", wantErr: false},
		{name: "invalid", level: "VERBOSE", wantErr: true},
		{name: "empty", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NonPositiveValues(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero review XP",
			mutate:        func(c *config.Config) { c.XPPerReview = 0 },
			expectedError: "XP_PER_REVIEW",
		},
		{
			name:          "negative streak XP",
			mutate:        func(c *config.Config) { c.BaseStreakXP = -5 },
			expectedError: "BASE_STREAK_XP",
		},
		{
			name:          "zero retention",
			mutate:        func(c *config.Config) { c.ActivityRetentionDays = 0 },
			expectedError: "ACTIVITY_RETENTION_DAYS",
		},
		{
			name:          "zero workers",
			mutate:        func(c *config.Config) { c.MaintenanceWorkers = 0 },
			expectedError: "MAINTENANCE_WORKER_COUNT",
		},
		{
			name:          "zero queue",
			mutate:        func(c *config.Config) { c.MaintenanceQueueSize = 0 },
			expectedError: "MAINTENANCE_QUEUE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "XP_PER_REVIEW")
	assert.Contains(t, errStr, "BASE_STREAK_XP")
	assert.Contains(t, errStr, "ACTIVITY_RETENTION_DAYS")
	assert.Contains(t, errStr, "MAINTENANCE_WORKER_COUNT")
	assert.Contains(t, errStr, "MAINTENANCE_QUEUE_SIZE")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "XP_PER_REVIEW", "BASE_STREAK_XP"} {
		original := os.Getenv(key)
		os.Unsetenv(key)
		defer func(k, v string) {
			if v != "" {
				os.Setenv(k, v)
			}
		}(key, original)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:lumo.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 10, cfg.XPPerReview)
	assert.Equal(t, 10, cfg.BaseStreakXP)
	assert.Equal(t, 365, cfg.ActivityRetentionDays)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	originalAddr := os.Getenv("ADDR")
	originalDBPath := os.Getenv("DB_PATH")
	originalStreak := os.Getenv("BASE_STREAK_XP")

	defer func() {
		restore := func(key, val string) {
			if val != "" {
				os.Setenv(key, val)
			} else {
				os.Unsetenv(key)
			}
		}
		restore("ADDR", originalAddr)
		restore("DB_PATH", originalDBPath)
		restore("BASE_STREAK_XP", originalStreak)
	}()

	os.Setenv("ADDR", ":9090")
	os.Setenv("DB_PATH", "custom.db")
	os.Setenv("BASE_STREAK_XP", "25")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 25, cfg.BaseStreakXP)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	original := os.Getenv("XP_PER_REVIEW")
	defer func() {
		if original != "" {
			os.Setenv("XP_PER_REVIEW", original)
		} else {
			os.Unsetenv("XP_PER_REVIEW")
		}
	}()

	os.Setenv("XP_PER_REVIEW", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 10, cfg.XPPerReview)
}
