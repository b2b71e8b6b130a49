package config

import (
	"os"
	"strconv"

	"moim/cmd/internal/recurrence"
)

// Config is read once at startup from the environment (a .env file is
// loaded beforehand by main). Every value has a working default.
type Config struct {
	Port   string
	DBPath string

	// Windows bounds series expansion when the client omits an end date.
	// The exact window is policy, not a constant: MOIM_WINDOW_YEARLY_YEARS
	// and MOIM_WINDOW_DEFAULT_YEARS override it.
	Windows recurrence.WindowPolicy

	// Purge settings for the soft-delete housekeeping job.
	PurgeSchedule      string
	PurgeRetentionDays int
}

func Load() *Config {
	return &Config{
		Port:   envOr("MOIM_PORT", "6060"),
		DBPath: envOr("MOIM_DB_PATH", "./database.db"),
		Windows: recurrence.WindowPolicy{
			YearlyYears:  envIntOr("MOIM_WINDOW_YEARLY_YEARS", 5),
			DefaultYears: envIntOr("MOIM_WINDOW_DEFAULT_YEARS", 1),
		},
		PurgeSchedule:      envOr("MOIM_PURGE_SCHEDULE", "@daily"),
		PurgeRetentionDays: envIntOr("MOIM_PURGE_RETENTION_DAYS", 90),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
