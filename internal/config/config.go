package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
)

// Config holds process-level settings for the herdbook CLI.
type Config struct {
	DBPath              string
	LogUseCases         bool
	LogLevel            string
	MetricsFile         string
	DueSoonDays         int
	CheckupIntervalDays int
}

// DefaultConfig keeps everything in memory and logs at info level.
func DefaultConfig() Config {
	return Config{
		DBPath:              db.MemoryPath,
		LogLevel:            "info",
		DueSoonDays:         lifecycle.DefaultDueSoonDays,
		CheckupIntervalDays: domain.DefaultCheckupIntervalDays,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("HERDBOOK_DB"); v != "" {
		cfg.DBPath = expandHome(v)
	}
	if v := os.Getenv("HERDBOOK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HERDBOOK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HERDBOOK_METRICS_FILE"); v != "" {
		cfg.MetricsFile = expandHome(v)
	}
	if v := os.Getenv("HERDBOOK_DUE_SOON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DueSoonDays = n
		}
	}
	if v := os.Getenv("HERDBOOK_CHECKUP_INTERVAL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CheckupIntervalDays = n
		}
	}
	return cfg
}

// Lifecycle returns the reminder settings derived from cfg.
func (c Config) Lifecycle() lifecycle.Options {
	return lifecycle.Options{
		DueSoonDays:         c.DueSoonDays,
		CheckupIntervalDays: c.CheckupIntervalDays,
	}
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
