package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with environment variables:
//
//	PLATEMATE_SERVER_URL     base URL of the backend
//	PLATEMATE_DATA_DIR       directory for local databases
//	PLATEMATE_SYNC_INTERVAL  duration string, e.g. "15m"
func parseEnv(cfg *Config) {
	if v := os.Getenv("PLATEMATE_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PLATEMATE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PLATEMATE_SYNC_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SyncInterval = d
		}
	}
}
