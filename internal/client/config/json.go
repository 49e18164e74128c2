package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// jsonConfig is a DTO for JSON unmarshalling. Durations are strings in
// time.ParseDuration form ("15m", "1h30m").
type jsonConfig struct {
	ServerURL    string `json:"server_url"`
	DataDir      string `json:"data_dir"`
	SyncInterval string `json:"sync_interval"`
	Realtime     *bool  `json:"realtime"`
}

// parseJSON overlays Config with values from a JSON file. The file path
// comes from the -config flag or the PLATEMATE_CONFIG environment variable;
// when neither is set nothing is loaded.
func parseJSON(cfg *Config, args []string) error {
	path := configPath(args)
	if path == "" {
		path = os.Getenv("PLATEMATE_CONFIG")
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.SyncInterval != "" {
		d, err := time.ParseDuration(jc.SyncInterval)
		if err != nil {
			return fmt.Errorf("invalid sync_interval: %w", err)
		}
		cfg.SyncInterval = d
	}
	if jc.Realtime != nil {
		cfg.Realtime = *jc.Realtime
	}
	return nil
}

// configPath достает значение -config из args до общего разбора флагов:
// JSON должен лечь в слой раньше остальных флагов
func configPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
