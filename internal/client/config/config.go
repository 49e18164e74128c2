package config

import (
	"time"
)

// Config holds runtime settings for the PlateMate client engine.
//
// Sources are layered: defaults, then an optional JSON file, then
// environment variables, then command-line flags. Later sources win.
type Config struct {
	// ServerURL is the base HTTP address of the PlateMate backend.
	ServerURL string
	// DataDir is the directory holding the sqlite database and the
	// bolt cache file.
	DataDir string
	// SyncInterval is the minimum pause between automatic sync passes.
	SyncInterval time.Duration
	// Realtime enables the websocket entitlement-invalidation channel.
	Realtime bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.DataDir = "."
	c.SyncInterval = 15 * time.Minute
	c.Realtime = true
}

// Load constructs a Config: defaults, then JSON file (if named by flag or
// env), then environment, then flags. Returns the config and the positional
// arguments left after flag parsing (command and its arguments).
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, nil, err
	}
	parseEnv(cfg)

	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
