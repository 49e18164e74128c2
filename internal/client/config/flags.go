package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags overlays Config with command-line flags and returns the
// positional arguments that remain (the command and its arguments).
//
// Supported flags:
//
//	-server string    base URL of the backend (default from Config)
//	-data string      directory for local databases
//	-sync-interval duration   minimum pause between sync passes
//	-no-realtime      disable the websocket invalidation channel
//	-config string    path to a JSON config file (consumed by parseJSON)
func parseFlags(cfg *Config, args []string) ([]string, error) {
	fs := flag.NewFlagSet("platemate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "base URL of the backend server")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory for local databases")
	fs.DurationVar(&cfg.SyncInterval, "sync-interval", cfg.SyncInterval, "minimum pause between sync passes")
	noRealtime := fs.Bool("no-realtime", !cfg.Realtime, "disable realtime entitlement invalidation")
	// -config уже обработан parseJSON; регистрируем, чтобы Parse его принял
	fs.String("config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg.Realtime = !*noRealtime
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = 15 * time.Minute
	}

	return fs.Args(), nil
}
