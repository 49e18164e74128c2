package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load([]string{"status"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, 15*time.Minute, cfg.SyncInterval)
	assert.True(t, cfg.Realtime)
	assert.Equal(t, []string{"status"}, rest)
}

func TestLoad_Flags(t *testing.T) {
	cfg, rest, err := Load([]string{
		"-server", "https://api.platemate.app",
		"-data", "/tmp/platemate",
		"-sync-interval", "5m",
		"-no-realtime",
		"sync",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.platemate.app", cfg.ServerURL)
	assert.Equal(t, "/tmp/platemate", cfg.DataDir)
	assert.Equal(t, 5*time.Minute, cfg.SyncInterval)
	assert.False(t, cfg.Realtime)
	assert.Equal(t, []string{"sync"}, rest)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "https://staging.platemate.app",
		"sync_interval": "30m",
		"realtime": false
	}`), 0o600))

	cfg, rest, err := Load([]string{"-config", path, "status"})
	require.NoError(t, err)

	assert.Equal(t, "https://staging.platemate.app", cfg.ServerURL)
	assert.Equal(t, 30*time.Minute, cfg.SyncInterval)
	assert.False(t, cfg.Realtime)
	// Не названное в JSON остается дефолтом
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, []string{"status"}, rest)
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url": "https://from-json"}`), 0o600))

	cfg, _, err := Load([]string{"-config", path, "-server", "https://from-flag", "status"})
	require.NoError(t, err)
	assert.Equal(t, "https://from-flag", cfg.ServerURL)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PLATEMATE_SERVER_URL", "https://from-env")
	t.Setenv("PLATEMATE_SYNC_INTERVAL", "45m")

	cfg, _, err := Load([]string{"status"})
	require.NoError(t, err)
	assert.Equal(t, "https://from-env", cfg.ServerURL)
	assert.Equal(t, 45*time.Minute, cfg.SyncInterval)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, _, err := Load([]string{"-config", path})
	require.Error(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, _, err := Load([]string{"-config", "/does/not/exist.json"})
	require.Error(t, err)
}
