package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoicesplit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "Invoice", cfg.DescriptionPrefix)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
port = 9090
db_path = "/var/lib/invoicesplit/db.sqlite"
strict_numbers = true
description_prefix = "Bill"
`)

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/var/lib/invoicesplit/db.sqlite", cfg.DBPath)
	assert.True(t, cfg.StrictNumbers)
	assert.Equal(t, "Bill", cfg.DescriptionPrefix)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg, err = Load(path, envMap(map[string]string{
		"PORT":            "7000",
		"STRICT_NUMBERS":  "false",
		"LOG_LEVEL":       "debug",
		"METRICS_ENABLED": "0",
	}))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.False(t, cfg.StrictNumbers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "Bill", cfg.DescriptionPrefix)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeConfig(t, `colour = "blue"`), envMap(nil))
	assert.ErrorContains(t, err, "unknown keys")

	_, err = Load(writeConfig(t, `port = "eighty"`), envMap(nil))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), envMap(nil))
	assert.Error(t, err)

	_, err = Load("", envMap(map[string]string{"PORT": "abc"}))
	assert.ErrorContains(t, err, "invalid PORT")

	_, err = Load("", envMap(map[string]string{"PORT": "70000"}))
	assert.ErrorContains(t, err, "out of range")

	_, err = Load("", envMap(map[string]string{"STRICT_NUMBERS": "maybe"}))
	assert.ErrorContains(t, err, "invalid STRICT_NUMBERS")
}
