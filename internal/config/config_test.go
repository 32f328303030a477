package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "psychic-poker.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Eval.Workers)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 60, cfg.Server.IdleTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
eval {
  workers        = 4
  pretty         = true
  skip_self_test = true
}

server {
  address              = "127.0.0.1:9000"
  idle_timeout_seconds = 30
}

log {
  level  = "debug"
  format = "json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Eval.Workers)
	assert.True(t, cfg.Eval.Pretty)
	assert.True(t, cfg.Eval.SkipSelfTest)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, 30, cfg.Server.IdleTimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
eval {
  workers = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Eval.Workers)
	assert.False(t, cfg.Eval.Pretty)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeConfig(t, `eval { workers = `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `
eval {
  cheat_mode = true
}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Eval.Workers = -1 },
			wantErr: "workers",
		},
		{
			name:    "empty address",
			mutate:  func(c *Config) { c.Server.Address = "" },
			wantErr: "address",
		},
		{
			name:    "zero idle timeout",
			mutate:  func(c *Config) { c.Server.IdleTimeoutSeconds = 0 },
			wantErr: "idle timeout",
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log level",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
