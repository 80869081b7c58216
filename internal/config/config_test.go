package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dom/teyvat-archive/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TEYVAT_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.PersistsTeams())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TEYVAT_CONFIG", "")
	t.Setenv("TEYVAT_PORT", "9090")
	t.Setenv("TEYVAT_ENVIRONMENT", "production")
	t.Setenv("TEYVAT_LOG_LEVEL", "debug")
	t.Setenv("TEYVAT_DATABASE_URL", "postgres://archive@localhost/teyvat")
	t.Setenv("TEYVAT_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("TEYVAT_METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.PersistsTeams())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
log_level: warn
cors_origins:
  - http://localhost:5173
read_timeout: 3s
`), 0o600))

	t.Setenv("TEYVAT_LOG_LEVEL", "error")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "error", cfg.LogLevel, "environment overrides the file")
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout, "unset keys keep defaults")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty port", mutate: func(c *config.Config) { c.Port = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "zero shutdown timeout", mutate: func(c *config.Config) { c.ShutdownTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("TEYVAT_CONFIG", "")
	t.Setenv("TEYVAT_LOG_LEVEL", "shouty")

	_, err := config.Load()
	assert.Error(t, err)
}
