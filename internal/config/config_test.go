package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaward-io/seaward/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_TOKEN", "test-token")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Sources.USGSEnabled)
	assert.True(t, cfg.Sources.GDACSEnabled)
	assert.Equal(t, 500.0, cfg.Engine.DefaultRadiusKm)
	assert.Equal(t, 10*time.Minute, cfg.Engine.RefreshInterval)
	assert.Equal(t, time.Hour, cfg.Engine.WatchTTL)
	assert.Empty(t, cfg.DB.URL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_TOKEN", "test-token")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("USGS_ENABLED", "false")
	t.Setenv("DEFAULT_RADIUS_KM", "250")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Sources.USGSEnabled)
	assert.Equal(t, 250.0, cfg.Engine.DefaultRadiusKm)
	assert.Equal(t, 5*time.Minute, cfg.Engine.RefreshInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("API_TOKEN", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_TOKEN")
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("API_TOKEN", "test-token")
	t.Setenv("SERVER_PORT", "70000")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_BadLogLevel(t *testing.T) {
	t.Setenv("API_TOKEN", "test-token")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_RefreshIntervalFloor(t *testing.T) {
	t.Setenv("API_TOKEN", "test-token")
	t.Setenv("REFRESH_INTERVAL", "5s")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_WatchTTLBelowInterval(t *testing.T) {
	t.Setenv("API_TOKEN", "test-token")
	t.Setenv("REFRESH_INTERVAL", "10m")
	t.Setenv("WATCH_TTL", "2m")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch TTL")
}
