package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, "0 */15 * * * *", cfg.WatchSweepSchedule)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WARDEN_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("WATCH_SWEEP_SCHEDULE", "@every 30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, "@every 30s", cfg.WatchSweepSchedule)
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 0, WatchSweepSchedule: "@hourly"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadSchedule(t *testing.T) {
	cfg := &Config{Port: 8090, WatchSweepSchedule: "not a cron"}
	assert.Error(t, cfg.Validate())
}
