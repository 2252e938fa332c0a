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

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[salon]
timezone = "Europe/Madrid"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 9, cfg.Salon.OpenHour)
	assert.Equal(t, 19, cfg.Salon.CloseHour)
	assert.Equal(t, 30, cfg.Salon.SlotIntervalMinutes)
	assert.Equal(t, 15, cfg.Salon.CapacityStepMinutes)
	assert.Equal(t, 30, cfg.Salon.DefaultServiceDurationMinutes)
}

func TestLoadFallbackToDayPoolDefaultsTrue(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[salon]
timezone = "Europe/Madrid"
`))
	require.NoError(t, err)

	assert.True(t, cfg.Salon.FallbackToDayPool)
}

func TestLoadFallbackToDayPoolExplicitFalse(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[salon]
timezone = "Europe/Madrid"
fallback_to_day_pool = false
`))
	require.NoError(t, err)

	assert.False(t, cfg.Salon.FallbackToDayPool)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoadInvalidHours(t *testing.T) {
	_, err := Load(writeConfig(t, `
[salon]
open_hour = 20
close_hour = 9
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadClosedWeekdayOutOfRange(t *testing.T) {
	_, err := Load(writeConfig(t, `
[salon]
closed_weekdays = [7]
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
