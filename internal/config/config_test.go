package config_test

import (
	"testing"
	"time"

	"go-checkin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OFFICE_LATITUDE", "")
	t.Setenv("OFFICE_LONGITUDE", "")
	t.Setenv("OFFICE_RADIUS_METERS", "")
	t.Setenv("CHECKIN_COOLDOWN_MINUTES", "")
	t.Setenv("CHECKIN_MAX_PER_DAY", "")
	t.Setenv("APP_TIMEZONE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.CooldownMinutes)
	assert.Equal(t, 15*time.Minute, cfg.Cooldown())
	assert.Equal(t, 4, cfg.MaxPunchesPerDay)
	assert.Equal(t, 2000.0, cfg.Office.RadiusMeters)
	assert.Equal(t, -0.32550, cfg.Office.Latitude)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OFFICE_LATITUDE", "40.4168")
	t.Setenv("OFFICE_LONGITUDE", "-3.7038")
	t.Setenv("OFFICE_RADIUS_METERS", "150")
	t.Setenv("CHECKIN_COOLDOWN_MINUTES", "5")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("REPORT_CACHE_TTL", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 40.4168, cfg.Office.Latitude)
	assert.Equal(t, 150.0, cfg.Office.RadiusMeters)
	assert.Equal(t, 5*time.Minute, cfg.Cooldown())
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("non positive radius", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "")
		t.Setenv("OFFICE_RADIUS_METERS", "0")
		_, err := config.Load()
		assert.ErrorContains(t, err, "OFFICE_RADIUS_METERS")
	})
}
