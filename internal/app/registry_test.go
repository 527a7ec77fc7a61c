package app

import (
	"testing"
	"time"

	"go-checkin/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestPunchPolicy(t *testing.T) {
	loc := time.FixedZone("ECT", -5*60*60)
	cfg := config.Config{
		Office: config.OfficeConfig{
			Latitude:     -0.32550,
			Longitude:    -78.44028,
			RadiusMeters: 2000,
		},
		CooldownMinutes:  15,
		MaxPunchesPerDay: 4,
		Location:         loc,
	}

	policy := punchPolicy(cfg)

	assert.Equal(t, -0.32550, policy.Office.Center.Latitude)
	assert.Equal(t, -78.44028, policy.Office.Center.Longitude)
	assert.Equal(t, 2000.0, policy.Office.RadiusMeters)
	assert.Equal(t, 15*time.Minute, policy.Cooldown)
	assert.Equal(t, 4, policy.MaxPunchesPerDay)
	assert.Same(t, loc, policy.Location)
}
