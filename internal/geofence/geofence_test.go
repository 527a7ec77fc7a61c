package geofence_test

import (
	"math"
	"testing"

	"go-checkin/internal/geofence"

	"github.com/stretchr/testify/assert"
)

var office = geofence.Point{Latitude: -0.32550, Longitude: -78.44028}

func TestDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		for _, p := range []geofence.Point{office, {}, {Latitude: 89.9, Longitude: 179.9}} {
			assert.Equal(t, 0.0, geofence.Distance(p, p))
		}
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := geofence.Distance(geofence.Point{Latitude: 0, Longitude: 0}, geofence.Point{Latitude: 1, Longitude: 0})
		assert.InDelta(t, geofence.EarthRadiusMeters*math.Pi/180, d, 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		other := geofence.Point{Latitude: -0.2201, Longitude: -78.5123}
		assert.InDelta(t, geofence.Distance(office, other), geofence.Distance(other, office), 1e-9)
	})

	t.Run("invalid input is NaN", func(t *testing.T) {
		cases := []geofence.Point{
			{Latitude: math.NaN(), Longitude: 0},
			{Latitude: 0, Longitude: math.Inf(1)},
			{Latitude: 91, Longitude: 0},
			{Latitude: 0, Longitude: -180.5},
		}
		for _, p := range cases {
			assert.True(t, math.IsNaN(geofence.Distance(office, p)), "%+v", p)
		}
	})
}

func TestFence_Evaluate(t *testing.T) {
	fence := geofence.Fence{Center: office, RadiusMeters: 2000}

	t.Run("office itself passes", func(t *testing.T) {
		d, ok := fence.Evaluate(office)
		assert.Equal(t, 0.0, d)
		assert.True(t, ok)
	})

	t.Run("far away fails", func(t *testing.T) {
		d, ok := fence.Evaluate(geofence.Point{Latitude: -0.18, Longitude: -78.47})
		assert.Greater(t, d, 2000.0)
		assert.False(t, ok)
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		p := geofence.Point{Latitude: -0.31, Longitude: -78.44028}
		exact := geofence.Fence{Center: office, RadiusMeters: geofence.Distance(office, p)}

		d, ok := exact.Evaluate(p)
		assert.Equal(t, exact.RadiusMeters, d)
		assert.True(t, ok)
	})

	t.Run("malformed fails closed", func(t *testing.T) {
		d, ok := fence.Evaluate(geofence.Point{Latitude: math.NaN(), Longitude: math.NaN()})
		assert.True(t, math.IsNaN(d))
		assert.False(t, ok)
	})
}
