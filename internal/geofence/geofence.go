// Package geofence answers whether a reported position lies inside the
// circular area around the office.
package geofence

import "math"

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

type Point struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether p is a finite coordinate inside the WGS84 range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Distance is the haversine great-circle distance in meters. Invalid input
// yields NaN.
func Distance(a, b Point) float64 {
	if !a.Valid() || !b.Valid() {
		return math.NaN()
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Evaluate returns the distance from the fence center and whether it is
// within the radius. The threshold is inclusive; NaN is never within.
func (f Fence) Evaluate(p Point) (distance float64, within bool) {
	distance = Distance(f.Center, p)
	return distance, distance <= f.RadiusMeters
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
