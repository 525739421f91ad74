package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-34.6037, -58.3816},
		{40.4168, -3.7038},
		{-90, 0},
		{90, 180},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1 := DistanceMeters(-34.6037, -58.3816, 40.4168, -3.7038)
	d2 := DistanceMeters(40.4168, -3.7038, -34.6037, -58.3816)

	assert.Equal(t, d1, d2)
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// Obelisco to Casa Rosada, Buenos Aires: ~1.15km.
	d := DistanceMeters(-34.6037, -58.3816, -34.6083, -58.3702)
	assert.InDelta(t, 1150, d, 100)

	// Buenos Aires to Madrid: ~10,000 km.
	d = DistanceMeters(-34.6037, -58.3816, 40.4168, -3.7038)
	assert.InDelta(t, 10_040_000, d, 100_000)

	// One degree of latitude at the equator: ~111.2 km.
	d = DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111_195, d, 100)
}

func TestDistanceMeters_ShortRange(t *testing.T) {
	// ~100m north of the reference point (1m of latitude ~ 1/111195 degree).
	d := DistanceMeters(-34.6037, -58.3816, -34.6037+100.0/111195.0, -58.3816)
	assert.InDelta(t, 100, d, 1)
}
