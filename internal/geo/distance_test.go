package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	bogota := Coordinate{Lat: 4.6097, Lon: -74.0817}
	assert.Zero(t, DistanceKm(bogota, bogota))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 4.6097, Lon: -74.0817}
	b := Coordinate{Lat: 6.2442, Lon: -75.5812}
	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKm_OneDegreeLongitudeAtEquator(t *testing.T) {
	// 1° of longitude at the equator is about 111.19 km.
	d := DistanceKm(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 0, Lon: 1})
	assert.InDelta(t, 111.19, d, 0.05)
}

func TestDistanceKm_KnownCities(t *testing.T) {
	// Bogotá to Medellín, roughly 245 km as the crow flies.
	d := DistanceKm(
		Coordinate{Lat: 4.6097, Lon: -74.0817},
		Coordinate{Lat: 6.2442, Lon: -75.5812},
	)
	assert.InDelta(t, 245, d, 5)
}

func TestDistanceKm_Antimeridian(t *testing.T) {
	// Points on either side of the antimeridian are close, not half a
	// world apart.
	d := DistanceKm(Coordinate{Lat: 0, Lon: 179.5}, Coordinate{Lat: 0, Lon: -179.5})
	assert.InDelta(t, 111.19, d, 0.05)
}
