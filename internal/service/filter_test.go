package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgiraldoc/traffic_points_api/internal/models"
)

func TestBuildFilter_NilAcceptsEverything(t *testing.T) {
	pred, err := buildFilter(nil)

	require.NoError(t, err)
	assert.True(t, pred(&models.GeoPoint{Type: models.TypeAccidente}))
	assert.True(t, pred(&models.GeoPoint{Type: models.TypeOtro, Latitude: 89}))
}

func TestBuildFilter_EmptyCriteriaAcceptsEverything(t *testing.T) {
	pred, err := buildFilter(&ProximityFilter{})

	require.NoError(t, err)
	assert.True(t, pred(&models.GeoPoint{Type: models.TypeCongestion}))
}

func TestBuildFilter_TypeOnly(t *testing.T) {
	pred, err := buildFilter(&ProximityFilter{Type: typePtr(models.TypeObstruccion)})

	require.NoError(t, err)
	assert.True(t, pred(&models.GeoPoint{Type: models.TypeObstruccion}))
	assert.False(t, pred(&models.GeoPoint{Type: models.TypeAccidente}))
}

func TestBuildFilter_UnknownTypeRejected(t *testing.T) {
	unknown := models.PointType("incendio")
	_, err := buildFilter(&ProximityFilter{Type: &unknown})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildFilter_PartialGeoCriteriaRejected(t *testing.T) {
	cases := []struct {
		name   string
		filter *ProximityFilter
	}{
		{"radius only", &ProximityFilter{RadiusKm: floatPtr(10)}},
		{"center only", &ProximityFilter{Lat: floatPtr(0), Lng: floatPtr(0)}},
		{"lat only", &ProximityFilter{Lat: floatPtr(0)}},
		{"radius and lat", &ProximityFilter{Lat: floatPtr(0), RadiusKm: floatPtr(10)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildFilter(tc.filter)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestBuildFilter_InvalidCenterRejected(t *testing.T) {
	_, err := buildFilter(&ProximityFilter{
		Lat:      floatPtr(91),
		Lng:      floatPtr(0),
		RadiusKm: floatPtr(10),
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildFilter_NonPositiveRadiusRejected(t *testing.T) {
	_, err := buildFilter(&ProximityFilter{
		Lat:      floatPtr(0),
		Lng:      floatPtr(0),
		RadiusKm: floatPtr(0),
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildFilter_RadiusBoundaryInclusive(t *testing.T) {
	// A point almost exactly on the radius boundary stays included.
	pred, err := buildFilter(&ProximityFilter{
		Lat:      floatPtr(0),
		Lng:      floatPtr(0),
		RadiusKm: floatPtr(111.2),
	})

	require.NoError(t, err)
	assert.True(t, pred(&models.GeoPoint{Latitude: 0, Longitude: 1}))
	assert.False(t, pred(&models.GeoPoint{Latitude: 0, Longitude: 1.01}))
}

func TestApplyFilter_PreservesOrder(t *testing.T) {
	a := &models.GeoPoint{Type: models.TypeAccidente}
	b := &models.GeoPoint{Type: models.TypeOtro}
	c := &models.GeoPoint{Type: models.TypeAccidente}

	pred, err := buildFilter(&ProximityFilter{Type: typePtr(models.TypeAccidente)})
	require.NoError(t, err)

	matched := applyFilter([]*models.GeoPoint{a, b, c}, pred)

	assert.Equal(t, []*models.GeoPoint{a, c}, matched)
}
