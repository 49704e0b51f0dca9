package geo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgiraldoc/traffic_points_api/internal/models"
)

func TestToFeatureCollection_CoordinateOrder(t *testing.T) {
	point := &models.GeoPoint{
		ID:        uuid.New(),
		Latitude:  4.6,
		Longitude: -74.1,
		Type:      models.TypeAccidente,
		OwnerID:   "user-1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	fc := ToFeatureCollection([]*models.GeoPoint{point})

	require.Len(t, fc.Features, 1)
	feature := fc.Features[0]
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Equal(t, "Feature", feature.Type)
	assert.Equal(t, "Point", feature.Geometry.Type)
	// Longitude first.
	assert.Equal(t, []float64{-74.1, 4.6}, feature.Geometry.Coordinates)
	assert.Equal(t, "accidente", feature.Properties["type"])
	assert.Equal(t, "user-1", feature.Properties["owner_id"])
}

func TestToFeatureCollection_Empty(t *testing.T) {
	fc := ToFeatureCollection(nil)

	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.NotNil(t, fc.Features)
	assert.Empty(t, fc.Features)
}
