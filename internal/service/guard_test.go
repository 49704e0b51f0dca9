package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgiraldoc/traffic_points_api/internal/models"
)

func TestCheckOwnership(t *testing.T) {
	point := &models.GeoPoint{OwnerID: "user-1"}

	assert.NoError(t, checkOwnership(point, "user-1"))
	assert.ErrorIs(t, checkOwnership(point, "user-2"), ErrForbidden)
	assert.ErrorIs(t, checkOwnership(point, ""), ErrForbidden)
}
