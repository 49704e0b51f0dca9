package service

import "github.com/mgiraldoc/traffic_points_api/internal/models"

// checkOwnership authorizes a mutation of point by actingUserID. Reads are
// never gated by this check; only update and delete are.
func checkOwnership(point *models.GeoPoint, actingUserID string) error {
	if point.OwnerID != actingUserID {
		return ErrForbidden
	}
	return nil
}
