package service

import (
	"github.com/mgiraldoc/traffic_points_api/internal/geo"
	"github.com/mgiraldoc/traffic_points_api/internal/models"
)

// ProximityFilter holds optional list criteria. Nil fields are absent.
// Center latitude/longitude and radius must be supplied together; a partial
// geo filter is rejected instead of silently ignored.
type ProximityFilter struct {
	Type     *models.PointType
	Lat      *float64
	Lng      *float64
	RadiusKm *float64
}

// predicate decides whether a point matches the filter.
type predicate func(*models.GeoPoint) bool

// buildFilter validates the criteria and composes them into a single
// predicate. Type and geo criteria are independent and combine with AND.
// A nil filter, or one with no criteria set, accepts every point.
func buildFilter(f *ProximityFilter) (predicate, error) {
	if f == nil {
		return func(*models.GeoPoint) bool { return true }, nil
	}

	geoFields := 0
	for _, v := range []*float64{f.Lat, f.Lng, f.RadiusKm} {
		if v != nil {
			geoFields++
		}
	}
	if geoFields != 0 && geoFields != 3 {
		return nil, newValidationError("filter", "lat, lng and radius must be supplied together")
	}

	if f.Type != nil && !f.Type.Valid() {
		return nil, newValidationError("type", "must be one of %v", models.PointTypes())
	}

	var preds []predicate

	if f.Type != nil {
		want := *f.Type
		preds = append(preds, func(p *models.GeoPoint) bool {
			return p.Type == want
		})
	}

	if geoFields == 3 {
		if err := validateCoordinates(*f.Lat, *f.Lng); err != nil {
			return nil, err
		}
		if *f.RadiusKm <= 0 {
			return nil, newValidationError("radius", "must be greater than zero")
		}
		center := geo.Coordinate{Lat: *f.Lat, Lon: *f.Lng}
		radius := *f.RadiusKm
		preds = append(preds, func(p *models.GeoPoint) bool {
			return geo.DistanceKm(geo.Coordinate{Lat: p.Latitude, Lon: p.Longitude}, center) <= radius
		})
	}

	return func(p *models.GeoPoint) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}, nil
}

// applyFilter runs the predicate over the candidate set. Proximity
// filtering is a deliberate linear scan; there is no spatial index.
func applyFilter(points []*models.GeoPoint, pred predicate) []*models.GeoPoint {
	matched := make([]*models.GeoPoint, 0, len(points))
	for _, p := range points {
		if pred(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
