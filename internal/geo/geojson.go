package geo

import "github.com/mgiraldoc/traffic_points_api/internal/models"

// FeatureCollection is a standard GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature with point geometry.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry carries coordinates in GeoJSON order: [Lon, Lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ToFeatureCollection projects points into a GeoJSON FeatureCollection.
// An empty or nil input produces a collection with an empty feature list.
func ToFeatureCollection(points []*models.GeoPoint) *FeatureCollection {
	features := make([]Feature, 0, len(points))
	for _, p := range points {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type: "Point",
				// GeoJSON puts longitude first, the inverse of the
				// model's lat/lng field order.
				Coordinates: []float64{p.Longitude, p.Latitude},
			},
			Properties: map[string]any{
				"id":          p.ID.String(),
				"type":        string(p.Type),
				"description": p.Description,
				"owner_id":    p.OwnerID,
				"created_at":  p.CreatedAt,
				"updated_at":  p.UpdatedAt,
			},
		})
	}
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
