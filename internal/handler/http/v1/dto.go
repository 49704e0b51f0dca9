package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/mgiraldoc/traffic_points_api/internal/service"
)

// CreatePointRequest is the payload for reporting a new traffic point.
// The owner is taken from the bearer token, never from the body.
// @Description Payload for reporting a new traffic point
type CreatePointRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdatePointRequest is a partial update. Absent fields stay unchanged.
// @Description Partial update of a traffic point
type UpdatePointRequest struct {
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// PointResponse carries one traffic point.
// @Description Traffic point
type PointResponse struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserPointsResponse bundles an owner's points as GeoJSON with a count.
// @Description GeoJSON points of the authenticated user
type UserPointsResponse struct {
	Points any `json:"points"`
	Count  int `json:"count"`
}

// RegisterRequest is the payload for creating an account.
// @Description Payload for account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// LoginRequest is the payload for logging in.
// @Description Payload for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
// @Description Issued bearer token
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse carries a registered account, without credentials.
// @Description Registered account
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// listPointsQuery holds the proximity filter query parameters.
type listPointsQuery struct {
	Type   *string  `form:"type"`
	Lat    *float64 `form:"lat"`
	Lng    *float64 `form:"lng"`
	Radius *float64 `form:"radius"`
}

func (q listPointsQuery) toFilter() *service.ProximityFilter {
	if q.Type == nil && q.Lat == nil && q.Lng == nil && q.Radius == nil {
		return nil
	}
	f := &service.ProximityFilter{
		Lat:      q.Lat,
		Lng:      q.Lng,
		RadiusKm: q.Radius,
	}
	if q.Type != nil {
		t := toPointType(*q.Type)
		f.Type = &t
	}
	return f
}
