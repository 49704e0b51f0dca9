package models

import (
	"time"

	"github.com/google/uuid"
)

// PointType is the category of a reported traffic event.
type PointType string

const (
	TypeAccidente   PointType = "accidente"
	TypeCongestion  PointType = "congestión"
	TypeObstruccion PointType = "obstrucción"
	TypeOtro        PointType = "otro"
)

// PointTypes lists every accepted point type, in a stable order for
// error messages.
func PointTypes() []PointType {
	return []PointType{TypeAccidente, TypeCongestion, TypeObstruccion, TypeOtro}
}

// Valid reports whether t is one of the accepted point types.
func (t PointType) Valid() bool {
	switch t {
	case TypeAccidente, TypeCongestion, TypeObstruccion, TypeOtro:
		return true
	}
	return false
}

// MaxDescriptionLen is the upper bound on the description field, in runes.
const MaxDescriptionLen = 500

// GeoPoint is a reported traffic event. OwnerID is bound from the
// authenticated caller at creation and never reassigned.
type GeoPoint struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Type        PointType `json:"type"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
