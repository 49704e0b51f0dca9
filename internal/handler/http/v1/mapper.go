package v1

import (
	"github.com/mgiraldoc/traffic_points_api/internal/models"
	"github.com/mgiraldoc/traffic_points_api/internal/service"
)

func toPointType(s string) models.PointType {
	return models.PointType(s)
}

// CreateRequestToInput converts the creation DTO into service input.
func CreateRequestToInput(req CreatePointRequest) service.CreatePointInput {
	return service.CreatePointInput{
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Type:        toPointType(req.Type),
		Description: req.Description,
	}
}

// UpdateRequestToInput converts the partial-update DTO into service input.
func UpdateRequestToInput(req UpdatePointRequest) service.UpdatePointInput {
	input := service.UpdatePointInput{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
	}
	if req.Type != nil {
		t := toPointType(*req.Type)
		input.Type = &t
	}
	return input
}

// ModelToPointResponse converts a domain point into a response DTO.
func ModelToPointResponse(model *models.GeoPoint) *PointResponse {
	return &PointResponse{
		ID:          model.ID,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Type:        string(model.Type),
		Description: model.Description,
		OwnerID:     model.OwnerID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToPointResponses converts a slice of domain points into DTOs.
func ModelsToPointResponses(points []*models.GeoPoint) []*PointResponse {
	responses := make([]*PointResponse, len(points))
	for i, point := range points {
		responses[i] = ModelToPointResponse(point)
	}
	return responses
}

// ModelToUserResponse converts a domain user into a response DTO.
func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
