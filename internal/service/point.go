package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mgiraldoc/traffic_points_api/internal/geo"
	"github.com/mgiraldoc/traffic_points_api/internal/models"
	"github.com/mgiraldoc/traffic_points_api/internal/notifier"
)

// PointRepository defines the persistence contract for geo points.
type PointRepository interface {
	Create(ctx context.Context, point *models.GeoPoint) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GeoPoint, error)
	GetAll(ctx context.Context) ([]*models.GeoPoint, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*models.GeoPoint, error)
	Update(ctx context.Context, point *models.GeoPoint) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetPointFromCache(ctx context.Context, id uuid.UUID) (*models.GeoPoint, error)
	SetPointCache(ctx context.Context, point *models.GeoPoint) error
	InvalidatePointCache(ctx context.Context, id uuid.UUID) error
}

// CreatePointInput carries the caller-supplied fields for a new point. The
// owner is never part of the payload; it comes from the acting identity.
type CreatePointInput struct {
	Latitude    float64
	Longitude   float64
	Type        models.PointType
	Description string
}

// UpdatePointInput is a partial field set. Nil means unchanged.
type UpdatePointInput struct {
	Latitude    *float64
	Longitude   *float64
	Type        *models.PointType
	Description *string
}

// UserPointsResult bundles an owner's points as GeoJSON with their count.
type UserPointsResult struct {
	Points *geo.FeatureCollection `json:"points"`
	Count  int                    `json:"count"`
}

// GeoPointService defines the business logic for traffic points.
type GeoPointService interface {
	CreatePoint(ctx context.Context, ownerID string, input CreatePointInput) (*models.GeoPoint, error)
	FindAll(ctx context.Context, filter *ProximityFilter) ([]*models.GeoPoint, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.GeoPoint, error)
	GetUserPoints(ctx context.Context, ownerID string) (*UserPointsResult, error)
	GetGeoJSON(ctx context.Context) (*geo.FeatureCollection, error)
	UpdatePoint(ctx context.Context, id uuid.UUID, actingUserID string, input UpdatePointInput) (*models.GeoPoint, error)
	DeletePoint(ctx context.Context, id uuid.UUID, actingUserID string) error
}

type pointService struct {
	repo      PointRepository
	logger    *logrus.Logger
	publisher notifier.Publisher
}

func NewGeoPointService(repo PointRepository, logger *logrus.Logger, publisher notifier.Publisher) GeoPointService {
	return &pointService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreatePoint validates the input, binds the owner and persists the point.
func (s *pointService) CreatePoint(ctx context.Context, ownerID string, input CreatePointInput) (*models.GeoPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "point",
		"method":  "CreatePoint",
		"owner":   ownerID,
	})

	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		log.WithError(err).Warn("Rejected point with invalid coordinates")
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, newValidationError("type", "must be one of %v", models.PointTypes())
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	point := &models.GeoPoint{
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Type:        input.Type,
		Description: input.Description,
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(ctx, point); err != nil {
		log.WithError(err).Error("Failed to create point in repository")
		return nil, storageFailure("create point", err)
	}

	s.publish(ctx, notifier.ActionCreated, point)
	log.WithField("point_id", point.ID).Info("Point created successfully")
	return point, nil
}

// FindAll fetches the candidate set and applies the proximity filter over it.
func (s *pointService) FindAll(ctx context.Context, filter *ProximityFilter) ([]*models.GeoPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "point",
		"method":  "FindAll",
	})

	pred, err := buildFilter(filter)
	if err != nil {
		log.WithError(err).Warn("Rejected malformed proximity filter")
		return nil, err
	}

	points, err := s.repo.GetAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list points from repository")
		return nil, storageFailure("list points", err)
	}

	matched := applyFilter(points, pred)
	log.WithFields(logrus.Fields{"candidates": len(points), "matched": len(matched)}).Info("Points listed")
	return matched, nil
}

// FindByID returns a single point, serving from the cache when possible.
func (s *pointService) FindByID(ctx context.Context, id uuid.UUID) (*models.GeoPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "point",
		"method":   "FindByID",
		"point_id": id,
	})

	cached, err := s.repo.GetPointFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Point cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	point, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Point not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get point from repository")
		return nil, storageFailure("get point", err)
	}

	if err := s.repo.SetPointCache(ctx, point); err != nil {
		log.WithError(err).Warn("Failed to cache point")
	}
	return point, nil
}

// GetUserPoints returns the owner's points projected to GeoJSON. An owner
// with no points gets an empty collection, not an error.
func (s *pointService) GetUserPoints(ctx context.Context, ownerID string) (*UserPointsResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "point",
		"method":  "GetUserPoints",
		"owner":   ownerID,
	})

	points, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to list points by owner")
		return nil, storageFailure("list points by owner", err)
	}

	fc := geo.ToFeatureCollection(points)
	log.WithField("count", len(fc.Features)).Info("User points projected to GeoJSON")
	return &UserPointsResult{Points: fc, Count: len(fc.Features)}, nil
}

// GetGeoJSON projects every stored point to a GeoJSON FeatureCollection.
func (s *pointService) GetGeoJSON(ctx context.Context) (*geo.FeatureCollection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "point",
		"method":  "GetGeoJSON",
	})

	points, err := s.repo.GetAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list points from repository")
		return nil, storageFailure("list points", err)
	}

	return geo.ToFeatureCollection(points), nil
}

// UpdatePoint applies a partial update after the ownership check. Changed
// fields are re-validated against the same invariants as creation.
func (s *pointService) UpdatePoint(ctx context.Context, id uuid.UUID, actingUserID string, input UpdatePointInput) (*models.GeoPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "point",
		"method":   "UpdatePoint",
		"point_id": id,
		"acting":   actingUserID,
	})

	point, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update a non-existent point")
			return nil, err
		}
		log.WithError(err).Error("Failed to get point from repository")
		return nil, storageFailure("get point", err)
	}

	if err := checkOwnership(point, actingUserID); err != nil {
		log.Warn("Update rejected: acting user is not the owner")
		return nil, err
	}

	lat, lng := point.Latitude, point.Longitude
	if input.Latitude != nil {
		lat = *input.Latitude
	}
	if input.Longitude != nil {
		lng = *input.Longitude
	}
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, newValidationError("type", "must be one of %v", models.PointTypes())
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		point.Description = *input.Description
	}

	point.Latitude = lat
	point.Longitude = lng
	if input.Type != nil {
		point.Type = *input.Type
	}
	point.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, point); err != nil {
		if errors.Is(err, ErrNotFound) {
			// The record disappeared between fetch and update.
			return nil, err
		}
		log.WithError(err).Error("Failed to update point in repository")
		return nil, storageFailure("update point", err)
	}

	if err := s.repo.InvalidatePointCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate point cache")
	}

	s.publish(ctx, notifier.ActionUpdated, point)
	log.Info("Point updated successfully")
	return point, nil
}

// DeletePoint removes a point after the ownership check. Deletion is final.
func (s *pointService) DeletePoint(ctx context.Context, id uuid.UUID, actingUserID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "point",
		"method":   "DeletePoint",
		"point_id": id,
		"acting":   actingUserID,
	})

	point, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to delete a non-existent point")
			return err
		}
		log.WithError(err).Error("Failed to get point from repository")
		return storageFailure("get point", err)
	}

	if err := checkOwnership(point, actingUserID); err != nil {
		log.Warn("Delete rejected: acting user is not the owner")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		log.WithError(err).Error("Failed to delete point from repository")
		return storageFailure("delete point", err)
	}

	if err := s.repo.InvalidatePointCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate point cache")
	}

	s.publish(ctx, notifier.ActionDeleted, point)
	log.Info("Point deleted successfully")
	return nil
}

// publish enqueues a lifecycle event. Delivery is best-effort and never
// fails the originating operation.
func (s *pointService) publish(ctx context.Context, action notifier.Action, point *models.GeoPoint) {
	if s.publisher == nil {
		return
	}
	event := notifier.PointEvent{
		Action:    action,
		Point:     point,
		OwnerID:   point.OwnerID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).Warn("Failed to publish point event")
	}
}

func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return newValidationError("coordinates", "must be valid numbers")
	}
	if lat < -90 || lat > 90 {
		return newValidationError("latitude", "must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return newValidationError("longitude", "must be between -180 and 180")
	}
	return nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > models.MaxDescriptionLen {
		return newValidationError("description", "must not exceed %d characters", models.MaxDescriptionLen)
	}
	return nil
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
