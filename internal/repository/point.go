package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mgiraldoc/traffic_points_api/internal/models"
	"github.com/mgiraldoc/traffic_points_api/internal/service"
)

const pointCacheTTL = 5 * time.Minute

type PointRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewPointRepository(db *pgxpool.Pool, redisClient *redis.Client) service.PointRepository {
	return &PointRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new geo point and fills the generated id and timestamps.
func (r *PointRepository) Create(ctx context.Context, point *models.GeoPoint) error {
	query := `
		INSERT INTO geo_points (latitude, longitude, type, description, owner_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		point.Latitude,
		point.Longitude,
		point.Type,
		point.Description,
		point.OwnerID,
	).Scan(&point.ID, &point.CreatedAt, &point.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create geo point: %w", err)
	}
	return nil
}

const pointColumns = `
	id,
	latitude,
	longitude,
	type,
	description,
	owner_id,
	created_at,
	updated_at
`

// GetByID returns a point by its UUID.
func (r *PointRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GeoPoint, error) {
	point := &models.GeoPoint{}
	query := `SELECT ` + pointColumns + ` FROM geo_points WHERE id = $1;`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&point.ID,
		&point.Latitude,
		&point.Longitude,
		&point.Type,
		&point.Description,
		&point.OwnerID,
		&point.CreatedAt,
		&point.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("geo point %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get geo point by id: %w", err)
	}
	return point, nil
}

// GetAll returns every stored point, newest first.
func (r *PointRepository) GetAll(ctx context.Context) ([]*models.GeoPoint, error) {
	query := `SELECT ` + pointColumns + ` FROM geo_points ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list geo points: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// GetByOwner returns the points created by ownerID, newest first.
func (r *PointRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.GeoPoint, error) {
	query := `SELECT ` + pointColumns + ` FROM geo_points WHERE owner_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list geo points by owner: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// Update persists the mutable fields of point. The owner column is never
// touched.
func (r *PointRepository) Update(ctx context.Context, point *models.GeoPoint) error {
	query := `
		UPDATE geo_points SET
			latitude = $1,
			longitude = $2,
			type = $3,
			description = $4,
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		point.Latitude,
		point.Longitude,
		point.Type,
		point.Description,
		point.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update geo point: %w", err)
	}

	// No rows touched means the point vanished between fetch and update.
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geo point %s: %w", point.ID, service.ErrNotFound)
	}
	return nil
}

// Delete removes the point permanently.
func (r *PointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM geo_points WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete geo point: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geo point %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func scanPoints(rows pgx.Rows) ([]*models.GeoPoint, error) {
	points := make([]*models.GeoPoint, 0)
	for rows.Next() {
		point := &models.GeoPoint{}
		err := rows.Scan(
			&point.ID,
			&point.Latitude,
			&point.Longitude,
			&point.Type,
			&point.Description,
			&point.OwnerID,
			&point.CreatedAt,
			&point.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geo point row: %w", err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating geo point rows: %w", err)
	}
	return points, nil
}

// GetPointFromCache tries to load a point from Redis. A cache miss returns
// (nil, nil).
func (r *PointRepository) GetPointFromCache(ctx context.Context, id uuid.UUID) (*models.GeoPoint, error) {
	key := fmt.Sprintf("point:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get point from cache: %w", err)
	}

	point := &models.GeoPoint{}
	if err := json.Unmarshal(val, point); err != nil {
		return nil, fmt.Errorf("failed to unmarshal point from cache: %w", err)
	}
	return point, nil
}

// SetPointCache stores a point in Redis with a short TTL.
func (r *PointRepository) SetPointCache(ctx context.Context, point *models.GeoPoint) error {
	key := fmt.Sprintf("point:%s", point.ID.String())
	val, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("failed to marshal point for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, pointCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set point in cache: %w", err)
	}
	return nil
}

// InvalidatePointCache drops a point from the Redis cache.
func (r *PointRepository) InvalidatePointCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("point:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate point cache: %w", err)
	}
	return nil
}
