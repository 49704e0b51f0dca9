// Package notifier queues point lifecycle events on Redis and delivers
// them to a configured webhook endpoint.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mgiraldoc/traffic_points_api/internal/models"
)

const eventQueueKey = "point_events"

// Action identifies what happened to a point.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// PointEvent is the payload delivered to webhook subscribers.
type PointEvent struct {
	Action    Action           `json:"action"`
	Point     *models.GeoPoint `json:"point"`
	OwnerID   string           `json:"owner_id"`
	Timestamp time.Time        `json:"timestamp"`
}

// Publisher enqueues point events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event PointEvent) error
}

// RedisPublisher implements Publisher on a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the left end of the queue.
func (p *RedisPublisher) Publish(ctx context.Context, event PointEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal point event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish point event to Redis: %w", err)
	}
	return nil
}
