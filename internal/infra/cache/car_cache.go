package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const carKeyPrefix = "catalog:car:"

// CarCache is a best-effort read-through cache in front of the catalog.
// Any Redis failure degrades to a miss; the caller falls back to the
// database.
type CarCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCarCache(client *redis.Client, ttl time.Duration) *CarCache {
	return &CarCache{client: client, ttl: ttl}
}

func (c *CarCache) Get(ctx context.Context, carID uuid.UUID) (*shared.CarSnapshot, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, carKeyPrefix+carID.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("car cache read failed", "car_id", carID, "error", err)
		}
		return nil, false
	}

	var snap shared.CarSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("car cache entry corrupt, dropping", "car_id", carID, "error", err)
		c.client.Del(ctx, carKeyPrefix+carID.String())
		return nil, false
	}

	return &snap, true
}

func (c *CarCache) Set(ctx context.Context, snap *shared.CarSnapshot) {
	if c.client == nil || snap == nil {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, carKeyPrefix+snap.ID.String(), data, c.ttl).Err(); err != nil {
		slog.Warn("car cache write failed", "car_id", snap.ID, "error", err)
	}
}
