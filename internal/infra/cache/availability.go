package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venuebook/internal/domain/slot"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisAvailabilityCache caches slot availability views per destination and
// date. Staleness is harmless: a stale "available" entry only lets the request
// through to the insert, where the occupancy constraint rejects it.
type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func slotsKey(destinationID uuid.UUID, date slot.Date) string {
	return fmt.Sprintf("availability:slots:%s:%s", destinationID, date)
}

func (c *RedisAvailabilityCache) GetSlots(ctx context.Context, destinationID uuid.UUID, date slot.Date) ([]queries.SlotAvailabilityView, bool, error) {
	payload, err := c.client.Get(ctx, slotsKey(destinationID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("availability cache get: %w", err)
	}

	var views []queries.SlotAvailabilityView
	if err := json.Unmarshal(payload, &views); err != nil {
		return nil, false, fmt.Errorf("availability cache decode: %w", err)
	}

	return views, true, nil
}

func (c *RedisAvailabilityCache) SetSlots(ctx context.Context, destinationID uuid.UUID, date slot.Date, views []queries.SlotAvailabilityView) error {
	payload, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("availability cache encode: %w", err)
	}

	if err := c.client.Set(ctx, slotsKey(destinationID, date), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("availability cache set: %w", err)
	}
	return nil
}

func (c *RedisAvailabilityCache) InvalidateSlots(ctx context.Context, destinationID uuid.UUID, date slot.Date) error {
	if err := c.client.Del(ctx, slotsKey(destinationID, date)).Err(); err != nil {
		return fmt.Errorf("availability cache invalidate: %w", err)
	}
	return nil
}

// NoopAvailabilityCache is used when caching is disabled; every read misses.
type NoopAvailabilityCache struct{}

func NewNoopAvailabilityCache() *NoopAvailabilityCache {
	return &NoopAvailabilityCache{}
}

func (NoopAvailabilityCache) GetSlots(context.Context, uuid.UUID, slot.Date) ([]queries.SlotAvailabilityView, bool, error) {
	return nil, false, nil
}

func (NoopAvailabilityCache) SetSlots(context.Context, uuid.UUID, slot.Date, []queries.SlotAvailabilityView) error {
	return nil
}

func (NoopAvailabilityCache) InvalidateSlots(context.Context, uuid.UUID, slot.Date) error {
	return nil
}
