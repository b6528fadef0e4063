package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultAvailabilityTTL = 30 * time.Second

	// versionTTL only has to outlive a single count query.
	versionTTL = 24 * time.Hour
)

// RedisAvailabilityCache keeps short-lived availability snapshots for display. Every
// invalidation bumps a per-performance version, and a snapshot is only written when
// the version it was computed under is still current.
type RedisAvailabilityCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client redis.UniversalClient, ttl time.Duration) *RedisAvailabilityCache {
	if ttl <= 0 {
		ttl = DefaultAvailabilityTTL
	}

	return &RedisAvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns nil without an error on a cache miss.
func (c *RedisAvailabilityCache) Get(ctx context.Context, performanceID int) (*domain.Availability, error) {
	data, err := c.client.Get(ctx, AvailabilityKey(performanceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	var availability domain.Availability

	err = json.Unmarshal(data, &availability)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached availability: %w", err)
	}

	return &availability, nil
}

// Version returns the invalidation count of the performance, zero if it was never invalidated.
func (c *RedisAvailabilityCache) Version(ctx context.Context, performanceID int) (int64, error) {
	version, err := c.client.Get(ctx, availabilityVersionKey(performanceID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return version, nil
}

// Set stores the snapshot unless the performance was invalidated after version was read.
// A skipped write is not an error.
func (c *RedisAvailabilityCache) Set(ctx context.Context, availability domain.Availability, version int64) error {
	data, err := json.Marshal(availability)
	if err != nil {
		return err
	}

	versionKey := availabilityVersionKey(availability.PerformanceID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, AvailabilityKey(availability.PerformanceID), data, c.ttl)
			return nil
		})

		return err
	}, versionKey)

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}

	return err
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, performanceID int) error {
	versionKey := availabilityVersionKey(performanceID)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, versionTTL)
		pipe.Del(ctx, AvailabilityKey(performanceID))
		return nil
	})

	return err
}

func AvailabilityKey(performanceID int) string {
	return fmt.Sprintf("availability:%d", performanceID)
}

func availabilityVersionKey(performanceID int) string {
	return fmt.Sprintf("availability:%d:version", performanceID)
}
