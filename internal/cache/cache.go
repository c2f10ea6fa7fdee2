// Package cache provides a short-TTL Redis cache for aggregated alert sets,
// keyed by rounded coordinate, radius, and query scope.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/hazard"
)

// defaultTTL keeps entries short-lived; hazard data goes stale fast.
const defaultTTL = 5 * time.Minute

// Cache wraps a Redis client with typed get/set/delete for alert sets.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with the default 5-minute TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// key rounds the coordinate to two decimals (roughly 1 km) so that nearby
// queries share an entry.
func key(c geo.Coordinate, radiusKm float64, global bool) string {
	return fmt.Sprintf("alerts:%.2f:%.2f:%.0f:%t", c.Lat, c.Lon, radiusKm, global)
}

// Get retrieves a cached alert set. Returns nil, nil on a cache miss.
func (c *Cache) Get(ctx context.Context, center geo.Coordinate, radiusKm float64, global bool) (*hazard.AlertSet, error) {
	k := key(center, radiusKm, global)
	val, err := c.client.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get %s: %w", k, err)
	}

	var set hazard.AlertSet
	if err := json.Unmarshal([]byte(val), &set); err != nil {
		return nil, fmt.Errorf("unmarshaling cached alerts %s: %w", k, err)
	}
	return &set, nil
}

// Set stores an alert set with the configured TTL. A nil set is a no-op.
func (c *Cache) Set(ctx context.Context, center geo.Coordinate, radiusKm float64, global bool, set *hazard.AlertSet) error {
	if set == nil {
		return nil
	}

	k := key(center, radiusKm, global)
	b, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshaling alerts %s: %w", k, err)
	}

	if err := c.client.Set(ctx, k, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", k, err)
	}
	return nil
}

// Delete removes the cached entry for the given query.
func (c *Cache) Delete(ctx context.Context, center geo.Coordinate, radiusKm float64, global bool) error {
	k := key(center, radiusKm, global)
	if err := c.client.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", k, err)
	}
	return nil
}
