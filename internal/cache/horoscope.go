package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/astrodaily/astrodaily/internal/model"
)

// Cache key prefix and TTL for the horoscope day cache.
const (
	horoscopeKeyPrefix = "horoscope:"

	// HoroscopeTTL matches the validity window of a day-cache entry.
	// Entries also carry their capture date, so TTL is belt-and-braces:
	// IsValid decides freshness, TTL bounds Redis memory.
	HoroscopeTTL = 24 * time.Hour
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetHoroscope retrieves the cached overlay for a sign.
// Returns ErrCacheMiss when no entry exists; expired or off-date
// entries are deleted and reported as a miss.
func (c *Cache) GetHoroscope(ctx context.Context, signID string, now time.Time) (*model.CachedHoroscope, error) {
	key := horoscopeKeyPrefix + signID

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var entry model.CachedHoroscope
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// Corrupt entry: drop it and treat as a miss.
		c.client.Del(ctx, key)
		return nil, ErrCacheMiss
	}

	if !entry.IsValid(now) {
		c.client.Del(ctx, key)
		return nil, ErrCacheMiss
	}

	return &entry, nil
}

// SetHoroscope stores an overlay for a sign, stamped with the current
// UTC date and capture time.
func (c *Cache) SetHoroscope(ctx context.Context, signID string, partial model.PartialHoroscope, now time.Time) error {
	entry := model.CachedHoroscope{
		Data:      partial,
		Timestamp: now.UnixMilli(),
		Date:      now.UTC().Format("2006-01-02"),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cached horoscope: %w", err)
	}

	if err := c.client.Set(ctx, horoscopeKeyPrefix+signID, raw, HoroscopeTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache horoscope: %w", err)
	}

	return nil
}

// DeleteHoroscope removes a sign's cached overlay.
func (c *Cache) DeleteHoroscope(ctx context.Context, signID string) error {
	if err := c.client.Del(ctx, horoscopeKeyPrefix+signID).Err(); err != nil {
		return fmt.Errorf("failed to delete cached horoscope: %w", err)
	}
	return nil
}
