package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stats is the per-user library summary the service computes and the
// cache stores. TotalOwned deliberately excludes the wishlist.
type Stats struct {
	TotalOwned   int64 `json:"total_owned"`
	BooksRead    int64 `json:"books_read"`
	BooksReading int64 `json:"books_reading"`
	Wishlist     int64 `json:"wishlist"`
	ActiveLoans  int64 `json:"active_loans"`
}

// StatsCache is a read-through redis cache for library stats. A nil
// receiver or nil client degrades to a no-op so the service runs without
// redis (and tests need no redis at all).
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache connects to redis and verifies the connection.
func NewStatsCache(addr, password string, ttl time.Duration) (*StatsCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &StatsCache{client: rdb, ttl: ttl}, nil
}

// NewDisabledStatsCache returns a cache whose operations all no-op.
func NewDisabledStatsCache() *StatsCache {
	return &StatsCache{}
}

func statsKey(userID string) string {
	return fmt.Sprintf("stats:user:%s", userID)
}

// Get returns the cached stats for a user, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, userID string) (*Stats, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats for a user with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, userID string, stats *Stats) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, statsKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}

// Invalidate drops a user's cached stats after a shelf or loan mutation.
func (c *StatsCache) Invalidate(ctx context.Context, userID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		return fmt.Errorf("stats cache invalidate: %w", err)
	}
	return nil
}
