package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// The leaderboard is always derived from the current votes; Redis only holds
// a short-lived copy that is dropped on every write.
const (
	leaderboardKey = "results:leaderboard"
	leaderboardTTL = 5 * time.Minute
)

// CacheService provides a Redis cache-aside layer for the computed
// leaderboard. Writes to votes or comments invalidate it.
type CacheService struct {
	rdb *redis.Client

	// Optional observers for cache hits/misses, wired to Prometheus
	// counters at startup.
	OnHit  func()
	OnMiss func()
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and all
// operations become no-ops.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetLeaderboard retrieves the cached leaderboard payload. Returns nil when
// not cached or the cache is disabled.
func (c *CacheService) GetLeaderboard(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		if c.OnMiss != nil {
			c.OnMiss()
		}
		return nil, nil
	}
	if err == nil && c.OnHit != nil {
		c.OnHit()
	}
	return data, err
}

// SetLeaderboard stores the computed leaderboard.
func (c *CacheService) SetLeaderboard(ctx context.Context, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, leaderboardKey, b, leaderboardTTL).Err()
}

// InvalidateLeaderboard drops the cached leaderboard after any vote or
// comment write. Failures are logged, never surfaced: the cache is
// best-effort and the next read recomputes from the database.
func (c *CacheService) InvalidateLeaderboard(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, leaderboardKey).Err(); err != nil {
		log.Warn().Err(err).Msg("cache: leaderboard invalidate failed")
	}
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
