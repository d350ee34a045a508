package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/northlightstudio/studio-booking/internal/models"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

const dayKeyPrefix = "day:"

// DayCache is an optional read-through cache for Day lookups. A nil
// *DayCache is a valid no-op cache, so callers never branch on whether
// Redis is configured.
type DayCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

func NewDayCache(addr, password string, ttl time.Duration, logger *logging.Logger) *DayCache {
	if addr == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	return &DayCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// NewDayCacheWithClient wires an existing client; used by tests.
func NewDayCacheWithClient(rdb *redis.Client, ttl time.Duration, logger *logging.Logger) *DayCache {
	if logger == nil {
		logger = logging.Default()
	}
	return &DayCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *DayCache) Get(ctx context.Context, date string) (*models.Day, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, dayKeyPrefix+date).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("day cache read failed", "date", date, "error", err)
		}
		return nil, false
	}

	var day models.Day
	if err := json.Unmarshal([]byte(raw), &day); err != nil {
		c.logger.Warn("day cache entry corrupt, dropping", "date", date, "error", err)
		c.Invalidate(ctx, date)
		return nil, false
	}

	return &day, true
}

func (c *DayCache) Set(ctx context.Context, date string, day *models.Day) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(day)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, dayKeyPrefix+date, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("day cache write failed", "date", date, "error", err)
	}
}

func (c *DayCache) Invalidate(ctx context.Context, date string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, dayKeyPrefix+date).Err(); err != nil {
		c.logger.Warn("day cache invalidate failed", "date", date, "error", err)
	}
}
