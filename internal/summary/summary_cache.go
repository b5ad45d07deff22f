package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-timesheet/internal/policy"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedClient memoizes weekly summaries per (tenant, week anchor). The
// cache lives here, with the caller of the pipeline, so the pure
// components stay referentially transparent. Redis failures degrade to a
// direct fetch.
type CachedClient struct {
	next   Client
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewCachedClient(next Client, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *CachedClient {
	l := zap.L().Named("summary.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.cache")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedClient{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (c *CachedClient) WeekSummary(ctx context.Context, tenantID, weekAnchor string) (policy.WeeklySummary, error) {
	key := cacheKey(tenantID, weekAnchor)

	if val, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var cached policy.WeeklySummary
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("corrupt cached summary, refetching", zap.String("key", key))
	}

	// Concurrent misses for the same week collapse into one upstream
	// fetch; the alert and list endpoints often race on it.
	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		summary, err := c.next.WeekSummary(ctx, tenantID, weekAnchor)
		if err != nil {
			return nil, err
		}

		if payload, err := json.Marshal(summary); err == nil {
			if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				c.logger.Warn("cache weekly summary failed", zap.Error(err))
			}
		}

		return summary, nil
	})
	if err != nil {
		return policy.WeeklySummary{}, err
	}

	return v.(policy.WeeklySummary), nil
}

func cacheKey(tenantID, weekAnchor string) string {
	return fmt.Sprintf("wksum:%s:%s", tenantID, weekAnchor)
}
