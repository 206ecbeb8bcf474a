package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/repository/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewCache(rdb redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = cache.DefaultExpiredTime
	}
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *Cache) Del(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, cache.ScheduleConfigKey(id)).Err()
}

func (c *Cache) Get(ctx context.Context, id int64) (domain.ScheduleConfig, error) {
	val, err := c.rdb.Get(ctx, cache.ScheduleConfigKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ScheduleConfig{}, cache.ErrKeyNotFound
		}
		return domain.ScheduleConfig{}, fmt.Errorf("failed to get schedule config from redis %w", err)
	}
	var cfg domain.ScheduleConfig
	err = json.Unmarshal([]byte(val), &cfg)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("failed to unmarshal schedule config %w", err)
	}
	return cfg, nil
}

func (c *Cache) Set(ctx context.Context, id int64, cfg domain.ScheduleConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule config %w", err)
	}
	err = c.rdb.Set(ctx, cache.ScheduleConfigKey(id), data, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set schedule config to redis %w", err)
	}
	return nil
}
