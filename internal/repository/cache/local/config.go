package local

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 3 * time.Second

type Cache struct {
	c      *ca.Cache
	ttl    time.Duration
	logger *elog.Component
}

// NewCache ttl 到期后回源，保证数据库里改过的配置最终能生效
func NewCache(c *ca.Cache, ttl time.Duration) *Cache {
	return &Cache{
		c:      c,
		ttl:    ttl,
		logger: elog.DefaultLogger,
	}
}

func (l *Cache) Get(_ context.Context, id int64) (domain.ScheduleConfig, error) {
	v, ok := l.c.Get(cache.ScheduleConfigKey(id))
	if !ok {
		return domain.ScheduleConfig{}, cache.ErrKeyNotFound
	}
	cfg, ok := v.(domain.ScheduleConfig)
	if !ok {
		return domain.ScheduleConfig{}, cache.ErrKeyNotFound
	}
	return cfg, nil
}

func (l *Cache) Set(_ context.Context, id int64, cfg domain.ScheduleConfig) error {
	l.c.Set(cache.ScheduleConfigKey(id), cfg, l.ttl)
	return nil
}

func (l *Cache) Del(_ context.Context, id int64) error {
	l.c.Delete(cache.ScheduleConfigKey(id))
	return nil
}

// Watch 监听 redis 键空间事件，redis 里的配置变化后同步到本地
// 需要 redis 开启 notify-keyspace-events，ctx 取消后退出
func (l *Cache) Watch(ctx context.Context, rdb *redis.Client) {
	pubsub := rdb.PSubscribe(ctx, "__keyspace@*__:"+cache.ScheduleConfigPrefix+":*")
	defer pubsub.Close()
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			// __keyspace@0__:newsletter:schedule:1
			_, key, found := strings.Cut(msg.Channel, "__:")
			if !found || key == "" {
				l.logger.Error("监听redis键不正确", elog.String("channel", msg.Channel))
				continue
			}
			rctx, cancel := context.WithTimeout(ctx, defaultTimeout)
			l.handleChange(rctx, rdb, key, msg.Payload)
			cancel()
		}
	}
}

func (l *Cache) handleChange(ctx context.Context, rdb *redis.Client, key string, event string) {
	switch event {
	case "set":
		val, err := rdb.Get(ctx, key).Result()
		if err != nil {
			l.logger.Error("订阅完获取键失败", elog.String("key", key), elog.FieldErr(err))
			l.c.Delete(key)
			return
		}
		var cfg domain.ScheduleConfig
		if err = json.Unmarshal([]byte(val), &cfg); err != nil {
			l.logger.Error("反序列化失败", elog.String("key", key), elog.String("val", val))
			l.c.Delete(key)
			return
		}
		l.c.Set(key, cfg, l.ttl)
	case "del", "expired":
		l.c.Delete(key)
	}
}
