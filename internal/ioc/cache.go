package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"gitee.com/flycash/newsletter-platform/internal/repository/cache"
	"gitee.com/flycash/newsletter-platform/internal/repository/cache/local"
	rediscache "gitee.com/flycash/newsletter-platform/internal/repository/cache/redis"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const defaultCleanupInterval = 10 * time.Minute

func InitGoCache() *ca.Cache {
	return ca.New(cache.DefaultExpiredTime, defaultCleanupInterval)
}

// InitScheduleConfigRepository newsletter.schedule 作为数据库里没有配置时的兜底
func InitScheduleConfigRepository(
	configDAO dao.NewsletterConfigDAO,
	goCache *ca.Cache,
	rdb *redis.Client,
) repository.ScheduleConfigRepository {
	type ScheduleConfig struct {
		Frequency        string `yaml:"frequency"`
		SendTime         string `yaml:"sendTime"`
		Timezone         string `yaml:"timezone"`
		Weekday          string `yaml:"weekday"`
		DayOfMonth       int    `yaml:"dayOfMonth"`
		ToleranceMinutes int    `yaml:"toleranceMinutes"`
	}
	type Config struct {
		ConfigID int64          `yaml:"configId"`
		CacheTTL time.Duration  `yaml:"cacheTTL"`
		Watch    bool           `yaml:"watch"`
		Schedule ScheduleConfig `yaml:"schedule"`
	}
	cfg := Config{ConfigID: 1, CacheTTL: cache.DefaultExpiredTime}
	if err := econf.UnmarshalKey("newsletter", &cfg); err != nil {
		panic(err)
	}

	localCache := local.NewCache(goCache, cfg.CacheTTL)
	if cfg.Watch {
		go localCache.Watch(context.Background(), rdb)
	}
	var fallback *domain.ScheduleConfig
	if cfg.Schedule.Frequency != "" {
		fallback = &domain.ScheduleConfig{
			Frequency:        domain.Frequency(cfg.Schedule.Frequency),
			SendTime:         cfg.Schedule.SendTime,
			Timezone:         cfg.Schedule.Timezone,
			Weekday:          cfg.Schedule.Weekday,
			DayOfMonth:       cfg.Schedule.DayOfMonth,
			ToleranceMinutes: cfg.Schedule.ToleranceMinutes,
		}
	}
	return repository.NewScheduleConfigRepository(cfg.ConfigID, fallback, configDAO,
		localCache, rediscache.NewCache(rdb, cfg.CacheTTL))
}
