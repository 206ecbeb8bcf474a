package ioc

import (
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/pkg/lock"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	"github.com/redis/go-redis/v9"
)

func InitDistributedLock(rdb *redis.Client) dlock.Client {
	return dlockRedis.NewClient(rdb)
}

// InitSendLocker 按 newsletter.lock.type 选择派发锁，默认 redis
func InitSendLocker(dclient dlock.Client, db *egorm.Component) lock.SendLocker {
	type Config struct {
		Type       string        `yaml:"type"`
		Expiration time.Duration `yaml:"expiration"`
	}
	cfg := Config{Type: "redis", Expiration: lock.DefaultExpiration}
	if err := econf.UnmarshalKey("newsletter.lock", &cfg); err != nil {
		panic(err)
	}
	switch cfg.Type {
	case "redis":
		return lock.NewRedisLocker(dclient, cfg.Expiration)
	case "db":
		return lock.NewDBLocker(dao.NewSendLockDAO(db), cfg.Expiration)
	case "none":
		elog.DefaultLogger.Warn("未启用派发锁，多个实例可能重复发送")
		return lock.NewNoopLocker()
	default:
		panic(fmt.Errorf("未知的派发锁类型 %s", cfg.Type))
	}
}
