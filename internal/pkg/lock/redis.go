package lock

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const defaultTimeout = 3 * time.Second

// RedisLocker 基于 dlock 的分布式锁
type RedisLocker struct {
	dclient    dlock.Client
	expiration time.Duration
	logger     *elog.Component
}

func NewRedisLocker(dclient dlock.Client, expiration time.Duration) *RedisLocker {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &RedisLocker{
		dclient:    dclient,
		expiration: expiration,
		logger:     elog.DefaultLogger,
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) (Lease, error) {
	lock, err := r.dclient.NewLock(ctx, key, r.expiration)
	if err != nil {
		return nil, fmt.Errorf("初始化分布式锁失败 %w", err)
	}
	lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	// 不区分锁被人持有和系统错误，都不能继续派发
	if err = lock.Lock(lockCtx); err != nil {
		r.logger.Warn("没有抢到派发锁", elog.String("key", key), elog.FieldErr(err))
		return nil, fmt.Errorf("%w: %w", errs.ErrDispatchInProgress, err)
	}
	return &redisLease{lock: lock, key: key, logger: r.logger}, nil
}

type redisLease struct {
	lock   dlock.Lock
	key    string
	logger *elog.Component
}

func (l *redisLease) Release(ctx context.Context) error {
	// ctx 可能已经被取消了，释放锁要摆脱它的控制
	unCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
	defer cancel()
	if err := l.lock.Unlock(unCtx); err != nil {
		l.logger.Error("释放派发锁失败", elog.String("key", l.key), elog.FieldErr(err))
		return err
	}
	return nil
}
