package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

// DBLocker 利用 newsletter_send_locks 的唯一索引实现互斥，没有 redis 时使用
type DBLocker struct {
	dao        dao.SendLockDAO
	expiration time.Duration
	now        func() time.Time
	logger     *elog.Component
}

func NewDBLocker(lockDAO dao.SendLockDAO, expiration time.Duration) *DBLocker {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &DBLocker{
		dao:        lockDAO,
		expiration: expiration,
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}

func (d *DBLocker) Acquire(ctx context.Context, key string) (Lease, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("生成锁持有者失败 %w", err)
	}
	owner := id.String()
	now := d.now()
	expireAt := now.Add(d.expiration).UnixMilli()
	err = d.dao.Insert(ctx, key, owner, expireAt)
	if errors.Is(err, dao.ErrDuplicateLock) {
		// 上一次持有者可能已经崩溃，过期的锁清理掉再抢一次
		n, er := d.dao.DeleteExpired(ctx, key, now.UnixMilli())
		if er != nil {
			return nil, fmt.Errorf("清理过期派发锁失败 %w", er)
		}
		if n == 0 {
			return nil, errs.ErrDispatchInProgress
		}
		d.logger.Warn("清理了过期的派发锁", elog.String("key", key))
		err = d.dao.Insert(ctx, key, owner, expireAt)
		if errors.Is(err, dao.ErrDuplicateLock) {
			return nil, errs.ErrDispatchInProgress
		}
	}
	if err != nil {
		return nil, fmt.Errorf("获取派发锁失败 %w", err)
	}
	return &dbLease{dao: d.dao, key: key, owner: owner, logger: d.logger}, nil
}

type dbLease struct {
	dao    dao.SendLockDAO
	key    string
	owner  string
	logger *elog.Component
}

func (l *dbLease) Release(ctx context.Context) error {
	unCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
	defer cancel()
	n, err := l.dao.Delete(unCtx, l.key, l.owner)
	if err != nil {
		l.logger.Error("释放派发锁失败", elog.String("key", l.key), elog.FieldErr(err))
		return err
	}
	if n == 0 {
		// 锁过期后被别人抢走了
		return errs.ErrLockNotHeld
	}
	return nil
}
