package lock

import (
	"context"
	"time"
)

// DefaultExpiration 锁的过期时间要覆盖派发超时加上记录发送日志的时间
const DefaultExpiration = 10 * time.Minute

//go:generate mockgen -source=./types.go -destination=./mocks/lock.mock.go -package=lockmocks -typed SendLocker,Lease
type SendLocker interface {
	// Acquire 锁被其他调用持有时返回 errs.ErrDispatchInProgress
	Acquire(ctx context.Context, key string) (Lease, error)
}

// Lease 已经拿到的锁
type Lease interface {
	Release(ctx context.Context) error
}

// SendKey 按本地日期生成锁的 key
func SendKey(localDate time.Time) string {
	return "newsletter:send:" + localDate.Format(time.DateOnly)
}
