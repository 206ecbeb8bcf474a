package lock

import "context"

// NoopLocker 单实例部署时使用，不做互斥
type NoopLocker struct{}

func NewNoopLocker() NoopLocker {
	return NoopLocker{}
}

func (NoopLocker) Acquire(context.Context, string) (Lease, error) {
	return noopLease{}, nil
}

type noopLease struct{}

func (noopLease) Release(context.Context) error {
	return nil
}
