package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/gotomicro/ego/core/elog"
)

// Executor 按照配置的策略重试读操作，重试耗尽后返回 errs.ErrPersistenceUnavailable
type Executor struct {
	cfg Config
	// 不需要重试的错误，例如记录不存在
	permanent func(err error) bool
	logger    *elog.Component
}

// NewExecutor 配置不合法时直接返回错误，避免运行期才发现
func NewExecutor(cfg Config) (*Executor, error) {
	if _, err := NewRetry(cfg); err != nil {
		return nil, err
	}
	return &Executor{
		cfg:       cfg,
		permanent: func(error) bool { return false },
		logger:    elog.DefaultLogger,
	}, nil
}

// WithPermanent 设置不需要重试的错误判定
func (e *Executor) WithPermanent(fn func(err error) bool) *Executor {
	e.permanent = fn
	return e
}

func (e *Executor) Do(ctx context.Context, biz string, fn func(ctx context.Context) error) error {
	strategy, err := NewRetry(e.cfg)
	if err != nil {
		return err
	}
	for {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if e.permanent(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			e.logger.Error("重试耗尽",
				elog.String("biz", biz),
				elog.FieldErr(err))
			return fmt.Errorf("%w: %s: %w", errs.ErrPersistenceUnavailable, biz, err)
		}
		e.logger.Warn("读取失败，准备重试",
			elog.String("biz", biz),
			elog.Any("interval", next),
			elog.FieldErr(err))
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %s: %w", errs.ErrPersistenceUnavailable, biz, ctx.Err())
		case <-timer.C:
		}
	}
}

// Query 带返回值的 Do
func Query[T any](ctx context.Context, e *Executor, biz string, fn func(ctx context.Context) (T, error)) (T, error) {
	var res T
	err := e.Do(ctx, biz, func(ctx context.Context) error {
		var er error
		res, er = fn(ctx)
		return er
	})
	return res, err
}
