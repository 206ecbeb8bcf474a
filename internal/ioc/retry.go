package ioc

import (
	"errors"

	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/pkg/retry"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitRetryExecutor() *retry.Executor {
	cfg := retry.DefaultConfig()
	if econf.Get("newsletter.retry") != nil {
		cfg = retry.Config{}
		if err := econf.UnmarshalKey("newsletter.retry", &cfg); err != nil {
			panic(err)
		}
	}
	executor, err := retry.NewExecutor(cfg)
	if err != nil {
		panic(err)
	}
	// 数据不存在重试也没有用
	return executor.WithPermanent(func(err error) bool {
		return errors.Is(err, errs.ErrConfigNotFound) ||
			errors.Is(err, errs.ErrInvalidParameter) ||
			errors.Is(err, egorm.ErrRecordNotFound)
	})
}
