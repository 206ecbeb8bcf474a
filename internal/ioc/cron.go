package ioc

import (
	"context"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/service/newsletter"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

// Crons cron.newsletter.enable 为 true 时在进程内按定时模式触发
// 是否真正发送仍由定时配置决定
func Crons(svc newsletter.Service) []ecron.Ecron {
	if !econf.GetBool("cron.newsletter.enable") {
		return nil
	}
	job := ecron.Load("cron.newsletter").Build(ecron.WithJob(func(ctx context.Context) error {
		res, err := svc.Run(ctx, domain.ScheduledMode())
		if err != nil {
			return err
		}
		elog.DefaultLogger.Info("定时触发简报",
			elog.String("state", string(res.State)),
			elog.String("reason", string(res.Reason)))
		return nil
	}))
	return []ecron.Ecron{job}
}
