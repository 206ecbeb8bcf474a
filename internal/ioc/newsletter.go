package ioc

import (
	"gitee.com/flycash/newsletter-platform/internal/pkg/lock"
	"gitee.com/flycash/newsletter-platform/internal/pkg/retry"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"gitee.com/flycash/newsletter-platform/internal/service/content"
	"gitee.com/flycash/newsletter-platform/internal/service/dispatch"
	"gitee.com/flycash/newsletter-platform/internal/service/newsletter"
	"gitee.com/flycash/newsletter-platform/internal/service/recipient"
	"gitee.com/flycash/newsletter-platform/internal/service/sendlog"
	"gitee.com/flycash/newsletter-platform/internal/service/transport"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

func InitNewsletterConfig() newsletter.Config {
	var cfg newsletter.Config
	if err := econf.UnmarshalKey("newsletter", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitDispatcher(t transport.Transport) dispatch.Dispatcher {
	var cfg dispatch.Config
	if err := econf.UnmarshalKey("newsletter.dispatch", &cfg); err != nil {
		panic(err)
	}
	return dispatch.NewDispatcher(t, cfg)
}

func InitSelector(repo repository.ArticleRepository, executor *retry.Executor) content.Selector {
	limit := econf.GetInt("newsletter.immediateLimit")
	if limit <= 0 {
		limit = content.DefaultImmediateLimit
	}
	return content.NewSelector(repo, executor, limit)
}

// InitNewsletterService 对外暴露的服务带上链路和指标
func InitNewsletterService(
	cfg newsletter.Config,
	configRepo repository.ScheduleConfigRepository,
	selector content.Selector,
	resolver recipient.Resolver,
	dispatcher dispatch.Dispatcher,
	recorder sendlog.Recorder,
	locker lock.SendLocker,
	executor *retry.Executor,
) newsletter.Service {
	svc := newsletter.NewService(cfg, configRepo, selector, resolver, dispatcher, recorder, locker, executor)
	return newsletter.NewObservabilityService(svc, prometheus.DefaultRegisterer)
}
