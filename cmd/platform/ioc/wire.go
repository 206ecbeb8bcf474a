//go:build wireinject

package ioc

import (
	"gitee.com/flycash/newsletter-platform/internal/ioc"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"gitee.com/flycash/newsletter-platform/internal/service/recipient"
	"gitee.com/flycash/newsletter-platform/internal/service/sendlog"
	newsletterweb "gitee.com/flycash/newsletter-platform/internal/web/newsletter"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitDistributedLock,
		ioc.InitSendLocker,
		ioc.InitGoCache,
		ioc.InitIDGenerator,
		ioc.InitRetryExecutor,
	)
	contentSet = wire.NewSet(
		ioc.InitSelector,
		repository.NewArticleRepository,
		dao.NewArticleDAO,
	)
	recipientSet = wire.NewSet(
		recipient.NewResolver,
		repository.NewSubscriberRepository,
		dao.NewSubscriptionDAO,
	)
	sendLogSet = wire.NewSet(
		sendlog.NewRecorder,
		repository.NewSendLogRepository,
		dao.NewSendLogDAO,
	)
	scheduleSet = wire.NewSet(
		ioc.InitScheduleConfigRepository,
		dao.NewNewsletterConfigDAO,
	)
	dispatchSet = wire.NewSet(
		ioc.InitDispatcher,
		ioc.InitTransport,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		BaseSet,
		contentSet,
		recipientSet,
		sendLogSet,
		scheduleSet,
		dispatchSet,

		ioc.InitNewsletterConfig,
		ioc.InitNewsletterService,

		ioc.InitAuthenticator,
		newsletterweb.NewHandler,
		ioc.InitWebServer,
		ioc.Crons,

		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
