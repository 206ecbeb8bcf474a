package newsletter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/pkg/lock"
	"gitee.com/flycash/newsletter-platform/internal/pkg/retry"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"gitee.com/flycash/newsletter-platform/internal/service/content"
	"gitee.com/flycash/newsletter-platform/internal/service/dispatch"
	"gitee.com/flycash/newsletter-platform/internal/service/recipient"
	"gitee.com/flycash/newsletter-platform/internal/service/schedule"
	"gitee.com/flycash/newsletter-platform/internal/service/sendlog"
	"github.com/gotomicro/ego/core/elog"
)

type Config struct {
	// SkipIfSentToday 定时模式下，当天已经发送过就不再发送
	SkipIfSentToday bool `yaml:"skipIfSentToday"`
}

type service struct {
	cfg        Config
	configRepo repository.ScheduleConfigRepository
	selector   content.Selector
	resolver   recipient.Resolver
	dispatcher dispatch.Dispatcher
	recorder   sendlog.Recorder
	locker     lock.SendLocker
	retry      *retry.Executor
	now        func() time.Time
	logger     *elog.Component
}

func NewService(
	cfg Config,
	configRepo repository.ScheduleConfigRepository,
	selector content.Selector,
	resolver recipient.Resolver,
	dispatcher dispatch.Dispatcher,
	recorder sendlog.Recorder,
	locker lock.SendLocker,
	executor *retry.Executor,
) Service {
	return &service{
		cfg:        cfg,
		configRepo: configRepo,
		selector:   selector,
		resolver:   resolver,
		dispatcher: dispatcher,
		recorder:   recorder,
		locker:     locker,
		retry:      executor,
		now:        time.Now,
		logger:     elog.DefaultLogger.With(elog.String("component", "newsletter")),
	}
}

func (s *service) Run(ctx context.Context, mode domain.InvocationMode) (Result, error) {
	now := s.now()
	res := Result{State: domain.StateIdle, Mode: mode}

	evaluator, err := s.loadEvaluator(ctx)
	if err != nil {
		return res, err
	}
	loc := evaluator.Location()

	res.State = domain.StateEvaluating
	if !mode.IsOverride() {
		decision := evaluator.Evaluate(now)
		if !decision.IsDue() {
			next := decision.NextScheduledTime
			res.NextScheduledTime = &next
			return s.skip(res, domain.StateSkipped, domain.SkipReasonNotDue,
				"Not scheduled to send at this time"), nil
		}
		if s.cfg.SkipIfSentToday {
			start, _ := content.LocalDay(now, loc)
			sent, er := retry.Query(ctx, s.retry, "SentSince", func(ctx context.Context) (bool, error) {
				return s.recorder.SentSince(ctx, start)
			})
			if er != nil {
				return res, er
			}
			if sent {
				return s.skip(res, domain.StateSkipped, domain.SkipReasonAlreadySent,
					"Newsletter already sent today"), nil
			}
		}
	}

	articles, err := s.selector.SelectArticles(ctx, mode, now, loc)
	if err != nil {
		return res, err
	}
	if len(articles) == 0 {
		return s.skip(res, domain.StateContentEmpty, domain.SkipReasonNoContent,
			"No articles to send"), nil
	}
	res.Articles = articles

	subscribers, err := s.resolver.LoadActiveSubscribers(ctx)
	if err != nil {
		return res, err
	}
	if len(subscribers) == 0 {
		return s.skip(res, domain.StateNoSubscribers, domain.SkipReasonNoSubscribers,
			"No active subscribers"), nil
	}
	res.SubscriberCount = len(subscribers)

	lease, err := s.locker.Acquire(ctx, lock.SendKey(now.In(loc)))
	if err != nil {
		return res, err
	}
	defer func() {
		if er := lease.Release(ctx); er != nil {
			s.logger.Warn("释放派发锁失败", elog.FieldErr(er))
		}
	}()

	res.State = domain.StateDispatching
	result, err := s.dispatcher.Dispatch(ctx, articles, subscribers)
	if err != nil {
		return res, err
	}
	res.Dispatch = result

	// 派发完成之后一定要记录
	record := s.recorder.Record(ctx, mode, result, domain.ArticleIDs(articles))
	res.SendLog = &record
	res.State = domain.StateRecorded

	s.logger.Info("简报发送完成",
		elog.String("mode", mode.String()),
		elog.Int("articles", len(articles)),
		elog.Int("subscribers", len(subscribers)),
		elog.Int("success", result.SuccessCount),
		elog.Int("failed", result.ErrorCount),
		elog.Any("simulated", result.Simulated))
	res.State = domain.StateDone
	res.Message = fmt.Sprintf("Newsletter sent to %d of %d subscribers", result.SuccessCount, len(subscribers))
	return res, nil
}

func (s *service) Schedule(ctx context.Context) (ScheduleView, error) {
	evaluator, err := s.loadEvaluator(ctx)
	if err != nil {
		return ScheduleView{}, err
	}
	return ScheduleView{
		Config:   evaluator.Config(),
		Decision: evaluator.Evaluate(s.now()),
	}, nil
}

func (s *service) SendLogs(ctx context.Context, limit int) ([]domain.SendLogRecord, error) {
	return retry.Query(ctx, s.retry, "ListSendLogs", func(ctx context.Context) ([]domain.SendLogRecord, error) {
		return s.recorder.Recent(ctx, limit)
	})
}

func (s *service) loadEvaluator(ctx context.Context) (*schedule.Evaluator, error) {
	cfg, err := retry.Query(ctx, s.retry, "GetScheduleConfig", s.configRepo.Get)
	if err != nil {
		if errors.Is(err, errs.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
		}
		return nil, err
	}
	evaluator, err := schedule.NewEvaluator(cfg)
	if err != nil {
		s.logger.Error("定时配置无效", elog.Any("config", cfg), elog.FieldErr(err))
		return nil, err
	}
	return evaluator, nil
}

func (s *service) skip(res Result, state domain.PipelineState, reason domain.SkipReason, msg string) Result {
	res.State = state
	res.Skipped = true
	res.Reason = reason
	res.Message = msg
	s.logger.Info("跳过简报发送",
		elog.String("mode", res.Mode.String()),
		elog.String("reason", string(reason)))
	return res
}
