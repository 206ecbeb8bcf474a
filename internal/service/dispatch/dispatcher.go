package dispatch

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/service/transport"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrNotAttempted 派发超时后没有发起的收件人使用这个错误信息
const ErrNotAttempted = "dispatch timeout: not attempted"

// ErrAbortedPrefix 调用方取消时，没有发起的收件人的错误信息前缀，后面跟取消原因
const ErrAbortedPrefix = "dispatch aborted: not attempted: "

const (
	DefaultConcurrency = 10
	DefaultTimeout     = 5 * time.Minute
)

type Config struct {
	SiteName string `yaml:"siteName"`
	SiteURL  string `yaml:"siteURL"`
	// Concurrency 同时在发送的邮件数
	Concurrency int `yaml:"concurrency"`
	// RatePerSecond 每秒最多发起的邮件数，<= 0 表示不限速
	RatePerSecond float64 `yaml:"ratePerSecond"`
	Burst         int     `yaml:"burst"`
	// Timeout 超时之后不再发起新的发送，已经发起的会继续完成
	Timeout time.Duration `yaml:"timeout"`
}

//go:generate mockgen -source=./dispatcher.go -destination=./mocks/dispatcher.mock.go -package=dispatchmocks -typed Dispatcher
type Dispatcher interface {
	// Dispatch 每个订阅者都会有一个结果，单个失败不影响其他订阅者
	Dispatch(ctx context.Context, articles []domain.ArticleSummary, subscribers []domain.Subscriber) (domain.DispatchResult, error)
}

type dispatcher struct {
	transport transport.Transport
	renderer  *Renderer
	cfg       Config
	limiter   *rate.Limiter
	logger    *elog.Component
}

func NewDispatcher(t transport.Transport, cfg Config) Dispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return &dispatcher{
		transport: t,
		renderer:  NewRenderer(cfg.SiteName, cfg.SiteURL),
		cfg:       cfg,
		limiter:   limiter,
		logger:    elog.DefaultLogger,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, articles []domain.ArticleSummary, subscribers []domain.Subscriber) (domain.DispatchResult, error) {
	if len(articles) == 0 {
		return domain.DispatchResult{}, fmt.Errorf("%w: 没有可发送的文章", errs.ErrInvalidParameter)
	}
	subject := Subject(d.cfg.SiteName, articles)
	outcomes := make([]domain.DeliveryOutcome, len(subscribers))

	// issueCtx 只控制是否发起新的发送，发送本身用的是 ctx
	issueCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()
	sem := semaphore.NewWeighted(int64(d.cfg.Concurrency))
	var eg errgroup.Group
	issued := 0
	for i := range subscribers {
		if !d.acquire(issueCtx, sem) {
			break
		}
		issued++
		sub := subscribers[i]
		idx := i
		eg.Go(func() error {
			defer sem.Release(1)
			outcomes[idx] = d.sendOne(ctx, subject, articles, sub)
			return nil
		})
	}
	// sendOne 不返回错误
	_ = eg.Wait()

	if issued < len(subscribers) {
		reason := ErrNotAttempted
		if cause := context.Cause(ctx); cause != nil {
			reason = ErrAbortedPrefix + cause.Error()
		}
		d.logger.Warn("派发中止，剩余收件人未发送",
			elog.Int("issued", issued),
			elog.Int("total", len(subscribers)),
			elog.String("reason", reason))
		for i := issued; i < len(subscribers); i++ {
			outcomes[i] = domain.DeliveryOutcome{
				Email:     subscribers[i].Email,
				Success:   false,
				Error:     reason,
				Attempted: false,
			}
		}
	}
	return reduce(subject, outcomes), nil
}

func (d *dispatcher) acquire(ctx context.Context, sem *semaphore.Weighted) bool {
	if ctx.Err() != nil {
		return false
	}
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return false
		}
	}
	return sem.Acquire(ctx, 1) == nil
}

func (d *dispatcher) sendOne(ctx context.Context, subject string, articles []domain.ArticleSummary, sub domain.Subscriber) (outcome domain.DeliveryOutcome) {
	outcome = domain.DeliveryOutcome{Email: sub.Email, Attempted: true}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("发送邮件时发生 panic",
				elog.String("email", sub.Email),
				elog.Any("panic", r))
			outcome = domain.DeliveryOutcome{
				Email:     sub.Email,
				Success:   false,
				Error:     fmt.Sprintf("panic: %v", r),
				Attempted: true,
			}
		}
	}()
	msg, err := d.renderer.Render(subject, articles, sub)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	receipt, err := d.transport.Send(ctx, msg)
	if err != nil {
		d.logger.Warn("发送邮件失败", elog.String("email", sub.Email), elog.FieldErr(err))
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Success = true
	outcome.MessageID = receipt.MessageID
	outcome.Simulated = receipt.Simulated
	return outcome
}

func reduce(subject string, outcomes []domain.DeliveryOutcome) domain.DispatchResult {
	res := domain.DispatchResult{
		Subject:  subject,
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		if o.Success {
			res.SuccessCount++
		} else {
			res.ErrorCount++
		}
		if o.Simulated {
			res.Simulated = true
		}
	}
	return res
}
