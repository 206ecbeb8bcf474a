package recipient

import (
	"context"
	"strings"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/pkg/retry"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./resolver.go -destination=./mocks/resolver.mock.go -package=recipientmocks -typed Resolver
type Resolver interface {
	// LoadActiveSubscribers 只读，不修改订阅
	LoadActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}

type resolver struct {
	repo   repository.SubscriberRepository
	retry  *retry.Executor
	logger *elog.Component
}

func NewResolver(repo repository.SubscriberRepository, executor *retry.Executor) Resolver {
	return &resolver{
		repo:   repo,
		retry:  executor,
		logger: elog.DefaultLogger,
	}
}

func (r *resolver) LoadActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	subs, err := retry.Query(ctx, r.retry, "FindActiveSubscribers", r.repo.FindActive)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Subscriber, 0, len(subs))
	seen := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		if !sub.IsActive {
			continue
		}
		email := strings.TrimSpace(sub.Email)
		if email == "" {
			r.logger.Warn("订阅缺少邮箱，忽略", elog.Int64("subscriptionId", sub.SubscriptionID))
			continue
		}
		key := strings.ToLower(email)
		if _, ok := seen[key]; ok {
			r.logger.Warn("重复的订阅邮箱，忽略",
				elog.Int64("subscriptionId", sub.SubscriptionID),
				elog.String("email", email))
			continue
		}
		seen[key] = struct{}{}
		sub.Email = email
		res = append(res, sub)
	}
	return res, nil
}
