package repository

import (
	"context"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./subscriber.go -destination=./mocks/subscriber.mock.go -package=repomocks -typed SubscriberRepository
type SubscriberRepository interface {
	FindActive(ctx context.Context) ([]domain.Subscriber, error)
}

type subscriberRepository struct {
	dao dao.SubscriptionDAO
}

func NewSubscriberRepository(subDAO dao.SubscriptionDAO) SubscriberRepository {
	return &subscriberRepository{dao: subDAO}
}

func (s *subscriberRepository) FindActive(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := s.dao.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(_ int, src dao.SubscriberRow) domain.Subscriber {
		return domain.Subscriber{
			SubscriptionID:   src.SubscriptionID,
			Email:            src.Email,
			UnsubscribeToken: src.UnsubscribeToken,
			Username:         src.Username,
			DisplayName:      src.DisplayName,
			IsActive:         src.IsActive,
		}
	}), nil
}
