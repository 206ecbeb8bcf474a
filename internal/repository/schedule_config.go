package repository

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/repository/cache"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./schedule_config.go -destination=./mocks/schedule_config.mock.go -package=repomocks -typed ScheduleConfigRepository
type ScheduleConfigRepository interface {
	// Get 先查本地缓存，再查 redis，最后查库；库里没有时使用配置文件里的兜底配置
	Get(ctx context.Context) (domain.ScheduleConfig, error)
}

type scheduleConfigRepository struct {
	id         int64
	fallback   *domain.ScheduleConfig
	dao        dao.NewsletterConfigDAO
	localCache cache.ScheduleConfigCache
	redisCache cache.ScheduleConfigCache
	logger     *elog.Component
}

// NewScheduleConfigRepository fallback 为 nil 表示没有兜底配置
func NewScheduleConfigRepository(
	id int64,
	fallback *domain.ScheduleConfig,
	configDAO dao.NewsletterConfigDAO,
	localCache cache.ScheduleConfigCache,
	redisCache cache.ScheduleConfigCache,
) ScheduleConfigRepository {
	return &scheduleConfigRepository{
		id:         id,
		fallback:   fallback,
		dao:        configDAO,
		localCache: localCache,
		redisCache: redisCache,
		logger:     elog.DefaultLogger,
	}
}

func (s *scheduleConfigRepository) Get(ctx context.Context) (domain.ScheduleConfig, error) {
	cfg, err := s.localCache.Get(ctx, s.id)
	if err == nil {
		return cfg, nil
	}
	cfg, err = s.redisCache.Get(ctx, s.id)
	if err == nil {
		s.setLocal(ctx, cfg)
		return cfg, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		// redis 出问题不影响回源
		s.logger.Warn("从redis读取定时配置失败", elog.FieldErr(err))
	}

	entity, err := s.dao.GetByID(ctx, s.id)
	switch {
	case err == nil:
		cfg = s.toDomain(entity)
	case errors.Is(err, egorm.ErrRecordNotFound):
		if s.fallback == nil {
			return domain.ScheduleConfig{}, fmt.Errorf("%w: id=%d", errs.ErrConfigNotFound, s.id)
		}
		// 兜底配置不写缓存，库里补上配置之后立刻生效
		return *s.fallback, nil
	default:
		return domain.ScheduleConfig{}, err
	}

	if er := s.redisCache.Set(ctx, s.id, cfg); er != nil {
		s.logger.Warn("回写redis定时配置失败", elog.FieldErr(er))
	}
	s.setLocal(ctx, cfg)
	return cfg, nil
}

func (s *scheduleConfigRepository) setLocal(ctx context.Context, cfg domain.ScheduleConfig) {
	if err := s.localCache.Set(ctx, s.id, cfg); err != nil {
		s.logger.Warn("回写本地定时配置失败", elog.FieldErr(err))
	}
}

func (s *scheduleConfigRepository) toDomain(entity dao.NewsletterConfig) domain.ScheduleConfig {
	return domain.ScheduleConfig{
		Frequency:        domain.Frequency(entity.Frequency),
		SendTime:         entity.SendTime,
		Timezone:         entity.Timezone,
		Weekday:          entity.Weekday,
		DayOfMonth:       entity.DayOfMonth,
		ToleranceMinutes: entity.ToleranceMinutes,
	}
}
