package content

import (
	"context"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/pkg/retry"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// DefaultImmediateLimit 立即发送时取最近的文章数
const DefaultImmediateLimit = 5

//go:generate mockgen -source=./selector.go -destination=./mocks/selector.mock.go -package=contentmocks -typed Selector
type Selector interface {
	// SelectArticles 结果为空不是错误
	SelectArticles(ctx context.Context, mode domain.InvocationMode, now time.Time, loc *time.Location) ([]domain.ArticleSummary, error)
}

type selector struct {
	repo           repository.ArticleRepository
	retry          *retry.Executor
	immediateLimit int
	logger         *elog.Component
}

func NewSelector(repo repository.ArticleRepository, executor *retry.Executor, immediateLimit int) Selector {
	if immediateLimit <= 0 {
		immediateLimit = DefaultImmediateLimit
	}
	return &selector{
		repo:           repo,
		retry:          executor,
		immediateLimit: immediateLimit,
		logger:         elog.DefaultLogger,
	}
}

func (s *selector) SelectArticles(ctx context.Context, mode domain.InvocationMode, now time.Time, loc *time.Location) ([]domain.ArticleSummary, error) {
	switch mode.Kind {
	case domain.ModeExplicitArticles:
		ids := dedupe(mode.ArticleIDs)
		return retry.Query(ctx, s.retry, "FindPublishedByIDs", func(ctx context.Context) ([]domain.ArticleSummary, error) {
			return s.repo.FindPublishedByIDs(ctx, ids)
		})
	case domain.ModeForcedImmediate:
		return retry.Query(ctx, s.retry, "FindLatestPublished", func(ctx context.Context) ([]domain.ArticleSummary, error) {
			return s.repo.FindLatestPublished(ctx, s.immediateLimit)
		})
	default:
		start, end := LocalDay(now, loc)
		s.logger.Debug("按本地日期选取文章",
			elog.String("start", start.Format(time.RFC3339)),
			elog.String("end", end.Format(time.RFC3339)))
		return retry.Query(ctx, s.retry, "FindPublishedBetween", func(ctx context.Context) ([]domain.ArticleSummary, error) {
			return s.repo.FindPublishedBetween(ctx, start, end)
		})
	}
}

// LocalDay 返回 now 在 loc 中所在日期的 [零点, 零点+24h)
func LocalDay(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// dedupe 保留第一次出现的顺序
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
