package repository

import (
	"context"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/pkg/excerpt"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./article.go -destination=./mocks/article.mock.go -package=repomocks -typed ArticleRepository
type ArticleRepository interface {
	// FindPublishedByIDs 未发布或不存在的ID会被忽略，结果按发布时间倒序
	FindPublishedByIDs(ctx context.Context, ids []int64) ([]domain.ArticleSummary, error)
	// FindPublishedBetween 发布时间在 [start, end) 之间，结果按发布时间倒序
	FindPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.ArticleSummary, error)
	FindLatestPublished(ctx context.Context, limit int) ([]domain.ArticleSummary, error)
}

type articleRepository struct {
	dao dao.ArticleDAO
}

func NewArticleRepository(articleDAO dao.ArticleDAO) ArticleRepository {
	return &articleRepository{dao: articleDAO}
}

func (a *articleRepository) FindPublishedByIDs(ctx context.Context, ids []int64) ([]domain.ArticleSummary, error) {
	arts, err := a.dao.FindPublishedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return a.toDomains(arts), nil
}

func (a *articleRepository) FindPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.ArticleSummary, error) {
	arts, err := a.dao.FindPublishedBetween(ctx, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, err
	}
	return a.toDomains(arts), nil
}

func (a *articleRepository) FindLatestPublished(ctx context.Context, limit int) ([]domain.ArticleSummary, error) {
	arts, err := a.dao.FindLatestPublished(ctx, limit)
	if err != nil {
		return nil, err
	}
	return a.toDomains(arts), nil
}

func (a *articleRepository) toDomains(arts []dao.Article) []domain.ArticleSummary {
	return slice.Map(arts, func(_ int, src dao.Article) domain.ArticleSummary {
		return a.toDomain(src)
	})
}

func (a *articleRepository) toDomain(art dao.Article) domain.ArticleSummary {
	summary := art.Excerpt
	if summary == "" {
		// 没有摘要就从正文截取
		summary = excerpt.FromHTML(art.Content, excerpt.DefaultMaxRunes)
	}
	return domain.ArticleSummary{
		ID:          art.ID,
		Title:       art.Title,
		Slug:        art.Slug,
		Excerpt:     summary,
		Image:       art.Image,
		Author:      art.Author,
		PublishDate: time.UnixMilli(art.PublishTime),
		Category:    art.Category,
	}
}
