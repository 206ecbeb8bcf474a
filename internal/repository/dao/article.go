package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

const ArticleStatusPublished = "published"

// Article 文章表，简报只读
type Article struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:'文章ID'"`
	Title    string `gorm:"type:VARCHAR(512);NOT NULL;comment:'标题'"`
	Slug     string `gorm:"type:VARCHAR(256);uniqueIndex:uk_slug;comment:'URL 别名'"`
	Excerpt  string `gorm:"type:TEXT;comment:'摘要，可为空'"`
	Content  string `gorm:"type:LONGTEXT;comment:'正文 HTML'"`
	Image    string `gorm:"type:VARCHAR(1024);comment:'封面图'"`
	Author   string `gorm:"type:VARCHAR(128);comment:'作者'"`
	Category string `gorm:"type:VARCHAR(128);comment:'分类'"`
	Status   string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_status_publish_time,priority:1;comment:'状态 draft / published'"`
	// PublishTime 发布时间，毫秒
	PublishTime int64 `gorm:"type:BIGINT;NOT NULL;index:idx_status_publish_time,priority:2;comment:'发布时间'"`
	Ctime       int64
	Utime       int64
}

func (Article) TableName() string {
	return "articles"
}

type ArticleDAO interface {
	// FindPublishedByIDs 只返回已发布的文章，按发布时间倒序
	FindPublishedByIDs(ctx context.Context, ids []int64) ([]Article, error)
	// FindPublishedBetween 发布时间在 [start, end) 之间，单位毫秒
	FindPublishedBetween(ctx context.Context, start, end int64) ([]Article, error)
	FindLatestPublished(ctx context.Context, limit int) ([]Article, error)
}

type articleDAO struct {
	db *egorm.Component
}

func NewArticleDAO(db *egorm.Component) ArticleDAO {
	return &articleDAO{db: db}
}

func (a *articleDAO) FindPublishedByIDs(ctx context.Context, ids []int64) ([]Article, error) {
	var res []Article
	if len(ids) == 0 {
		return res, nil
	}
	err := a.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, ArticleStatusPublished).
		Order("publish_time DESC").
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (a *articleDAO) FindPublishedBetween(ctx context.Context, start, end int64) ([]Article, error) {
	var res []Article
	err := a.db.WithContext(ctx).
		Where("status = ? AND publish_time >= ? AND publish_time < ?", ArticleStatusPublished, start, end).
		Order("publish_time DESC").
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (a *articleDAO) FindLatestPublished(ctx context.Context, limit int) ([]Article, error) {
	var res []Article
	err := a.db.WithContext(ctx).
		Where("status = ?", ArticleStatusPublished).
		Order("publish_time DESC").
		Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
