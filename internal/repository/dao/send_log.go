package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// NewsletterSendLog 简报发送记录，只追加
type NewsletterSendLog struct {
	// ID 为 0 时由数据库自增生成
	ID             uint64 `gorm:"primaryKey;autoIncrement;comment:'雪花算法ID'"`
	RecipientCount int    `gorm:"type:INT;NOT NULL;comment:'收件人数'"`
	// ArticleIDs JSON 数组
	ArticleIDs   string `gorm:"column:article_ids;type:TEXT;NOT NULL;comment:'文章ID列表'"`
	Subject      string `gorm:"type:VARCHAR(512);NOT NULL"`
	Status       string `gorm:"type:ENUM('sent','partial','skipped','failed');NOT NULL"`
	ErrorMessage string `gorm:"type:TEXT;comment:'失败汇总'"`
	// Mode 指定文章时带全部文章ID，长度不固定
	Mode         string `gorm:"type:TEXT;comment:'调用模式'"`
	SuccessCount int    `gorm:"type:INT;NOT NULL"`
	ErrorCount   int    `gorm:"type:INT;NOT NULL"`
	Ctime        int64  `gorm:"index:idx_ctime"`
	Utime        int64
}

func (NewsletterSendLog) TableName() string {
	return "newsletter_send_logs"
}

type SendLogDAO interface {
	Insert(ctx context.Context, log NewsletterSendLog) error
	// List 最近的记录在前
	List(ctx context.Context, limit int) ([]NewsletterSendLog, error)
	// ExistsSentSince 是否存在 ctime >= since 的非 skipped 记录
	ExistsSentSince(ctx context.Context, since int64) (bool, error)
}

type sendLogDAO struct {
	db *egorm.Component
}

func NewSendLogDAO(db *egorm.Component) SendLogDAO {
	return &sendLogDAO{db: db}
}

func (s *sendLogDAO) Insert(ctx context.Context, log NewsletterSendLog) error {
	return s.db.WithContext(ctx).Create(&log).Error
}

func (s *sendLogDAO) List(ctx context.Context, limit int) ([]NewsletterSendLog, error) {
	var res []NewsletterSendLog
	err := s.db.WithContext(ctx).
		Order("ctime DESC").
		Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (s *sendLogDAO) ExistsSentSince(ctx context.Context, since int64) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).Model(&NewsletterSendLog{}).
		Where("ctime >= ? AND status IN ?", since, []string{"sent", "partial"}).
		Count(&cnt).Error
	return cnt > 0, err
}
