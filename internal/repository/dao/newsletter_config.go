package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// NewsletterConfig 简报定时配置，通常只有一行
type NewsletterConfig struct {
	ID               int64  `gorm:"primaryKey;type:BIGINT"`
	Frequency        string `gorm:"type:VARCHAR(32);NOT NULL;comment:'daily / weekdays / weekly / monthly'"`
	SendTime         string `gorm:"type:VARCHAR(8);NOT NULL;comment:'HH:MM'"`
	Timezone         string `gorm:"type:VARCHAR(64);NOT NULL;comment:'IANA 时区'"`
	Weekday          string `gorm:"type:VARCHAR(16)"`
	DayOfMonth       int    `gorm:"type:INT"`
	ToleranceMinutes int    `gorm:"type:INT;DEFAULT:15"`
	Ctime            int64
	Utime            int64
}

func (NewsletterConfig) TableName() string {
	return "newsletter_configs"
}

type NewsletterConfigDAO interface {
	GetByID(ctx context.Context, id int64) (NewsletterConfig, error)
}

type newsletterConfigDAO struct {
	db *egorm.Component
}

func NewNewsletterConfigDAO(db *egorm.Component) NewsletterConfigDAO {
	return &newsletterConfigDAO{db: db}
}

func (n *newsletterConfigDAO) GetByID(ctx context.Context, id int64) (NewsletterConfig, error) {
	var res NewsletterConfig
	err := n.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}
