package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// User 用户表，这里只关心展示名
type User struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Username    string `gorm:"type:VARCHAR(128);uniqueIndex:uk_username"`
	DisplayName string `gorm:"type:VARCHAR(128)"`
	Email       string `gorm:"type:VARCHAR(256)"`
	Ctime       int64
	Utime       int64
}

func (User) TableName() string {
	return "users"
}

// Subscription 订阅表，游客订阅时 UserID 为 0
type Subscription struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Email            string `gorm:"type:VARCHAR(256);NOT NULL;uniqueIndex:uk_email"`
	UserID           int64  `gorm:"type:BIGINT;index:idx_user_id"`
	UnsubscribeToken string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uk_unsubscribe_token"`
	IsActive         bool   `gorm:"NOT NULL;index:idx_is_active"`
	Ctime            int64
	Utime            int64
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriberRow 订阅和用户的联表结果
type SubscriberRow struct {
	SubscriptionID   int64
	Email            string
	UnsubscribeToken string
	IsActive         bool
	Username         string
	DisplayName      string
}

type SubscriptionDAO interface {
	// FindActive 只读，不会修改订阅
	FindActive(ctx context.Context) ([]SubscriberRow, error)
}

type subscriptionDAO struct {
	db *egorm.Component
}

func NewSubscriptionDAO(db *egorm.Component) SubscriptionDAO {
	return &subscriptionDAO{db: db}
}

func (s *subscriptionDAO) FindActive(ctx context.Context) ([]SubscriberRow, error) {
	var res []SubscriberRow
	err := s.db.WithContext(ctx).
		Table("subscriptions AS s").
		Select("s.id AS subscription_id, s.email, s.unsubscribe_token, s.is_active, " +
			"COALESCE(u.username, '') AS username, COALESCE(u.display_name, '') AS display_name").
		Joins("LEFT JOIN users AS u ON u.id = s.user_id").
		Where("s.is_active = ?", true).
		Order("s.id ASC").
		Scan(&res).Error
	return res, err
}
