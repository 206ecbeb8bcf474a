package dao

import "github.com/ego-component/egorm"

// InitTables articles / users / subscriptions 归站点主库所有，这里迁移只为了本地开发和测试
func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Article{},
		&User{},
		&Subscription{},
		&NewsletterConfig{},
		&NewsletterSendLog{},
		&NewsletterSendLock{},
	)
}
