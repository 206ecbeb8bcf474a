package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateLock 锁已经被其他调用持有
var ErrDuplicateLock = errors.New("锁已被持有")

const mysqlDuplicateEntry = 1062

// NewsletterSendLock 用唯一索引实现的发送锁
type NewsletterSendLock struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	LockKey string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uk_lock_key"`
	Owner   string `gorm:"type:VARCHAR(64);NOT NULL"`
	// ExpireAt 毫秒，过期的锁可以被抢占
	ExpireAt int64 `gorm:"type:BIGINT;NOT NULL"`
	Ctime    int64
	Utime    int64
}

func (NewsletterSendLock) TableName() string {
	return "newsletter_send_locks"
}

type SendLockDAO interface {
	// Insert 锁已存在时返回 ErrDuplicateLock
	Insert(ctx context.Context, key, owner string, expireAt int64) error
	// DeleteExpired 删除已经过期的锁
	DeleteExpired(ctx context.Context, key string, now int64) (int64, error)
	Delete(ctx context.Context, key, owner string) (int64, error)
}

type sendLockDAO struct {
	db *egorm.Component
}

func NewSendLockDAO(db *egorm.Component) SendLockDAO {
	return &sendLockDAO{db: db}
}

func (s *sendLockDAO) Insert(ctx context.Context, key, owner string, expireAt int64) error {
	now := time.Now().UnixMilli()
	err := s.db.WithContext(ctx).Create(&NewsletterSendLock{
		LockKey:  key,
		Owner:    owner,
		ExpireAt: expireAt,
		Ctime:    now,
		Utime:    now,
	}).Error
	if isDuplicateKeyError(err) {
		return ErrDuplicateLock
	}
	return err
}

func (s *sendLockDAO) DeleteExpired(ctx context.Context, key string, now int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("lock_key = ? AND expire_at < ?", key, now).
		Delete(&NewsletterSendLock{})
	return res.RowsAffected, res.Error
}

func (s *sendLockDAO) Delete(ctx context.Context, key, owner string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("lock_key = ? AND owner = ?", key, owner).
		Delete(&NewsletterSendLock{})
	return res.RowsAffected, res.Error
}

func isDuplicateKeyError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlDuplicateEntry
	}
	return false
}
