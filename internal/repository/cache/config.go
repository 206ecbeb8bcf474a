package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"github.com/pkg/errors"
)

const (
	ScheduleConfigPrefix = "newsletter:schedule"
	DefaultExpiredTime   = 10 * time.Minute
)

var ErrKeyNotFound = errors.New("key not found")

// ScheduleConfigCache 定时配置缓存，本地和 redis 两种实现
type ScheduleConfigCache interface {
	Get(ctx context.Context, id int64) (domain.ScheduleConfig, error)
	Set(ctx context.Context, id int64, cfg domain.ScheduleConfig) error
	Del(ctx context.Context, id int64) error
}

func ScheduleConfigKey(id int64) string {
	return fmt.Sprintf("%s:%d", ScheduleConfigPrefix, id)
}
