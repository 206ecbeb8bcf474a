package newsletter

import (
	"context"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
)

// Result 一次调用的结果，跳过发送不是错误
type Result struct {
	State   domain.PipelineState
	Mode    domain.InvocationMode
	Skipped bool
	Reason  domain.SkipReason
	Message string
	// NextScheduledTime 只有 not_due 时有值
	NextScheduledTime *time.Time

	Articles        []domain.ArticleSummary
	SubscriberCount int
	Dispatch        domain.DispatchResult
	SendLog         *domain.SendLogRecord
}

// ScheduleView 当前定时配置以及按当前时间计算的决策
type ScheduleView struct {
	Config   domain.ScheduleConfig
	Decision domain.ScheduleDecision
}

//go:generate mockgen -source=./types.go -destination=./mocks/newsletter.mock.go -package=newslettermocks -typed Service
type Service interface {
	// Run 执行一次发送流程，调用方负责鉴权
	Run(ctx context.Context, mode domain.InvocationMode) (Result, error)
	Schedule(ctx context.Context) (ScheduleView, error)
	SendLogs(ctx context.Context, limit int) ([]domain.SendLogRecord, error)
}
