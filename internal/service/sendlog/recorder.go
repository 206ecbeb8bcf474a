package sendlog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/sony/sonyflake"
)

const (
	// 错误汇总的上限，避免一次群发失败把日志表撑爆
	maxSummaryEntries = 20
	maxSummaryLength  = 1000

	defaultWriteTimeout = 5 * time.Second
)

//go:generate mockgen -source=./recorder.go -destination=./mocks/recorder.mock.go -package=sendlogmocks -typed Recorder
type Recorder interface {
	// Record 写入失败只记录日志，不返回错误
	Record(ctx context.Context, mode domain.InvocationMode, result domain.DispatchResult, articleIDs []int64) domain.SendLogRecord
	// Recent 最近的发送记录
	Recent(ctx context.Context, limit int) ([]domain.SendLogRecord, error)
	// SentSince since 之后是否已经发送过
	SentSince(ctx context.Context, since time.Time) (bool, error)
}

type recorder struct {
	repo         repository.SendLogRepository
	idGenerator  *sonyflake.Sonyflake
	writeTimeout time.Duration
	now          func() time.Time
	logger       *elog.Component
}

func NewRecorder(repo repository.SendLogRepository, idGenerator *sonyflake.Sonyflake) Recorder {
	return &recorder{
		repo:         repo,
		idGenerator:  idGenerator,
		writeTimeout: defaultWriteTimeout,
		now:          time.Now,
		logger:       elog.DefaultLogger,
	}
}

// StatusFor 没有失败时为 sent，否则为 partial，全部失败也是 partial
func StatusFor(errorCount int) domain.SendLogStatus {
	if errorCount == 0 {
		return domain.SendLogStatusSent
	}
	return domain.SendLogStatusPartial
}

func (r *recorder) Record(ctx context.Context, mode domain.InvocationMode, result domain.DispatchResult, articleIDs []int64) domain.SendLogRecord {
	record := domain.SendLogRecord{
		RecipientCount: len(result.Outcomes),
		ArticleIDs:     articleIDs,
		Subject:        result.Subject,
		Status:         StatusFor(result.ErrorCount),
		ErrorMessage:   Summary(result.Outcomes),
		Mode:           mode.String(),
		SuccessCount:   result.SuccessCount,
		ErrorCount:     result.ErrorCount,
		CreatedAt:      r.now(),
	}
	// 生成ID失败时 ID 留空，交给数据库自增
	id, err := r.idGenerator.NextID()
	if err != nil {
		r.logger.Warn("生成发送记录ID失败，使用数据库自增ID", elog.FieldErr(err))
	} else {
		record.ID = id
	}

	// 请求的 ctx 可能已经超时，审计记录不能因此丢失
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()
	if err = r.repo.Create(wctx, record); err != nil {
		r.logger.Error("写入发送记录失败",
			elog.Any("id", record.ID),
			elog.String("status", record.Status.String()),
			elog.Int("successCount", record.SuccessCount),
			elog.Int("errorCount", record.ErrorCount),
			elog.FieldErr(err))
	}
	return record
}

func (r *recorder) Recent(ctx context.Context, limit int) ([]domain.SendLogRecord, error) {
	return r.repo.List(ctx, limit)
}

func (r *recorder) SentSince(ctx context.Context, since time.Time) (bool, error) {
	return r.repo.ExistsSentSince(ctx, since)
}

// Summary 汇总失败信息，最多 20 条、1000 个字符
func Summary(outcomes []domain.DeliveryOutcome) string {
	var merr *multierror.Error
	failed, omitted := 0, 0
	for _, o := range outcomes {
		if o.Success {
			continue
		}
		failed++
		if failed > maxSummaryEntries {
			omitted++
			continue
		}
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", o.Email, o.Error))
	}
	if merr.ErrorOrNil() == nil {
		return ""
	}
	merr.ErrorFormat = func(es []error) string {
		lines := make([]string, 0, len(es)+1)
		for _, e := range es {
			lines = append(lines, e.Error())
		}
		if omitted > 0 {
			lines = append(lines, fmt.Sprintf("... and %d more", omitted))
		}
		return strings.Join(lines, "; ")
	}
	summary := merr.Error()
	if runes := []rune(summary); len(runes) > maxSummaryLength {
		summary = string(runes[:maxSummaryLength])
	}
	return summary
}
