package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./send_log.go -destination=./mocks/send_log.mock.go -package=repomocks -typed SendLogRepository
type SendLogRepository interface {
	Create(ctx context.Context, record domain.SendLogRecord) error
	// List 最近的在前
	List(ctx context.Context, limit int) ([]domain.SendLogRecord, error)
	// ExistsSentSince since 之后是否已经有 sent 或 partial 的记录
	ExistsSentSince(ctx context.Context, since time.Time) (bool, error)
}

type sendLogRepository struct {
	dao    dao.SendLogDAO
	logger *elog.Component
}

func NewSendLogRepository(logDAO dao.SendLogDAO) SendLogRepository {
	return &sendLogRepository{
		dao:    logDAO,
		logger: elog.DefaultLogger,
	}
}

func (s *sendLogRepository) Create(ctx context.Context, record domain.SendLogRecord) error {
	entity, err := s.toEntity(record)
	if err != nil {
		return err
	}
	return s.dao.Insert(ctx, entity)
}

func (s *sendLogRepository) List(ctx context.Context, limit int) ([]domain.SendLogRecord, error) {
	logs, err := s.dao.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(_ int, src dao.NewsletterSendLog) domain.SendLogRecord {
		return s.toDomain(src)
	}), nil
}

func (s *sendLogRepository) ExistsSentSince(ctx context.Context, since time.Time) (bool, error) {
	return s.dao.ExistsSentSince(ctx, since.UnixMilli())
}

func (s *sendLogRepository) toEntity(record domain.SendLogRecord) (dao.NewsletterSendLog, error) {
	ids := record.ArticleIDs
	if ids == nil {
		ids = []int64{}
	}
	articleIDs, err := json.Marshal(ids)
	if err != nil {
		return dao.NewsletterSendLog{}, fmt.Errorf("序列化文章ID失败 %w", err)
	}
	ctime := record.CreatedAt.UnixMilli()
	return dao.NewsletterSendLog{
		ID:             record.ID,
		RecipientCount: record.RecipientCount,
		ArticleIDs:     string(articleIDs),
		Subject:        record.Subject,
		Status:         record.Status.String(),
		ErrorMessage:   record.ErrorMessage,
		Mode:           record.Mode,
		SuccessCount:   record.SuccessCount,
		ErrorCount:     record.ErrorCount,
		Ctime:          ctime,
		Utime:          ctime,
	}, nil
}

func (s *sendLogRepository) toDomain(entity dao.NewsletterSendLog) domain.SendLogRecord {
	var ids []int64
	if err := json.Unmarshal([]byte(entity.ArticleIDs), &ids); err != nil {
		s.logger.Warn("发送记录中的文章ID无法解析",
			elog.Any("id", entity.ID),
			elog.String("articleIds", entity.ArticleIDs),
			elog.FieldErr(err))
	}
	return domain.SendLogRecord{
		ID:             entity.ID,
		RecipientCount: entity.RecipientCount,
		ArticleIDs:     ids,
		Subject:        entity.Subject,
		Status:         domain.SendLogStatus(entity.Status),
		ErrorMessage:   entity.ErrorMessage,
		Mode:           entity.Mode,
		SuccessCount:   entity.SuccessCount,
		ErrorCount:     entity.ErrorCount,
		CreatedAt:      time.UnixMilli(entity.Ctime),
	}
}
