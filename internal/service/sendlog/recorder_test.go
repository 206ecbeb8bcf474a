package sendlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	repomocks "gitee.com/flycash/newsletter-platform/internal/repository/mocks"
	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, domain.SendLogStatusSent, StatusFor(0))
	assert.Equal(t, domain.SendLogStatusPartial, StatusFor(1))
	assert.Equal(t, domain.SendLogStatusPartial, StatusFor(100))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		outcomes []domain.DeliveryOutcome
		check    func(t *testing.T, summary string)
	}{
		{
			name:     "没有失败",
			outcomes: []domain.DeliveryOutcome{{Email: "a@example.com", Success: true}},
			check: func(t *testing.T, summary string) {
				assert.Empty(t, summary)
			},
		},
		{
			name: "只汇总失败",
			outcomes: []domain.DeliveryOutcome{
				{Email: "a@example.com", Success: true},
				{Email: "b@example.com", Error: "mailbox full"},
			},
			check: func(t *testing.T, summary string) {
				assert.Equal(t, "b@example.com: mailbox full", summary)
			},
		},
		{
			name: "最多20条",
			outcomes: func() []domain.DeliveryOutcome {
				res := make([]domain.DeliveryOutcome, 0, 25)
				for i := 0; i < 25; i++ {
					res = append(res, domain.DeliveryOutcome{Email: fmt.Sprintf("u%d@x.io", i), Error: "e"})
				}
				return res
			}(),
			check: func(t *testing.T, summary string) {
				assert.Equal(t, 20, strings.Count(summary, "@x.io"))
				assert.True(t, strings.HasSuffix(summary, "... and 5 more"))
			},
		},
		{
			name: "最多1000个字符",
			outcomes: []domain.DeliveryOutcome{
				{Email: "a@example.com", Error: strings.Repeat("错", 2000)},
			},
			check: func(t *testing.T, summary string) {
				assert.Equal(t, 1000, utf8.RuneCountInString(summary))
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, Summary(tc.outcomes))
		})
	}
}

type RecorderTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *repomocks.MockSendLogRepository
	rec  *recorder
	now  time.Time
}

func (s *RecorderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repomocks.NewMockSendLogRepository(s.ctrl)
	s.now = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	rec, ok := NewRecorder(s.repo, sonyflake.NewSonyflake(sonyflake.Settings{
		MachineID: func() (uint16, error) { return 1, nil },
	})).(*recorder)
	s.Require().True(ok)
	rec.now = func() time.Time { return s.now }
	s.rec = rec
}

func (s *RecorderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RecorderTestSuite) TestRecordPartial() {
	result := domain.DispatchResult{
		Subject: "Daily: a (+1 more)",
		Outcomes: []domain.DeliveryOutcome{
			{Email: "a@example.com", Success: true, Attempted: true},
			{Email: "b@example.com", Success: true, Attempted: true},
			{Email: "c@example.com", Error: "boom", Attempted: true},
		},
		SuccessCount: 2,
		ErrorCount:   1,
	}
	var saved domain.SendLogRecord
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.SendLogRecord) error {
			saved = r
			return nil
		})
	rec := s.rec.Record(context.Background(), domain.ScheduledMode(), result, []int64{3, 1})
	s.Equal(saved, rec)
	s.NotZero(rec.ID)
	s.Equal(domain.SendLogStatusPartial, rec.Status)
	s.Equal([]int64{3, 1}, rec.ArticleIDs)
	s.Equal(3, rec.RecipientCount)
	s.Equal(2, rec.SuccessCount)
	s.Equal(1, rec.ErrorCount)
	s.Equal("c@example.com: boom", rec.ErrorMessage)
	s.Equal("scheduled", rec.Mode)
	s.Equal(s.now, rec.CreatedAt)
}

func (s *RecorderTestSuite) TestRecordAllFailedIsPartial() {
	result := domain.DispatchResult{
		Subject: "Daily: a",
		Outcomes: []domain.DeliveryOutcome{
			{Email: "a@example.com", Error: "x", Attempted: true},
			{Email: "b@example.com", Error: "y", Attempted: true},
		},
		ErrorCount: 2,
	}
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	rec := s.rec.Record(context.Background(), domain.NewInvocationMode(nil, true, false), result, []int64{1})
	s.Equal(domain.SendLogStatusPartial, rec.Status)
	s.Equal("forced_immediate", rec.Mode)
}

func (s *RecorderTestSuite) TestRecordWriteFailureSwallowed() {
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	rec := s.rec.Record(context.Background(), domain.ScheduledMode(), domain.DispatchResult{
		Subject:      "Daily: a",
		Outcomes:     []domain.DeliveryOutcome{{Email: "a@example.com", Success: true}},
		SuccessCount: 1,
	}, []int64{1})
	s.Equal(domain.SendLogStatusSent, rec.Status)
}

func (s *RecorderTestSuite) TestRecordWithExpiredContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.SendLogRecord) error {
			// 写日志用的 ctx 不受调用方取消的影响
			s.NoError(ctx.Err())
			return nil
		})
	rec := s.rec.Record(ctx, domain.ScheduledMode(), domain.DispatchResult{Subject: "Daily: a"}, []int64{1})
	s.Equal(domain.SendLogStatusSent, rec.Status)
}

func (s *RecorderTestSuite) TestRecordManyExplicitArticles() {
	ids := make([]int64, 0, 30)
	for i := int64(0); i < 30; i++ {
		ids = append(ids, 1000000+i)
	}
	mode := domain.NewInvocationMode(ids, false, false)
	var saved domain.SendLogRecord
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.SendLogRecord) error {
			saved = r
			return nil
		})
	s.rec.Record(context.Background(), mode, domain.DispatchResult{
		Subject:      "Daily: a",
		Outcomes:     []domain.DeliveryOutcome{{Email: "a@example.com", Success: true, Attempted: true}},
		SuccessCount: 1,
	}, ids)
	s.Equal(mode.String(), saved.Mode)
	s.Greater(len(saved.Mode), 256)
	s.Equal(ids, saved.ArticleIDs)
}

func (s *RecorderTestSuite) TestRecordWithoutGeneratedID() {
	// 起始时间太早，sonyflake 的时间位溢出，NextID 必定失败
	s.rec.idGenerator = sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) { return 1, nil },
	})
	s.Require().NotNil(s.rec.idGenerator)
	_, err := s.rec.idGenerator.NextID()
	s.Require().Error(err)

	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.SendLogRecord) error {
			s.Zero(r.ID)
			return nil
		})
	rec := s.rec.Record(context.Background(), domain.ScheduledMode(), domain.DispatchResult{
		Subject:      "Daily: a",
		Outcomes:     []domain.DeliveryOutcome{{Email: "a@example.com", Success: true, Attempted: true}},
		SuccessCount: 1,
	}, []int64{1})
	s.Equal(domain.SendLogStatusSent, rec.Status)
}

func (s *RecorderTestSuite) TestRecent() {
	want := []domain.SendLogRecord{{ID: 2}, {ID: 1}}
	s.repo.EXPECT().List(gomock.Any(), 20).Return(want, nil)
	got, err := s.rec.Recent(context.Background(), 20)
	require.NoError(s.T(), err)
	s.Equal(want, got)
}

func TestRecorderTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RecorderTestSuite))
}
