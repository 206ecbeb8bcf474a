package dispatch

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/service/transport/simulation"
	transportmocks "gitee.com/flycash/newsletter-platform/internal/service/transport/mocks"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testArticles = []domain.ArticleSummary{
		{ID: 2, Title: "Second", Slug: "second", Excerpt: "two", PublishDate: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{ID: 1, Title: "First", Slug: "first", PublishDate: time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)},
	}
	testSubscribers = []domain.Subscriber{
		{SubscriptionID: 1, Email: "a@example.com", UnsubscribeToken: "tok-a", DisplayName: "Alice", IsActive: true},
		{SubscriptionID: 2, Email: "b@example.com", UnsubscribeToken: "tok b", IsActive: true},
		{SubscriptionID: 3, Email: "c@example.com", UnsubscribeToken: "tok-c", Username: "carol", IsActive: true},
	}
	testConfig = Config{SiteName: "Daily", SiteURL: "https://news.example.com/", Concurrency: 2, Timeout: time.Minute}
)

func TestSubject(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Daily: First", Subject("Daily", testArticles[1:]))
	assert.Equal(t, "Daily: Second (+1 more)", Subject("Daily", testArticles))
	assert.Equal(t, "Daily: Second (+2 more)", Subject("Daily", append(testArticles, domain.ArticleSummary{Title: "x"})))
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()
	r := NewRenderer("Daily", "https://news.example.com/")
	msg, err := r.Render("Daily: Second (+1 more)", testArticles, testSubscribers[1])
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", msg.To)
	assert.Contains(t, msg.Text, "https://news.example.com/unsubscribe?token=tok+b")

	// HTML 里的属性值会被转义，按解析后的链接比较
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(msg.HTML))
	require.NoError(t, err)
	var hrefs []string
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	assert.Equal(t, []string{
		"https://news.example.com/articles/second",
		"https://news.example.com/articles/first",
		"https://news.example.com/unsubscribe?token=tok+b",
	}, hrefs)
	unsubscribe, err := url.Parse(hrefs[len(hrefs)-1])
	require.NoError(t, err)
	assert.Equal(t, "tok b", unsubscribe.Query().Get("token"))
	assert.Contains(t, msg.Text, "Hi there,")
	assert.Contains(t, msg.HTML, "two")
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) *transportmocks.MockTransport
		wantSuccess int
		wantError   int
		wantFailed  map[string]string
	}{
		{
			name: "全部成功",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				tr := transportmocks.NewMockTransport(ctrl)
				tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.Receipt{MessageID: "m"}, nil).Times(3)
				return tr
			},
			wantSuccess: 3,
		},
		{
			name: "一个失败不影响其他",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				tr := transportmocks.NewMockTransport(ctrl)
				tr.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg domain.Message) (domain.Receipt, error) {
						if msg.To == "b@example.com" {
							return domain.Receipt{}, errors.New("mailbox full")
						}
						return domain.Receipt{MessageID: "id-" + msg.To}, nil
					}).Times(3)
				return tr
			},
			wantSuccess: 2,
			wantError:   1,
			wantFailed:  map[string]string{"b@example.com": "mailbox full"},
		},
		{
			name: "panic 被转换为失败结果",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				tr := transportmocks.NewMockTransport(ctrl)
				tr.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg domain.Message) (domain.Receipt, error) {
						if msg.To == "c@example.com" {
							panic("nil map")
						}
						return domain.Receipt{MessageID: "ok"}, nil
					}).Times(3)
				return tr
			},
			wantSuccess: 2,
			wantError:   1,
			wantFailed:  map[string]string{"c@example.com": "panic: nil map"},
		},
		{
			name: "全部失败",
			mock: func(ctrl *gomock.Controller) *transportmocks.MockTransport {
				tr := transportmocks.NewMockTransport(ctrl)
				tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.Receipt{}, errors.New("down")).Times(3)
				return tr
			},
			wantError: 3,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := NewDispatcher(tc.mock(ctrl), testConfig)
			res, err := d.Dispatch(context.Background(), testArticles, testSubscribers)
			require.NoError(t, err)
			assert.Equal(t, "Daily: Second (+1 more)", res.Subject)
			assert.Equal(t, tc.wantSuccess, res.SuccessCount)
			assert.Equal(t, tc.wantError, res.ErrorCount)
			require.Len(t, res.Outcomes, len(testSubscribers))
			for i, o := range res.Outcomes {
				// 结果和订阅者一一对应
				assert.Equal(t, testSubscribers[i].Email, o.Email)
				assert.True(t, o.Attempted)
				if msg, ok := tc.wantFailed[o.Email]; ok {
					assert.False(t, o.Success)
					assert.Equal(t, msg, o.Error)
				}
			}
		})
	}
}

func TestDispatcher_Timeout(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tr := transportmocks.NewMockTransport(ctrl)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msg domain.Message) (domain.Receipt, error) {
			time.Sleep(100 * time.Millisecond)
			// 已经发起的发送不受派发超时影响
			return domain.Receipt{MessageID: "slow"}, ctx.Err()
		}).Times(1)
	cfg := testConfig
	cfg.Concurrency = 1
	cfg.Timeout = 30 * time.Millisecond
	res, err := NewDispatcher(tr, cfg).Dispatch(context.Background(), testArticles, testSubscribers)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 2, res.ErrorCount)
	assert.True(t, res.Outcomes[0].Success)
	for _, o := range res.Outcomes[1:] {
		assert.False(t, o.Attempted)
		assert.False(t, o.Success)
		assert.Equal(t, ErrNotAttempted, o.Error)
	}
}

func TestDispatcher_CallerCancelled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tr := transportmocks.NewMockTransport(ctrl)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("client disconnected"))

	res, err := NewDispatcher(tr, testConfig).Dispatch(ctx, testArticles, testSubscribers)
	require.NoError(t, err)
	assert.Equal(t, 0, res.SuccessCount)
	assert.Equal(t, len(testSubscribers), res.ErrorCount)
	for _, o := range res.Outcomes {
		assert.False(t, o.Attempted)
		assert.Equal(t, ErrAbortedPrefix+"client disconnected", o.Error)
	}
}

func TestDispatcher_RateLimit(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tr := transportmocks.NewMockTransport(ctrl)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Message) (domain.Receipt, error) {
			calls.Add(1)
			return domain.Receipt{MessageID: "m"}, nil
		}).Times(3)
	cfg := testConfig
	cfg.RatePerSecond = 50
	cfg.Burst = 1
	start := time.Now()
	res, err := NewDispatcher(tr, cfg).Dispatch(context.Background(), testArticles, testSubscribers)
	require.NoError(t, err)
	assert.Equal(t, 3, res.SuccessCount)
	assert.Equal(t, int32(3), calls.Load())
	// 50/s 的速率下第三封至少要等两个间隔
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDispatcher_Simulation(t *testing.T) {
	t.Parallel()
	res, err := NewDispatcher(simulation.NewTransport(), testConfig).
		Dispatch(context.Background(), testArticles[:1], testSubscribers)
	require.NoError(t, err)
	assert.True(t, res.Simulated)
	assert.Equal(t, "Daily: Second", res.Subject)
	for _, o := range res.Outcomes {
		assert.True(t, o.Simulated)
		assert.True(t, strings.HasPrefix(o.MessageID, "simulated-"))
	}
}

func TestDispatcher_NoArticles(t *testing.T) {
	t.Parallel()
	_, err := NewDispatcher(simulation.NewTransport(), testConfig).
		Dispatch(context.Background(), nil, testSubscribers)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
