package recipient

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/pkg/retry"
	repomocks "gitee.com/flycash/newsletter-platform/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_LoadActiveSubscribers(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		subs    []domain.Subscriber
		err     error
		times   int
		want    []string
		wantErr error
	}{
		{
			name:  "没有订阅者",
			times: 1,
			want:  []string{},
		},
		{
			name: "过滤空邮箱和重复邮箱",
			subs: []domain.Subscriber{
				{SubscriptionID: 1, Email: "a@example.com", IsActive: true},
				{SubscriptionID: 2, Email: " ", IsActive: true},
				{SubscriptionID: 3, Email: "A@example.com", IsActive: true},
				{SubscriptionID: 4, Email: "b@example.com ", IsActive: true},
				{SubscriptionID: 5, Email: "c@example.com", IsActive: false},
			},
			times: 1,
			want:  []string{"a@example.com", "b@example.com"},
		},
		{
			name:    "数据库一直不可用",
			err:     errors.New("db down"),
			times:   2,
			wantErr: errs.ErrPersistenceUnavailable,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockSubscriberRepository(ctrl)
			repo.EXPECT().FindActive(gomock.Any()).Return(tc.subs, tc.err).Times(tc.times)
			exec, err := retry.NewExecutor(retry.Config{
				Type:          "fixed",
				FixedInterval: &retry.FixedIntervalConfig{MaxRetries: 1, Interval: 1},
			})
			require.NoError(t, err)
			subs, err := NewResolver(repo, exec).LoadActiveSubscribers(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			emails := make([]string, 0, len(subs))
			for _, s := range subs {
				emails = append(emails, s.Email)
			}
			assert.Equal(t, tc.want, emails)
		})
	}
}
