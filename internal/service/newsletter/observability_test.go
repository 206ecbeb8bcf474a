package newsletter_test

import (
	"context"
	"testing"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/service/newsletter"
	newslettermocks "gitee.com/flycash/newsletter-platform/internal/service/newsletter/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestObservabilityService_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := newslettermocks.NewMockService(ctrl)
	scheduled := domain.ScheduledMode()
	immediate := domain.NewInvocationMode(nil, true, false)
	gomock.InOrder(
		inner.EXPECT().Run(gomock.Any(), scheduled).Return(newsletter.Result{
			State: domain.StateSkipped, Skipped: true, Reason: domain.SkipReasonNotDue,
		}, nil),
		inner.EXPECT().Run(gomock.Any(), immediate).Return(newsletter.Result{State: domain.StateDone}, nil),
		inner.EXPECT().Run(gomock.Any(), immediate).Return(newsletter.Result{}, errs.ErrDispatchInProgress),
	)

	reg := prometheus.NewRegistry()
	svc := newsletter.NewObservabilityService(inner, reg)
	res, err := svc.Run(context.Background(), scheduled)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	_, err = svc.Run(context.Background(), immediate)
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), immediate)
	assert.ErrorIs(t, err, errs.ErrDispatchInProgress)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "newsletter_pipeline_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var mode, outcome string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "mode":
					mode = l.GetValue()
				case "outcome":
					outcome = l.GetValue()
				}
			}
			counts[mode+"/"+outcome] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"scheduled/not_due":                     1,
		"forced_immediate/done":                 1,
		"forced_immediate/DISPATCH_IN_PROGRESS": 1,
	}, counts)
}
