package metrics

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	transportmocks "gitee.com/flycash/newsletter-platform/internal/service/transport/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransport_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := transportmocks.NewMockTransport(ctrl)
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.Receipt{MessageID: "1"}, nil)
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.Receipt{}, errors.New("boom"))

	reg := prometheus.NewRegistry()
	tr := NewTransport("api", inner, reg)
	receipt, err := tr.Send(context.Background(), domain.Message{To: "a@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "1", receipt.MessageID)
	_, err = tr.Send(context.Background(), domain.Message{To: "b@example.com"})
	assert.Error(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "newsletter_transport_send_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" {
					counts[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{statusSucceeded: 1, statusFailed: 1}, counts)
}
