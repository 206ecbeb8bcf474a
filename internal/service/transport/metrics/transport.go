// Package metrics 为邮件通道添加指标收集的装饰器
package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/service/transport"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

type Transport struct {
	transport           transport.Transport
	sendDurationSummary *prometheus.SummaryVec
	sendStatusCounter   *prometheus.CounterVec
	name                string
}

// NewTransport reg 为 nil 时注册到默认的 registry
func NewTransport(name string, t transport.Transport, reg prometheus.Registerer) *Transport {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "newsletter_transport_send_duration_seconds",
			Help:       "邮件通道发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"transport", "status"},
	)
	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_transport_send_total",
			Help: "邮件通道发送状态统计",
		},
		[]string{"transport", "status"},
	)
	reg.MustRegister(sendDurationSummary, sendStatusCounter)

	return &Transport{
		transport:           t,
		sendDurationSummary: sendDurationSummary,
		sendStatusCounter:   sendStatusCounter,
		name:                name,
	}
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) (domain.Receipt, error) {
	startTime := time.Now()
	receipt, err := t.transport.Send(ctx, msg)
	duration := time.Since(startTime).Seconds()

	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	t.sendStatusCounter.WithLabelValues(t.name, status).Inc()
	t.sendDurationSummary.WithLabelValues(t.name, status).Observe(duration)
	return receipt, err
}
