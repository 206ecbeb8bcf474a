package ioc

import (
	"errors"

	"gitee.com/flycash/newsletter-platform/internal/errs"
	"gitee.com/flycash/newsletter-platform/internal/service/transport"
	"gitee.com/flycash/newsletter-platform/internal/service/transport/api"
	"gitee.com/flycash/newsletter-platform/internal/service/transport/metrics"
	"gitee.com/flycash/newsletter-platform/internal/service/transport/simulation"
	"gitee.com/flycash/newsletter-platform/internal/service/transport/smtp"
	"gitee.com/flycash/newsletter-platform/internal/service/transport/tracing"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
)

// InitTransport 按 newsletter.transport.type 选择邮件通道
// 缺少凭证时降级为模拟发送
func InitTransport() transport.Transport {
	type Config struct {
		Type string      `yaml:"type"`
		API  api.Config  `yaml:"api"`
		SMTP smtp.Config `yaml:"smtp"`
	}
	cfg := Config{Type: "simulation"}
	if err := econf.UnmarshalKey("newsletter.transport", &cfg); err != nil {
		panic(err)
	}

	name, t, err := newTransport(cfg.Type, cfg.API, cfg.SMTP)
	if errors.Is(err, errs.ErrTransportUnavailable) {
		elog.DefaultLogger.Warn("邮件通道缺少凭证，使用模拟发送", elog.String("type", cfg.Type))
		name, t, err = "simulation", simulation.NewTransport(), nil
	}
	if err != nil {
		panic(err)
	}
	return tracing.NewTransport(name, metrics.NewTransport(name, t, prometheus.DefaultRegisterer))
}

func newTransport(typ string, apiCfg api.Config, smtpCfg smtp.Config) (string, transport.Transport, error) {
	switch typ {
	case "api":
		client := ehttp.Load("http.email").Build()
		t, err := api.NewTransport(client.Client, apiCfg)
		return typ, t, err
	case "smtp":
		t, err := smtp.NewTransport(smtpCfg)
		return typ, t, err
	default:
		return "simulation", simulation.NewTransport(), nil
	}
}
