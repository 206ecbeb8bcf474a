package newsletter

import (
	"context"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ObservabilityService 记录每次调用的链路和结果指标
type ObservabilityService struct {
	svc    Service
	tracer trace.Tracer
	runs   *prometheus.CounterVec
}

// NewObservabilityService reg 为 nil 时注册到默认的 registry
func NewObservabilityService(svc Service, reg prometheus.Registerer) *ObservabilityService {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "newsletter_pipeline_runs_total",
		Help: "简报发送流程调用次数，outcome 为 done、跳过原因或错误码",
	}, []string{"mode", "outcome"})
	reg.MustRegister(runs)
	return &ObservabilityService{
		svc:    svc,
		tracer: otel.Tracer("newsletter-platform/newsletter"),
		runs:   runs,
	}
}

func (o *ObservabilityService) Run(ctx context.Context, mode domain.InvocationMode) (Result, error) {
	ctx, span := o.tracer.Start(ctx, "Newsletter.Run",
		trace.WithAttributes(attribute.String("newsletter.mode", mode.String())))
	defer span.End()

	res, err := o.svc.Run(ctx, mode)
	outcome := string(res.State)
	switch {
	case err != nil:
		outcome = errs.Code(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case res.Skipped:
		outcome = string(res.Reason)
		span.SetAttributes(attribute.String("newsletter.skip_reason", outcome))
	default:
		span.SetAttributes(
			attribute.Int("newsletter.articles", len(res.Articles)),
			attribute.Int("newsletter.subscribers", res.SubscriberCount),
			attribute.Int("newsletter.success", res.Dispatch.SuccessCount),
			attribute.Int("newsletter.failed", res.Dispatch.ErrorCount),
		)
	}
	o.runs.WithLabelValues(mode.Kind.String(), outcome).Inc()
	return res, err
}

func (o *ObservabilityService) Schedule(ctx context.Context) (ScheduleView, error) {
	ctx, span := o.tracer.Start(ctx, "Newsletter.Schedule")
	defer span.End()
	view, err := o.svc.Schedule(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return view, err
}

func (o *ObservabilityService) SendLogs(ctx context.Context, limit int) ([]domain.SendLogRecord, error) {
	ctx, span := o.tracer.Start(ctx, "Newsletter.SendLogs")
	defer span.End()
	logs, err := o.svc.SendLogs(ctx, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return logs, err
}
