package tracing

import (
	"context"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/service/transport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Transport 为邮件通道添加链路追踪的装饰器
type Transport struct {
	transport transport.Transport
	tracer    trace.Tracer
	name      string
}

func NewTransport(name string, t transport.Transport) *Transport {
	return &Transport{
		transport: t,
		tracer:    otel.Tracer("newsletter-platform/transport"),
		name:      name,
	}
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) (domain.Receipt, error) {
	ctx, span := t.tracer.Start(ctx, "Transport.Send",
		trace.WithAttributes(
			attribute.String("transport.name", t.name),
			attribute.String("message.subject", msg.Subject),
		))
	defer span.End()

	receipt, err := t.transport.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.String("message.id", receipt.MessageID),
			attribute.Bool("message.simulated", receipt.Simulated),
		)
	}
	return receipt, err
}
