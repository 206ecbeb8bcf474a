package transport

import (
	"context"

	"gitee.com/flycash/newsletter-platform/internal/domain"
)

// Transport 邮件发送通道
//
//go:generate mockgen -source=./types.go -destination=./mocks/transport.mock.go -package=transportmocks -typed Transport
type Transport interface {
	// Send 发送单封邮件，不做重试
	Send(ctx context.Context, msg domain.Message) (domain.Receipt, error)
}
