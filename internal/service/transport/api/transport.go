package api

import (
	"context"
	"fmt"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	APIKey string `yaml:"apiKey"`
	From   string `yaml:"from"`
	// Path 相对 ehttp 组件 addr 的路径
	Path string `yaml:"path"`
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Transport 调用 HTTP 邮件服务接口发送
type Transport struct {
	client *resty.Client
	cfg    Config
}

// NewTransport 没有 APIKey 时返回 errs.ErrTransportUnavailable
func NewTransport(client *resty.Client, cfg Config) (*Transport, error) {
	if cfg.APIKey == "" {
		return nil, errs.ErrTransportUnavailable
	}
	if cfg.Path == "" {
		cfg.Path = "/emails"
	}
	return &Transport{
		client: client,
		cfg:    cfg,
	}, nil
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) (domain.Receipt, error) {
	var (
		res    sendResponse
		errRes errorResponse
	)
	resp, err := t.client.R().
		SetContext(ctx).
		SetAuthToken(t.cfg.APIKey).
		SetBody(sendRequest{
			From:    t.cfg.From,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
			Text:    msg.Text,
		}).
		SetResult(&res).
		SetError(&errRes).
		Post(t.cfg.Path)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("调用邮件服务失败 %w", err)
	}
	if resp.IsError() {
		return domain.Receipt{}, fmt.Errorf("邮件服务返回错误 status=%d name=%s message=%s",
			resp.StatusCode(), errRes.Name, errRes.Message)
	}
	return domain.Receipt{MessageID: res.ID}, nil
}
