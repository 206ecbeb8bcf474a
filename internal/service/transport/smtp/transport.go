package smtp

import (
	"context"
	"fmt"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	// TLS 为 false 时使用 opportunistic STARTTLS
	TLS bool `yaml:"tls"`
}

// sender 抽出来便于测试，*mail.Client 实现了它
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Transport struct {
	client sender
	from   string
}

// NewTransport 没有配置 Host 时返回 errs.ErrTransportUnavailable
func NewTransport(cfg Config) (*Transport, error) {
	if cfg.Host == "" {
		return nil, errs.ErrTransportUnavailable
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	policy := mail.TLSOpportunistic
	if cfg.TLS {
		policy = mail.TLSMandatory
	}
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password))
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("创建 SMTP 客户端失败 %w", err)
	}
	return newTransport(client, cfg.From), nil
}

func newTransport(client sender, from string) *Transport {
	return &Transport{client: client, from: from}
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) (domain.Receipt, error) {
	m, err := t.buildMsg(msg)
	if err != nil {
		return domain.Receipt{}, err
	}
	if err = t.client.DialAndSendWithContext(ctx, m); err != nil {
		return domain.Receipt{}, fmt.Errorf("SMTP 发送失败 %w", err)
	}
	return domain.Receipt{MessageID: m.GetMessageID()}, nil
}

func (t *Transport) buildMsg(msg domain.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(t.from); err != nil {
		return nil, fmt.Errorf("发件人地址不合法 %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("收件人地址不合法 %w", err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	return m, nil
}
