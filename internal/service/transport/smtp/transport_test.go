package smtp

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	err  error
	msgs []*mail.Msg
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.msgs = append(f.msgs, messages...)
	return f.err
}

func TestNewTransport_WithoutHost(t *testing.T) {
	t.Parallel()
	_, err := NewTransport(Config{})
	assert.ErrorIs(t, err, errs.ErrTransportUnavailable)
}

func TestTransport_Send(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		from    string
		msg     domain.Message
		sendErr error
		wantErr bool
	}{
		{
			name: "发送成功",
			from: "news@example.com",
			msg:  domain.Message{To: "a@example.com", Subject: "Daily: hi", HTML: "<p>hi</p>", Text: "hi"},
		},
		{
			name:    "收件人地址不合法",
			from:    "news@example.com",
			msg:     domain.Message{To: "not an email", Subject: "s"},
			wantErr: true,
		},
		{
			name:    "SMTP 服务错误",
			from:    "news@example.com",
			msg:     domain.Message{To: "a@example.com", Subject: "s"},
			sendErr: errors.New("550 mailbox unavailable"),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := &fakeSender{err: tc.sendErr}
			receipt, err := newTransport(s, tc.from).Send(context.Background(), tc.msg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, s.msgs, 1)
			assert.NotEmpty(t, receipt.MessageID)
			assert.Equal(t, []string{"<a@example.com>"}, s.msgs[0].GetToString())
		})
	}
}
