package tracing

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	transportmocks "gitee.com/flycash/newsletter-platform/internal/service/transport/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTransport_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := transportmocks.NewMockTransport(ctrl)
	msg := domain.Message{To: "a@example.com", Subject: "s"}
	inner.EXPECT().Send(gomock.Any(), msg).Return(domain.Receipt{MessageID: "1"}, nil)
	inner.EXPECT().Send(gomock.Any(), msg).Return(domain.Receipt{}, errors.New("boom"))

	tr := NewTransport("smtp", inner)
	receipt, err := tr.Send(context.Background(), msg)
	assert.NoError(t, err)
	assert.Equal(t, "1", receipt.MessageID)
	_, err = tr.Send(context.Background(), msg)
	assert.EqualError(t, err, "boom")
}
