package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport_WithoutKey(t *testing.T) {
	t.Parallel()
	_, err := NewTransport(resty.New(), Config{})
	assert.ErrorIs(t, err, errs.ErrTransportUnavailable)
}

func TestTransport_Send(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		wantID  string
		wantErr bool
	}{
		{
			name: "发送成功",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/emails", r.URL.Path)
				assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
				var req sendRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, []string{"a@example.com"}, req.To)
				assert.Equal(t, "news@example.com", req.From)
				assert.Equal(t, "Daily: hi", req.Subject)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"msg-1"}`))
			},
			wantID: "msg-1",
		},
		{
			name: "邮件服务返回错误",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"name":"validation_error","message":"bad to"}`))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			tr, err := NewTransport(resty.New().SetBaseURL(server.URL), Config{APIKey: "key", From: "news@example.com"})
			require.NoError(t, err)
			receipt, err := tr.Send(context.Background(), domain.Message{
				To:      "a@example.com",
				Subject: "Daily: hi",
				HTML:    "<p>hi</p>",
				Text:    "hi",
			})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, receipt.MessageID)
			assert.False(t, receipt.Simulated)
		})
	}
}
