// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simulation

import (
	"context"
	"fmt"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

// Transport 没有配置发送凭证时使用，只打日志不真正发送
type Transport struct {
	logger *elog.Component
}

func NewTransport() *Transport {
	return &Transport{
		logger: elog.DefaultLogger,
	}
}

func (t *Transport) Send(_ context.Context, msg domain.Message) (domain.Receipt, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("生成模拟消息ID失败 %w", err)
	}
	t.logger.Info("模拟发送邮件",
		elog.String("to", msg.To),
		elog.String("subject", msg.Subject))
	return domain.Receipt{
		MessageID: "simulated-" + id.String(),
		Simulated: true,
	}, nil
}
