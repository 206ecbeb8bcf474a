package domain

import "time"

// SendLogStatus 发送记录状态
type SendLogStatus string

const (
	SendLogStatusSent    SendLogStatus = "sent"
	SendLogStatusPartial SendLogStatus = "partial"
	SendLogStatusSkipped SendLogStatus = "skipped"
	SendLogStatusFailed  SendLogStatus = "failed"
)

func (s SendLogStatus) String() string {
	return string(s)
}

// SendLogRecord 每次进入派发阶段的调用对应一条，只追加不修改
type SendLogRecord struct {
	ID             uint64        `json:"id"`
	RecipientCount int           `json:"recipientCount"`
	ArticleIDs     []int64       `json:"articleIds"`
	Subject        string        `json:"subject"`
	Status         SendLogStatus `json:"status"`
	ErrorMessage   string        `json:"errorMessage,omitempty"`
	Mode           string        `json:"mode"`
	SuccessCount   int           `json:"successCount"`
	ErrorCount     int           `json:"errorCount"`
	CreatedAt      time.Time     `json:"createdAt"`
}
