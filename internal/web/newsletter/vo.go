package newsletter

import (
	"encoding/json"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
)

// SendReq 请求体可以为空
type SendReq struct {
	ArticleIDs []json.Number `json:"articleIds"`
	ArticleID  *json.Number  `json:"articleId"`
}

type SendResp struct {
	Success           bool                     `json:"success"`
	Skipped           bool                     `json:"skipped,omitempty"`
	Reason            string                   `json:"reason,omitempty"`
	Message           string                   `json:"message"`
	NextScheduledTime *time.Time               `json:"nextScheduledTime,omitempty"`
	Stats             *Stats                   `json:"stats,omitempty"`
	Articles          []Article                `json:"articles,omitempty"`
	Results           []domain.DeliveryOutcome `json:"results,omitempty"`
}

type Stats struct {
	ArticlesFound    int    `json:"articlesFound"`
	SubscribersFound int    `json:"subscribersFound"`
	EmailsSent       int    `json:"emailsSent"`
	EmailsFailed     int    `json:"emailsFailed"`
	Subject          string `json:"subject"`
	Simulated        bool   `json:"simulated"`
}

type Article struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type ScheduleResp struct {
	Success  bool                    `json:"success"`
	Config   domain.ScheduleConfig   `json:"config"`
	Decision domain.ScheduleDecision `json:"decision"`
}

type SendLogsResp struct {
	Success bool                   `json:"success"`
	Logs    []domain.SendLogRecord `json:"logs"`
}

type ErrorResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
