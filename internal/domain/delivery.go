package domain

// Message 发给单个收件人的邮件
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Receipt 邮件通道返回的回执
type Receipt struct {
	MessageID string
	// Simulated 为 true 表示没有真正联系邮件服务
	Simulated bool
}

// DeliveryOutcome 单个收件人的发送结果，失败也会保留
type DeliveryOutcome struct {
	Email     string `json:"email"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Simulated bool   `json:"simulated,omitempty"`
	// Attempted 为 false 表示派发超时，没有发起发送
	Attempted bool `json:"attempted"`
}

// DispatchResult 一次派发的汇总
type DispatchResult struct {
	Subject      string
	Outcomes     []DeliveryOutcome
	SuccessCount int
	ErrorCount   int
	Simulated    bool
}
