package domain

// Subscriber 订阅者，流水线只读不写
type Subscriber struct {
	SubscriptionID   int64
	Email            string
	UnsubscribeToken string
	Username         string
	DisplayName      string
	IsActive         bool
}

// Greeting 渲染问候语时使用的名字
func (s Subscriber) Greeting() string {
	switch {
	case s.DisplayName != "":
		return s.DisplayName
	case s.Username != "":
		return s.Username
	default:
		return "there"
	}
}
