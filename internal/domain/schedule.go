package domain

import "time"

// Frequency 邮件简报的发送频率
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"    // 每天
	FrequencyWeekdays Frequency = "weekdays" // 工作日（周一至周五）
	FrequencyWeekly   Frequency = "weekly"   // 每周固定一天
	FrequencyMonthly  Frequency = "monthly"  // 每月固定一天
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekdays, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func (f Frequency) String() string {
	return string(f)
}

const (
	// DefaultToleranceMinutes 未配置容忍窗口时使用的默认值
	DefaultToleranceMinutes = 15
	// MaxToleranceMinutes 容忍窗口上限，超过之后"是否到点"就失去意义了
	MaxToleranceMinutes = 60
	// MaxDayOfMonth 月度发送只允许 1-28 号，避免月末日期不存在
	MaxDayOfMonth = 28
)

// ScheduleConfig 定时发送配置，每次调用加载一次，调用期间不可变
type ScheduleConfig struct {
	Frequency Frequency `json:"frequency"`
	// SendTime 24 小时制 HH:MM
	SendTime string `json:"sendTime"`
	// Timezone IANA 时区，例如 Asia/Shanghai
	Timezone string `json:"timezone"`
	// Weekday 仅 weekly 使用，例如 monday，为空时为周一
	Weekday string `json:"weekday,omitempty"`
	// DayOfMonth 仅 monthly 使用
	DayOfMonth int `json:"dayOfMonth,omitempty"`
	// ToleranceMinutes 触发时间与 SendTime 的容忍窗口，为 0 时使用默认值
	ToleranceMinutes int `json:"toleranceMinutes,omitempty"`
}

// Tolerance 返回生效的容忍窗口
func (c ScheduleConfig) Tolerance() time.Duration {
	if c.ToleranceMinutes <= 0 {
		return DefaultToleranceMinutes * time.Minute
	}
	return time.Duration(c.ToleranceMinutes) * time.Minute
}

// ScheduleDecision 由 ScheduleConfig 和当前时间计算得出，不落库
type ScheduleDecision struct {
	ShouldSendToday   bool      `json:"shouldSendToday"`
	IsScheduledTime   bool      `json:"isScheduledTime"`
	NextScheduledTime time.Time `json:"nextScheduledTime"`
}

// IsDue 今天需要发送，并且已经到了发送时间
func (d ScheduleDecision) IsDue() bool {
	return d.ShouldSendToday && d.IsScheduledTime
}
