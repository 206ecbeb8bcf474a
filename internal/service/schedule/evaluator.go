package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	"github.com/robfig/cron/v3"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// Evaluator 校验过的定时配置，Evaluate 是纯函数，不读时钟
type Evaluator struct {
	cfg       domain.ScheduleConfig
	loc       *time.Location
	sendAt    time.Duration
	tolerance time.Duration
	weekday   time.Weekday
	next      cron.Schedule
}

// ValidateConfig 返回所有校验错误，为空表示配置合法
func ValidateConfig(cfg domain.ScheduleConfig) []string {
	var problems []string
	if !cfg.Frequency.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown frequency %q, expected one of daily, weekdays, weekly, monthly", cfg.Frequency))
	}
	if _, _, err := parseSendTime(cfg.SendTime); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := loadLocation(cfg.Timezone); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.Frequency == domain.FrequencyWeekly {
		if _, err := parseWeekday(cfg.Weekday); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if cfg.Frequency == domain.FrequencyMonthly &&
		(cfg.DayOfMonth < 1 || cfg.DayOfMonth > domain.MaxDayOfMonth) {
		problems = append(problems, fmt.Sprintf("invalid dayOfMonth %d, expected 1-%d", cfg.DayOfMonth, domain.MaxDayOfMonth))
	}
	if cfg.ToleranceMinutes < 0 || cfg.ToleranceMinutes > domain.MaxToleranceMinutes {
		problems = append(problems, fmt.Sprintf("invalid toleranceMinutes %d, expected 0-%d (0 = default)", cfg.ToleranceMinutes, domain.MaxToleranceMinutes))
	}
	return problems
}

// NewEvaluator 配置不合法时返回 errs.ErrInvalidConfig
func NewEvaluator(cfg domain.ScheduleConfig) (*Evaluator, error) {
	if problems := ValidateConfig(cfg); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	hour, minute, _ := parseSendTime(cfg.SendTime)
	loc, _ := loadLocation(cfg.Timezone)
	e := &Evaluator{
		cfg:       cfg,
		loc:       loc,
		sendAt:    time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute,
		tolerance: cfg.Tolerance(),
	}
	dom, dow := "*", "*"
	switch cfg.Frequency {
	case domain.FrequencyWeekdays:
		dow = "1-5"
	case domain.FrequencyWeekly:
		e.weekday, _ = parseWeekday(cfg.Weekday)
		dow = strconv.Itoa(int(e.weekday))
	case domain.FrequencyMonthly:
		dom = strconv.Itoa(cfg.DayOfMonth)
	}
	next, err := parser.Parse(fmt.Sprintf("%d %d %s * %s", minute, hour, dom, dow))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	e.next = next
	return e, nil
}

// Evaluate 校验配置之后计算决策
func Evaluate(cfg domain.ScheduleConfig, now time.Time) (domain.ScheduleDecision, error) {
	e, err := NewEvaluator(cfg)
	if err != nil {
		return domain.ScheduleDecision{}, err
	}
	return e.Evaluate(now), nil
}

func (e *Evaluator) Evaluate(now time.Time) domain.ScheduleDecision {
	local := now.In(e.loc)
	d := domain.ScheduleDecision{
		ShouldSendToday: e.shouldSendOn(local),
		IsScheduledTime: e.isScheduledTime(local),
	}
	if d.ShouldSendToday && d.IsScheduledTime {
		d.NextScheduledTime = now
		return d
	}
	d.NextScheduledTime = e.next.Next(local)
	return d
}

// Location 配置的时区
func (e *Evaluator) Location() *time.Location {
	return e.loc
}

func (e *Evaluator) Config() domain.ScheduleConfig {
	return e.cfg
}

func (e *Evaluator) shouldSendOn(local time.Time) bool {
	switch e.cfg.Frequency {
	case domain.FrequencyDaily:
		return true
	case domain.FrequencyWeekdays:
		wd := local.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case domain.FrequencyWeekly:
		return local.Weekday() == e.weekday
	case domain.FrequencyMonthly:
		return local.Day() == e.cfg.DayOfMonth
	default:
		return false
	}
}

// isScheduledTime 窗口为 [sendAt, sendAt+tolerance)，可能跨过午夜
func (e *Evaluator) isScheduledTime(local time.Time) bool {
	// 按墙上时间计算，夏令时切换当天也不会偏移
	h, m, s := local.Clock()
	tod := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(local.Nanosecond())
	end := e.sendAt + e.tolerance
	const day = 24 * time.Hour
	if end <= day {
		return tod >= e.sendAt && tod < end
	}
	return tod >= e.sendAt || tod < end-day
}

func parseSendTime(s string) (int, int, error) {
	bad := fmt.Errorf("invalid sendTime %q, expected 24-hour HH:MM", s)
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, bad
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, bad
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, bad
	}
	return hour, minute, nil
}

func loadLocation(tz string) (*time.Location, error) {
	// "" 和 Local 会被 LoadLocation 接受，但不是确定的时区
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("invalid timezone %q, expected an IANA zone such as Asia/Shanghai", tz)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q, expected an IANA zone such as Asia/Shanghai", tz)
	}
	return loc, nil
}

// parseWeekday 为空时默认周一
func parseWeekday(s string) (time.Weekday, error) {
	if s == "" {
		return time.Monday, nil
	}
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return wd, nil
}
