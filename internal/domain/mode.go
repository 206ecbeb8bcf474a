package domain

import (
	"strconv"
	"strings"
)

// ModeKind 调用模式
type ModeKind string

const (
	ModeScheduled        ModeKind = "scheduled"         // 按定时配置发送
	ModeForcedToday      ModeKind = "forced_today"      // 跳过日期检查，但只发今天发布的文章
	ModeForcedImmediate  ModeKind = "forced_immediate"  // 跳过日期检查，发送最近发布的文章
	ModeExplicitArticles ModeKind = "explicit_articles" // 发送指定的文章
)

func (k ModeKind) String() string {
	return string(k)
}

// InvocationMode 在入口处构造一次，之后只读
type InvocationMode struct {
	Kind       ModeKind
	ArticleIDs []int64
}

// NewInvocationMode 按优先级构造调用模式：
// 指定文章 > 立即发送 > 强制今天 > 定时
func NewInvocationMode(articleIDs []int64, immediate, today bool) InvocationMode {
	switch {
	case len(articleIDs) > 0:
		ids := make([]int64, len(articleIDs))
		copy(ids, articleIDs)
		return InvocationMode{Kind: ModeExplicitArticles, ArticleIDs: ids}
	case immediate:
		return InvocationMode{Kind: ModeForcedImmediate}
	case today:
		return InvocationMode{Kind: ModeForcedToday}
	default:
		return InvocationMode{Kind: ModeScheduled}
	}
}

// ScheduledMode 定时触发使用的模式
func ScheduledMode() InvocationMode {
	return InvocationMode{Kind: ModeScheduled}
}

// IsOverride 除定时模式之外的模式都会跳过定时检查
func (m InvocationMode) IsOverride() bool {
	return m.Kind != ModeScheduled
}

// String 用于日志和发送记录
func (m InvocationMode) String() string {
	if m.Kind != ModeExplicitArticles {
		return m.Kind.String()
	}
	ids := make([]string, 0, len(m.ArticleIDs))
	for _, id := range m.ArticleIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	return m.Kind.String() + "(" + strings.Join(ids, ",") + ")"
}
