package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter       = errors.New("参数错误")
	ErrUnauthorized           = errors.New("缺少或无效的派发凭证")
	ErrInvalidConfig          = errors.New("定时配置无效")
	ErrPersistenceUnavailable = errors.New("存储不可用")
	ErrDispatchInProgress     = errors.New("已有派发任务正在进行")
	ErrTransportUnavailable   = errors.New("未配置邮件发送凭证")
	ErrLockNotHeld            = errors.New("未持有派发锁")

	ErrArticleNotFound = errors.New("文章不存在")
	ErrConfigNotFound  = errors.New("定时配置不存在")
)

// 对外暴露的稳定错误码，调用方依赖它做程序化处理
const (
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeInvalidConfig          = "INVALID_CONFIG"
	CodeDispatchInProgress     = "DISPATCH_IN_PROGRESS"
	CodePersistenceUnavailable = "PERSISTENCE_UNAVAILABLE"
	CodeInternal               = "INTERNAL_ERROR"
)

// Code 将错误映射为稳定的错误码
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidParameter):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidConfig):
		return CodeInvalidConfig
	case errors.Is(err, ErrDispatchInProgress):
		return CodeDispatchInProgress
	case errors.Is(err, ErrPersistenceUnavailable):
		return CodePersistenceUnavailable
	default:
		return CodeInternal
	}
}
