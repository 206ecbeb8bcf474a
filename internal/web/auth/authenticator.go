package auth

import (
	"crypto/subtle"
	"strings"

	"gitee.com/flycash/newsletter-platform/internal/errs"
)

type Config struct {
	// Secret 共享的派发密钥，例如定时任务使用
	Secret string `yaml:"secret"`
	// JwtKey 管理员令牌的签名密钥
	JwtKey string `yaml:"jwtKey"`
}

// Authenticator 校验派发凭证，两种凭证都没有配置时拒绝所有请求
type Authenticator struct {
	secret []byte
	jwt    *JwtAuth
}

func NewAuthenticator(cfg Config) *Authenticator {
	a := &Authenticator{}
	if cfg.Secret != "" {
		a.secret = []byte(cfg.Secret)
	}
	if cfg.JwtKey != "" {
		a.jwt = NewJwtAuth(cfg.JwtKey)
	}
	return a
}

// Verify header 为完整的 Authorization 头
func (a *Authenticator) Verify(header string) error {
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return errs.ErrUnauthorized
	}
	if len(a.secret) > 0 && subtle.ConstantTimeCompare([]byte(token), a.secret) == 1 {
		return nil
	}
	if a.jwt != nil && a.jwt.IsAdmin(token) {
		return nil
	}
	return errs.ErrUnauthorized
}
