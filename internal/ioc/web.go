package ioc

import (
	"gitee.com/flycash/newsletter-platform/internal/web/auth"
	newsletterweb "gitee.com/flycash/newsletter-platform/internal/web/newsletter"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

func InitAuthenticator() *auth.Authenticator {
	var cfg auth.Config
	if err := econf.UnmarshalKey("newsletter.auth", &cfg); err != nil {
		panic(err)
	}
	if cfg.Secret == "" && cfg.JwtKey == "" {
		elog.DefaultLogger.Warn("未配置派发凭证，所有简报接口都会被拒绝")
	}
	return auth.NewAuthenticator(cfg)
}

func InitWebServer(handler *newsletterweb.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	handler.PublicRoutes(server.Engine)
	return server
}
