package main

import (
	_ "time/tzdata"

	"gitee.com/flycash/newsletter-platform/cmd/platform/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	// ego.New 负责加载配置，必须在初始化组件之前
	e := ego.New()
	app := ioc.InitApp()
	if err := e.Serve(egovernor.Load("server.governor").Build(), app.Web).
		Cron(app.Crons...).
		Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
