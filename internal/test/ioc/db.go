package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/newsletter-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

const dsn = "root:root@tcp(localhost:13316)/newsletter?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=True&loc=UTC&timeout=1s&readTimeout=3s&writeTimeout=3s&multiStatements=true"

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		time.Sleep(next)
	}
}

// InitDBAndTables 连接本地测试库并建表
func InitDBAndTables() *egorm.Component {
	WaitForDBSetup(dsn)
	econf.Set("mysql", map[string]any{
		"dsn":   dsn,
		"debug": true,
	})
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
