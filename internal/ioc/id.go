package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

// InitIDGenerator 多实例部署时需要为每个实例配置不同的 machineId
func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		MachineID uint16 `yaml:"machineId"`
	}
	cfg := Config{MachineID: 1}
	if err := econf.UnmarshalKey("newsletter.idGenerator", &cfg); err != nil {
		panic(err)
	}
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) {
			return cfg.MachineID, nil
		},
	})
	if sf == nil {
		panic("创建 sonyflake 失败")
	}
	return sf
}
