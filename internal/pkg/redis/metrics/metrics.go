package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	successStatus = "success"
	errorStatus   = "error"
)

// Hook 实现了 redis.Hook 接口，为所有 Redis 操作添加指标收集
type Hook struct {
	commandCounter   *prometheus.CounterVec
	commandDuration  *prometheus.SummaryVec
	pipelineCounter  *prometheus.CounterVec
	pipelineDuration prometheus.Summary
	dialCounter      *prometheus.CounterVec
}

// NewHook reg 为 nil 时注册到默认的 registry
func NewHook(reg prometheus.Registerer) *Hook {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	h := &Hook{
		commandCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_redis_commands_total",
			Help: "Redis 命令执行次数",
		}, []string{"command", "status"}),
		commandDuration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "newsletter_redis_command_duration_seconds",
			Help:       "Redis 命令耗时（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"command"}),
		pipelineCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_redis_pipelines_total",
			Help: "Redis 管道执行次数",
		}, []string{"status"}),
		pipelineDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "newsletter_redis_pipeline_duration_seconds",
			Help:       "Redis 管道耗时（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		dialCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_redis_dials_total",
			Help: "Redis 建立连接次数",
		}, []string{"status"}),
	}
	reg.MustRegister(h.commandCounter, h.commandDuration, h.pipelineCounter, h.pipelineDuration, h.dialCounter)
	return h
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commandCounter.WithLabelValues(cmd.Name(), statusOf(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if len(cmds) == 0 {
			return next(ctx, cmds)
		}
		start := time.Now()
		err := next(ctx, cmds)
		h.pipelineDuration.Observe(time.Since(start).Seconds())
		status := statusOf(err)
		for _, cmd := range cmds {
			if statusOf(cmd.Err()) == errorStatus {
				status = errorStatus
				break
			}
		}
		h.pipelineCounter.WithLabelValues(status).Inc()
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.dialCounter.WithLabelValues(statusOf(err)).Inc()
		return conn, err
	}
}

// redis.Nil 表示键不存在，不算失败
func statusOf(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return errorStatus
	}
	return successStatus
}

// WithMetrics 为 Redis 客户端添加指标收集
func WithMetrics(client *redis.Client, reg prometheus.Registerer) *redis.Client {
	client.AddHook(NewHook(reg))
	return client
}
