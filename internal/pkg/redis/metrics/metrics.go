package metrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	commandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_notification_redis_commands_total",
			Help: "去重使用的 Redis 命令执行次数",
		},
		[]string{"command", "status"},
	)

	commandDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "ride_notification_redis_command_duration_seconds",
			Help:       "去重使用的 Redis 命令耗时",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"command"},
	)

	registerOnce sync.Once
)

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(commandCounter, commandDuration)
	})
}

var _ redis.Hook = (*Hook)(nil)

// Hook 统计单条命令，去重只用到 SETNX，不统计 pipeline
type Hook struct{}

func NewMetricsHook() *Hook {
	register()
	return &Hook{}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		status := statusSuccess
		// redis.Nil 不算失败
		if err != nil && !errors.Is(err, redis.Nil) {
			status = statusError
		}
		commandCounter.WithLabelValues(cmd.Name(), status).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// WithMetrics 给客户端挂上指标钩子
func WithMetrics(client *redis.Client) *redis.Client {
	client.AddHook(NewMetricsHook())
	return client
}
