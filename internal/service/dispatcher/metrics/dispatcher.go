// Package metrics 为渠道投递添加指标收集的装饰器
package metrics

import (
	"context"
	"sync"
	"time"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	dispatchDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "dispatcher_dispatch_duration_seconds",
			Help:       "渠道投递耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"channel", "status"},
	)

	dispatchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatcher_dispatch_total",
			Help: "渠道投递总数",
		},
		[]string{"channel"},
	)

	dispatchStatusCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatcher_dispatch_status_total",
			Help: "渠道投递状态统计",
		},
		[]string{"channel", "status"},
	)

	registerOnce sync.Once
)

// Dispatcher 为渠道投递添加指标收集的装饰器
type Dispatcher[M any] struct {
	dispatcher dispatcher.Dispatcher[M]
	channel    domain.Channel
}

// NewDispatcher 同一进程内可以创建多个，指标只注册一次
func NewDispatcher[M any](channel domain.Channel, d dispatcher.Dispatcher[M]) *Dispatcher[M] {
	registerOnce.Do(func() {
		prometheus.MustRegister(dispatchDurationSummary, dispatchCounter, dispatchStatusCounter)
	})
	return &Dispatcher[M]{
		dispatcher: d,
		channel:    channel,
	}
}

func (d *Dispatcher[M]) Dispatch(ctx context.Context, msg M) domain.DispatchResult {
	startTime := time.Now()
	dispatchCounter.WithLabelValues(d.channel.String()).Inc()

	res := d.dispatcher.Dispatch(ctx, msg)

	duration := time.Since(startTime).Seconds()
	dispatchStatusCounter.WithLabelValues(d.channel.String(), string(res.Status)).Inc()
	dispatchDurationSummary.WithLabelValues(d.channel.String(), string(res.Status)).Observe(duration)
	return res
}
