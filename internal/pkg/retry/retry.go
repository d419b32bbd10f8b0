package retry

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

// Config 重试策略配置，间隔单位为毫秒
type Config struct {
	Type               string                    `yaml:"type"`
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	InitialInterval int   `yaml:"initialInterval"`
	MaxInterval     int   `yaml:"maxInterval"`
	MaxRetries      int32 `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	MaxRetries int32 `yaml:"maxRetries"`
	Interval   int   `yaml:"interval"`
}

// NewRetry 只用于启动时连接基础设施，投递本身不重试
func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("缺少 fixedInterval 配置")
		}
		return retry.NewFixedIntervalRetryStrategy(msToDuration(cfg.FixedInterval.Interval), cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("缺少 exponentialBackoff 配置")
		}
		return retry.NewExponentialBackoffRetryStrategy(
			msToDuration(cfg.ExponentialBackoff.InitialInterval),
			msToDuration(cfg.ExponentialBackoff.MaxInterval),
			cfg.ExponentialBackoff.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}

// Do 按策略重试 fn，直到成功或者策略放弃
func Do(strategy retry.Strategy, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("重试次数耗尽: %w", err)
		}
		time.Sleep(next)
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
