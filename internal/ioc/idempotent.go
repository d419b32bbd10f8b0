package ioc

import (
	"fmt"
	"time"

	"gitee.com/flycash/ride-notification/internal/pkg/idempotent"
	"github.com/gotomicro/ego/core/econf"
)

// InitIdempotencyService 默认关闭，返回 nil 时重复投递的事件会重复通知
func InitIdempotencyService() idempotent.IdempotencyService {
	type Config struct {
		// Type 为 redis、local，为空表示不去重
		Type string        `yaml:"type"`
		TTL  time.Duration `yaml:"ttl"`
	}
	const defaultTTL = 24 * time.Hour
	var cfg Config
	err := econf.UnmarshalKey("idempotency", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	switch cfg.Type {
	case "":
		return nil
	case "redis":
		return idempotent.NewRedisService(InitRedisClient(), cfg.TTL)
	case "local":
		return idempotent.NewLocalService(cfg.TTL)
	default:
		panic(fmt.Sprintf("未知的去重方式 %s", cfg.Type))
	}
}
