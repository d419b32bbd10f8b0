package ioc

import (
	"sync"

	redismetrics "gitee.com/flycash/ride-notification/internal/pkg/redis/metrics"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

func InitRedisClient() *redis.Client {
	redisOnce.Do(func() {
		type Config struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		}
		var cfg Config
		err := econf.UnmarshalKey("redis", &cfg)
		if err != nil {
			panic(err)
		}
		redisClient = redismetrics.WithMetrics(redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}))
	})
	return redisClient
}
