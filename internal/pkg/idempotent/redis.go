package idempotent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ IdempotencyService = (*RedisIdempotencyService)(nil)

type RedisIdempotencyService struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration // 标记的保留时间，应大于队列的最大重投时间
}

func NewRedisService(client redis.Cmdable, ttl time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client:    client,
		keyPrefix: "idempotent:",
		ttl:       ttl,
	}
}

func (s *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, err
	}
	// 设置成功说明是第一次出现
	return !ok, nil
}
