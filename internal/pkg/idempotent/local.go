package idempotent

import (
	"context"
	"time"

	ca "github.com/patrickmn/go-cache"
)

var _ IdempotencyService = (*LocalIdempotencyService)(nil)

// LocalIdempotencyService 进程内实现，只在单实例部署或者本地调试时使用
type LocalIdempotencyService struct {
	c   *ca.Cache
	ttl time.Duration
}

func NewLocalService(ttl time.Duration) *LocalIdempotencyService {
	const cleanupInterval = time.Minute
	return &LocalIdempotencyService{
		c:   ca.New(ttl, cleanupInterval),
		ttl: ttl,
	}
}

func (s *LocalIdempotencyService) Exists(_ context.Context, key string) (bool, error) {
	// Add 在 key 已存在且未过期时返回错误
	if err := s.c.Add(key, struct{}{}, s.ttl); err != nil {
		return true, nil
	}
	return false, nil
}
