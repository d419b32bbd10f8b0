//go:build e2e

package idempotent

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyService_Exists(t *testing.T) {
	t.Parallel()

	// 检查Redis是否可用
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	t.Cleanup(func() {
		client.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis server is not available, skipping redis implementation tests")
		return
	}

	key := "test-" + time.Now().Format(time.RFC3339Nano)
	t.Cleanup(func() {
		client.Del(context.Background(), "idempotent:"+key)
	})

	svc := NewRedisService(client, time.Minute)
	exists, err := svc.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	ttl, err := client.TTL(ctx, "idempotent:"+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
