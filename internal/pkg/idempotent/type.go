package idempotent

import "context"

//go:generate mockgen -source=./type.go -destination=./mocks/idempotent.mock.go -package=idempotentmocks IdempotencyService
type IdempotencyService interface {
	// Exists 检查 key 是否已经出现过，没有出现过时顺便打上标记
	Exists(ctx context.Context, key string) (bool, error)
}
