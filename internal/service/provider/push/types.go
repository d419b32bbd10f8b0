package push

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
)

// Payload 发往单台设备或者一个人群主题的推送
// Token 和 Topic 只会设置一个
type Payload struct {
	Token        string
	Topic        string
	Notification domain.PushNotification
	Data         map[string]string
	// Badge 为 nil 表示不设置角标
	Badge   *int
	Android *domain.AndroidConfig
	Webpush *domain.WebpushConfig
}

// TokenFailure 批量发送中单个设备的失败
type TokenFailure struct {
	Token string
	Err   error
}

type BatchResult struct {
	SuccessCount int
	FailureCount int
	Failures     []TokenFailure
}

// Client 推送供应商客户端，每次调用打开，用完必须 Close
//
//go:generate mockgen -source=./types.go -destination=./mocks/push.mock.go -package=pushmocks Client,ClientFactory
type Client interface {
	// SendEach 批量发送，部分失败不返回 error
	// 所有批次都失败时返回 error，BatchResult 仍然带上失败的设备
	SendEach(ctx context.Context, payloads []Payload) (BatchResult, error)
	// Send 发送单条，一般用于主题广播
	Send(ctx context.Context, payload Payload) (string, error)
	Close() error
}

// ClientFactory 按应用打开推送客户端
type ClientFactory interface {
	Open(ctx context.Context, platform domain.Platform) (Client, error)
}
