package push

import (
	"context"
	"fmt"
	"sync"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"google.golang.org/api/option"
)

// FCM 单次批量最多 500 条
const maxBatchSize = 500

// MessagingAPI firebase messaging 客户端中用到的方法
type MessagingAPI interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

// AppConfig 一个应用对应的 firebase 项目
type AppConfig struct {
	ProjectID       string `yaml:"projectId"`
	CredentialsFile string `yaml:"credentialsFile"`
	CredentialsJSON string `yaml:"credentialsJson"`
}

var _ ClientFactory = (*FCMFactory)(nil)

type FCMFactory struct {
	apps map[domain.Platform]AppConfig
	// newMessaging 测试时替换
	newMessaging func(ctx context.Context, cfg AppConfig) (MessagingAPI, error)
}

func NewFCMFactory(apps map[domain.Platform]AppConfig) *FCMFactory {
	return &FCMFactory{
		apps:         apps,
		newMessaging: newFirebaseMessaging,
	}
}

func (f *FCMFactory) Open(ctx context.Context, platform domain.Platform) (Client, error) {
	cfg, ok := f.apps[platform]
	if !ok {
		return nil, fmt.Errorf("%w: 没有配置应用 %s 的推送", errs.ErrUnknownProvider, platform)
	}
	api, err := f.newMessaging(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	return NewFCMClient(api), nil
}

func newFirebaseMessaging(ctx context.Context, cfg AppConfig) (MessagingAPI, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, err
	}
	cli, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return cli, nil
}

var _ Client = (*FCMClient)(nil)

type FCMClient struct {
	mu     sync.Mutex
	api    MessagingAPI
	closed bool
}

func NewFCMClient(api MessagingAPI) *FCMClient {
	return &FCMClient{api: api}
}

func (c *FCMClient) messaging() (MessagingAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, fmt.Errorf("%w: 推送客户端已关闭", errs.ErrSendNotificationFailed)
	}
	return c.api, nil
}

func (c *FCMClient) SendEach(ctx context.Context, payloads []Payload) (BatchResult, error) {
	api, err := c.messaging()
	if err != nil {
		return BatchResult{}, err
	}
	var (
		res     BatchResult
		lastErr error
		failed  int
		batches int
	)
	for start := 0; start < len(payloads); start += maxBatchSize {
		end := min(start+maxBatchSize, len(payloads))
		batch := payloads[start:end]
		batches++
		msgs := make([]*messaging.Message, 0, len(batch))
		for _, p := range batch {
			msgs = append(msgs, toMessage(p))
		}
		resp, err := api.SendEach(ctx, msgs)
		if err != nil {
			// 整批失败记为这一批设备全部失败，继续发后面的批次
			lastErr = fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
			failed++
			res.FailureCount += len(batch)
			for _, p := range batch {
				res.Failures = append(res.Failures, TokenFailure{Token: p.Token, Err: err})
			}
			continue
		}
		res.SuccessCount += resp.SuccessCount
		res.FailureCount += resp.FailureCount
		for i, r := range resp.Responses {
			if r != nil && !r.Success {
				res.Failures = append(res.Failures, TokenFailure{Token: batch[i].Token, Err: r.Error})
			}
		}
	}
	if batches > 0 && failed == batches {
		return res, lastErr
	}
	return res, nil
}

func (c *FCMClient) Send(ctx context.Context, payload Payload) (string, error) {
	api, err := c.messaging()
	if err != nil {
		return "", err
	}
	id, err := api.Send(ctx, toMessage(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	return id, nil
}

// Close firebase 客户端没有需要释放的连接，关闭后不再允许发送
func (c *FCMClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func toMessage(p Payload) *messaging.Message {
	msg := &messaging.Message{
		Token: p.Token,
		Topic: p.Topic,
		Notification: &messaging.Notification{
			Title: p.Notification.Title,
			Body:  p.Notification.Body,
		},
		Data: p.Data,
	}

	var android *messaging.AndroidConfig
	if p.Android != nil {
		android = &messaging.AndroidConfig{
			Priority:    p.Android.Priority,
			CollapseKey: p.Android.CollapseKey,
		}
		if p.Android.TTLSeconds > 0 {
			ttl := time.Duration(p.Android.TTLSeconds) * time.Second
			android.TTL = &ttl
		}
		if n := p.Android.Notification; n != nil {
			android.Notification = &messaging.AndroidNotification{
				ChannelID:   n.ChannelID,
				Sound:       n.Sound,
				ClickAction: n.ClickAction,
				Icon:        n.Icon,
				Color:       n.Color,
			}
		}
	}

	if p.Badge != nil {
		badge := *p.Badge
		if android == nil {
			android = &messaging.AndroidConfig{}
		}
		if android.Notification == nil {
			android.Notification = &messaging.AndroidNotification{}
		}
		android.Notification.NotificationCount = &badge
		msg.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Badge: &badge},
			},
		}
	}
	msg.Android = android

	if p.Webpush != nil {
		msg.Webpush = &messaging.WebpushConfig{
			Headers: p.Webpush.Headers,
		}
		if p.Webpush.Link != "" {
			msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: p.Webpush.Link}
		}
		if p.Webpush.Icon != "" {
			msg.Webpush.Notification = &messaging.WebpushNotification{Icon: p.Webpush.Icon}
		}
	}
	return msg
}
