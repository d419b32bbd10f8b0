package push

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessaging struct {
	batches [][]*messaging.Message
	sent    []*messaging.Message
	// failTokens 这些 token 发送失败
	failTokens map[string]bool
	// failCalls 第几次 SendEach 调用整批失败，从 0 开始
	failCalls map[int]bool
	calls     int
	err       error
}

func (f *fakeMessaging) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)
	return "projects/p/messages/1", nil
}

func (f *fakeMessaging) SendEach(_ context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	call := f.calls
	f.calls++
	if f.failCalls[call] {
		return nil, errors.New("unavailable")
	}
	f.batches = append(f.batches, messages)
	resp := &messaging.BatchResponse{}
	for _, m := range messages {
		if f.failTokens[m.Token] {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: errors.New("unregistered")})
			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true, MessageID: "m"})
	}
	return resp, nil
}

func TestFCMClient_SendEach(t *testing.T) {
	t.Parallel()

	api := &fakeMessaging{failTokens: map[string]bool{"t2": true}}
	cli := NewFCMClient(api)
	payloads := make([]Payload, 0, maxBatchSize+2)
	for i := 0; i < maxBatchSize+2; i++ {
		payloads = append(payloads, Payload{Token: fmt.Sprintf("t%d", i)})
	}

	res, err := cli.SendEach(t.Context(), payloads)
	require.NoError(t, err)
	require.Len(t, api.batches, 2)
	assert.Len(t, api.batches[0], maxBatchSize)
	assert.Len(t, api.batches[1], 2)
	assert.Equal(t, maxBatchSize+1, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "t2", res.Failures[0].Token)

	require.NoError(t, cli.Close())
	_, err = cli.SendEach(t.Context(), payloads)
	assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
}

func TestFCMClient_SendEachBatchFailed(t *testing.T) {
	t.Parallel()

	payloads := make([]Payload, 0, maxBatchSize+2)
	for i := 0; i < maxBatchSize+2; i++ {
		payloads = append(payloads, Payload{Token: fmt.Sprintf("t%d", i)})
	}

	testCases := []struct {
		name        string
		failCalls   map[int]bool
		wantSuccess int
		wantFailure int
		wantErr     bool
	}{
		{name: "后一批失败", failCalls: map[int]bool{1: true}, wantSuccess: maxBatchSize, wantFailure: 2},
		{name: "前一批失败", failCalls: map[int]bool{0: true}, wantSuccess: 2, wantFailure: maxBatchSize},
		{name: "全部批次失败", failCalls: map[int]bool{0: true, 1: true}, wantFailure: maxBatchSize + 2, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cli := NewFCMClient(&fakeMessaging{failCalls: tc.failCalls})
			res, err := cli.SendEach(t.Context(), payloads)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantSuccess, res.SuccessCount)
			assert.Equal(t, tc.wantFailure, res.FailureCount)
			assert.Len(t, res.Failures, tc.wantFailure)
		})
	}
}

func TestFCMClient_SendFailed(t *testing.T) {
	t.Parallel()

	cli := NewFCMClient(&fakeMessaging{err: errors.New("unavailable")})
	_, err := cli.Send(t.Context(), Payload{Topic: "drivers"})
	assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
}

func TestToMessage(t *testing.T) {
	t.Parallel()

	badge := 3
	testCases := []struct {
		name    string
		payload Payload
		assert  func(t *testing.T, msg *messaging.Message)
	}{
		{
			name: "只有标题正文",
			payload: Payload{
				Token:        "t1",
				Notification: domain.PushNotification{Title: "hi", Body: "there"},
				Data:         map[string]string{"k": "v"},
			},
			assert: func(t *testing.T, msg *messaging.Message) {
				assert.Equal(t, "t1", msg.Token)
				assert.Equal(t, "hi", msg.Notification.Title)
				assert.Equal(t, map[string]string{"k": "v"}, msg.Data)
				assert.Nil(t, msg.Android)
				assert.Nil(t, msg.APNS)
				assert.Nil(t, msg.Webpush)
			},
		},
		{
			name:    "带角标",
			payload: Payload{Token: "t1", Badge: &badge},
			assert: func(t *testing.T, msg *messaging.Message) {
				require.NotNil(t, msg.APNS)
				assert.Equal(t, 3, *msg.APNS.Payload.Aps.Badge)
				require.NotNil(t, msg.Android)
				assert.Equal(t, 3, *msg.Android.Notification.NotificationCount)
			},
		},
		{
			name: "合并 Android 和 Web 配置",
			payload: Payload{
				Topic: "riders",
				Badge: &badge,
				Android: &domain.AndroidConfig{
					Priority:     "high",
					TTLSeconds:   60,
					Notification: &domain.AndroidNotification{ChannelID: "rides", Sound: "default"},
				},
				Webpush: &domain.WebpushConfig{Link: "https://example.com/rides", Icon: "icon.png"},
			},
			assert: func(t *testing.T, msg *messaging.Message) {
				assert.Equal(t, "riders", msg.Topic)
				assert.Equal(t, "high", msg.Android.Priority)
				assert.Equal(t, time.Minute, *msg.Android.TTL)
				assert.Equal(t, "rides", msg.Android.Notification.ChannelID)
				assert.Equal(t, 3, *msg.Android.Notification.NotificationCount)
				assert.Equal(t, "https://example.com/rides", msg.Webpush.FCMOptions.Link)
				assert.Equal(t, "icon.png", msg.Webpush.Notification.Icon)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.assert(t, toMessage(tc.payload))
		})
	}
}

func TestFCMFactory_Open(t *testing.T) {
	t.Parallel()

	f := NewFCMFactory(map[domain.Platform]AppConfig{
		domain.PlatformRider: {ProjectID: "rider-app"},
	})
	f.newMessaging = func(_ context.Context, cfg AppConfig) (MessagingAPI, error) {
		if cfg.ProjectID != "rider-app" {
			return nil, errors.New("unexpected project")
		}
		return &fakeMessaging{}, nil
	}

	cli, err := f.Open(t.Context(), domain.PlatformRider)
	require.NoError(t, err)
	assert.NoError(t, cli.Close())

	_, err = f.Open(t.Context(), domain.PlatformDriver)
	assert.ErrorIs(t, err, errs.ErrUnknownProvider)
}
