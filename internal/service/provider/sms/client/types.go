package client

import (
	"context"
	"errors"
)

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("发送短信失败")
)

const OK = "OK"

// Client 短信供应商客户端
//
//go:generate mockgen -source=./types.go -destination=../mocks/client.mock.go -package=smsmocks Client
type Client interface {
	// Send 发送一条短信，返回供应商的请求 ID
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	// PhoneNumber E.164 格式
	PhoneNumber string
	// SignName 发送方签名，AWS SNS 中为 SenderID
	SignName string
	Message  string
}

type SendResp struct {
	RequestID string
	MessageID string
}
