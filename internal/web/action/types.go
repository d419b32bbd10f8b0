package action

import "gitee.com/flycash/ride-notification/internal/domain"

// sessionUserIDKey 动作调用方的用户 ID
const sessionUserIDKey = "x-hasura-user-id"

// Request 数据 API 动作回调的请求体
type Request[T any] struct {
	Action           Action            `json:"action"`
	Input            T                 `json:"input"`
	SessionVariables map[string]string `json:"session_variables"`
}

type Action struct {
	Name string `json:"name"`
}

type SendPushReq = Request[domain.PushMessage]

type BadgeCountInput struct {
	UserID string `json:"user_id"`
}

type BadgeCountReq = Request[BadgeCountInput]

type SendPushResp struct {
	Message      string `json:"message"`
	Status       string `json:"status,omitempty"`
	SuccessCount int    `json:"successCount"`
	FailureCount int    `json:"failureCount"`
}

type BadgeCountResp struct {
	Count int `json:"count"`
}

// ErrorResp 失败时只返回 message
type ErrorResp struct {
	Message string `json:"message"`
}
