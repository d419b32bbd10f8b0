package action

import (
	"net/http"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/badge"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 数据 API 的动作回调
// 所有失败都以 400 和 message 返回给调用方
type Handler struct {
	push   dispatcher.PushDispatcher
	badges badge.Service
	logger *elog.Component
}

func NewHandler(push dispatcher.PushDispatcher, badges badge.Service) *Handler {
	return &Handler{
		push:   push,
		badges: badges,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/actions")
	g.POST("/send-push", h.SendPush)
	g.POST("/badge-count", h.BadgeCount)
}

func (h *Handler) SendPush(ctx *gin.Context) {
	var req SendPushReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.fail(ctx, "请求体格式错误", err)
		return
	}
	res := h.push.Dispatch(ctx.Request.Context(), req.Input)
	if res.Failed() {
		h.fail(ctx, "推送失败", res.Err)
		return
	}
	ctx.JSON(http.StatusOK, SendPushResp{
		Message:      message(res),
		Status:       string(res.Status),
		SuccessCount: res.SuccessCount,
		FailureCount: res.FailureCount,
	})
}

func (h *Handler) BadgeCount(ctx *gin.Context) {
	var req BadgeCountReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.fail(ctx, "请求体格式错误", err)
		return
	}
	userID := req.Input.UserID
	if userID == "" {
		userID = req.SessionVariables[sessionUserIDKey]
	}
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResp{Message: "user_id is required"})
		return
	}
	cnt, err := h.badges.Count(ctx.Request.Context(), userID)
	if err != nil {
		h.fail(ctx, "查询角标失败", err)
		return
	}
	ctx.JSON(http.StatusOK, BadgeCountResp{Count: cnt})
}

func (h *Handler) fail(ctx *gin.Context, msg string, err error) {
	h.logger.Warn(msg, elog.String("path", ctx.FullPath()), elog.FieldErr(err))
	resp := ErrorResp{Message: msg}
	if err != nil {
		resp.Message = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

func message(res domain.DispatchResult) string {
	switch res.Status {
	case domain.DispatchStatusSuppressed:
		return "push notifications are disabled for this user"
	case domain.DispatchStatusSkipped:
		return "no push registration found"
	default:
		return "push notification sent"
	}
}
