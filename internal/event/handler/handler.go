package handler

import (
	"context"
	"encoding/json"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/event"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"github.com/gotomicro/ego/core/elog"
)

// RatingReminder 行程评价提醒
type RatingReminder interface {
	Remind(ctx context.Context, evt domain.RideRatingEvent) []domain.DispatchResult
}

// PassNotifier 乘车卡通知
type PassNotifier interface {
	Expiring(ctx context.Context, evt domain.BoardingPassEvent) []domain.DispatchResult
	Issued(ctx context.Context, evt domain.BoardingPassEvent) []domain.DispatchResult
}

// NewDispatch 消费渠道投递队列，一条消息就是一条待投递的渠道消息
func NewDispatch[M any](name string, d dispatcher.Dispatcher[M]) event.Handler {
	logger := elog.DefaultLogger
	return event.HandlerFunc(func(ctx context.Context, record event.Record) {
		var msg M
		if !decode(logger, name, record, &msg) {
			return
		}
		logResults(logger, name, record, d.Dispatch(ctx, msg))
	})
}

// NewRideRating 行程评价事件
func NewRideRating(svc RatingReminder) event.Handler {
	const name = "ride_rating"
	logger := elog.DefaultLogger
	return event.HandlerFunc(func(ctx context.Context, record event.Record) {
		var evt domain.RideRatingEvent
		if !decode(logger, name, record, &evt) {
			return
		}
		evt.EventID = record.ID
		logResults(logger, name, record, svc.Remind(ctx, evt)...)
	})
}

// NewPassExpiring 乘车卡即将到期事件
func NewPassExpiring(svc PassNotifier) event.Handler {
	return newPassHandler("boarding_pass_expiring", svc.Expiring)
}

// NewPassIssued 新乘车卡发放事件
func NewPassIssued(svc PassNotifier) event.Handler {
	return newPassHandler("boarding_pass_issued", svc.Issued)
}

func newPassHandler(name string,
	fn func(ctx context.Context, evt domain.BoardingPassEvent) []domain.DispatchResult,
) event.Handler {
	logger := elog.DefaultLogger
	return event.HandlerFunc(func(ctx context.Context, record event.Record) {
		var evt domain.BoardingPassEvent
		if !decode(logger, name, record, &evt) {
			return
		}
		evt.EventID = record.ID
		logResults(logger, name, record, fn(ctx, evt)...)
	})
}

// decode 解析失败直接丢弃，这条消息重投也不会成功
func decode(logger *elog.Component, name string, record event.Record, v any) bool {
	if err := json.Unmarshal(record.Body, v); err != nil {
		logger.Warn("解析消息失败",
			elog.String("handler", name),
			elog.String("id", record.ID),
			elog.String("queue", record.Queue),
			elog.FieldErr(err))
		return false
	}
	return true
}

func logResults(logger *elog.Component, name string, record event.Record, results ...domain.DispatchResult) {
	for _, res := range results {
		fields := []elog.Field{
			elog.String("handler", name),
			elog.String("id", record.ID),
			elog.String("channel", res.Channel.String()),
			elog.String("userID", res.UserID),
			elog.String("status", string(res.Status)),
		}
		if res.Err != nil {
			fields = append(fields, elog.FieldErr(res.Err))
		}
		if res.Failed() {
			logger.Warn("消息处理完成", fields...)
			continue
		}
		logger.Info("消息处理完成", fields...)
	}
}
