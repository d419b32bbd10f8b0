package lambda

import (
	"context"
	"strings"

	"gitee.com/flycash/ride-notification/internal/event"
	"github.com/aws/aws-lambda-go/events"
	"github.com/gotomicro/ego/core/elog"
)

// SQSHandler SQS 触发的函数入口，按队列名把消息交给 Router
type SQSHandler struct {
	handler event.Handler
	logger  *elog.Component
}

func NewSQSHandler(handler event.Handler) *SQSHandler {
	return &SQSHandler{
		handler: handler,
		logger:  elog.DefaultLogger,
	}
}

// Handle 永远返回 nil，失败的消息只记录日志
func (h *SQSHandler) Handle(ctx context.Context, evt events.SQSEvent) error {
	h.logger.Info("收到队列消息", elog.Int("records", len(evt.Records)))
	for _, msg := range evt.Records {
		h.handler.Handle(ctx, event.Record{
			ID:    msg.MessageId,
			Queue: QueueName(msg.EventSourceARN),
			Body:  []byte(msg.Body),
		})
	}
	return nil
}

// QueueName arn:aws:sqs:region:account:name 中的 name
func QueueName(arn string) string {
	if idx := strings.LastIndexByte(arn, ':'); idx >= 0 {
		return arn[idx+1:]
	}
	return arn
}
