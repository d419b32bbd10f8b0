package event

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// Record 一条队列消息，不区分底层是 SQS 还是 Kafka
type Record struct {
	// ID 消息 ID，作为事件 ID 参与去重
	ID string
	// Queue 队列名或 topic
	Queue string
	Body  []byte
}

// Handler 处理一条队列消息
// 队列消费者从不向平台返回错误，处理失败只记录日志，重投交给队列自身
type Handler interface {
	Handle(ctx context.Context, record Record)
}

type HandlerFunc func(ctx context.Context, record Record)

func (f HandlerFunc) Handle(ctx context.Context, record Record) {
	f(ctx, record)
}

// Router 按队列名把消息分给不同的 Handler
type Router struct {
	handlers map[string]Handler
	logger   *elog.Component
}

func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]Handler),
		logger:   elog.DefaultLogger,
	}
}

// Register 队列名重复时后注册的覆盖先注册的
func (r *Router) Register(queue string, h Handler) *Router {
	r.handlers[queue] = h
	return r
}

// Queues 已注册的队列
func (r *Router) Queues() []string {
	queues := make([]string, 0, len(r.handlers))
	for q := range r.handlers {
		queues = append(queues, q)
	}
	return queues
}

func (r *Router) Handle(ctx context.Context, record Record) {
	h, ok := r.handlers[record.Queue]
	if !ok {
		r.logger.Warn("未知的队列，丢弃消息",
			elog.String("queue", record.Queue),
			elog.String("id", record.ID))
		return
	}
	h.Handle(ctx, record)
}
