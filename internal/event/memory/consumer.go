package memory

import (
	"context"
	"fmt"
	"strconv"

	"gitee.com/flycash/ride-notification/internal/event"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Consumer 本地运行时从进程内队列消费事件
type Consumer struct {
	topic    string
	consumer mq.Consumer
	handler  event.Handler
	logger   *elog.Component
}

func NewConsumer(q mq.MQ, topic, groupID string, handler event.Handler) (*Consumer, error) {
	consumer, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		topic:    topic,
		consumer: consumer,
		handler:  handler,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		er := c.Consume(ctx)
		if er != nil {
			c.logger.Error("消费队列消息失败", elog.String("topic", c.topic), elog.FieldErr(er))
		}
	}()
}

// Consume 一直消费到 ctx 取消或者队列关闭
func (c *Consumer) Consume(ctx context.Context) error {
	msgCh, err := c.consumer.ConsumeChan(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	for {
		select {
		case msg, ok := <-msgCh:
			if !ok {
				return nil
			}
			c.handler.Handle(ctx, event.Record{
				ID:    c.topic + "-" + strconv.FormatInt(msg.Offset, 10),
				Queue: c.topic,
				Body:  msg.Value,
			})
		case <-ctx.Done():
			return nil
		}
	}
}
