package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/ride-notification/internal/event"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"
)

const defaultReadTimeout = time.Second

//go:generate mockgen -source=./consumer.go -destination=./mocks/consumer.mock.go -package=kafkamocks KafkaConsumer
type KafkaConsumer interface {
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error)
}

// Consumer 长期运行的 worker 从 Kafka 消费事件
// 每处理完一条消息提交一次，处理本身不会失败
type Consumer struct {
	consumer    KafkaConsumer
	handler     event.Handler
	readTimeout time.Duration
	logger      *elog.Component
}

func NewConsumer(consumer *kafka.Consumer, topics []string, handler event.Handler) (*Consumer, error) {
	if err := consumer.SubscribeTopics(topics, nil); err != nil {
		return nil, err
	}
	return newConsumer(consumer, handler), nil
}

func newConsumer(consumer KafkaConsumer, handler event.Handler) *Consumer {
	return &Consumer{
		consumer:    consumer,
		handler:     handler,
		readTimeout: defaultReadTimeout,
		logger:      elog.DefaultLogger,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费队列消息失败", elog.FieldErr(er))
			}
		}
	}()
}

// Consume 读取并处理一条消息，读取超时不算错误
func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.ReadMessage(c.readTimeout)
	if err != nil {
		var kErr kafka.Error
		if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
			return nil
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}

	c.handler.Handle(ctx, toRecord(msg))

	if _, err = c.consumer.CommitMessage(msg); err != nil {
		c.logger.Warn("提交消息失败",
			elog.FieldErr(err),
			elog.Any("partition", msg.TopicPartition.Partition),
			elog.Any("offset", msg.TopicPartition.Offset))
		return err
	}
	return nil
}

func toRecord(msg *kafka.Message) event.Record {
	var topic string
	if msg.TopicPartition.Topic != nil {
		topic = *msg.TopicPartition.Topic
	}
	return event.Record{
		ID:    fmt.Sprintf("%s-%d-%d", topic, msg.TopicPartition.Partition, msg.TopicPartition.Offset),
		Queue: topic,
		Body:  msg.Value,
	}
}
