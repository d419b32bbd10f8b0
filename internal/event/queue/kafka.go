package queue

import (
	"context"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// KafkaAPI confluent 生产者中用到的方法
type KafkaAPI interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

var _ Producer = (*KafkaProducer)(nil)

// KafkaProducer 同步等待投递结果，Kafka 不支持延迟投递，DelaySeconds 被忽略
type KafkaProducer struct {
	producer KafkaAPI
}

func NewKafkaProducer(producer KafkaAPI) *KafkaProducer {
	return &KafkaProducer{producer: producer}
}

func (p *KafkaProducer) Send(ctx context.Context, msg Message) error {
	deliveryChan := make(chan kafka.Event, 1)
	err := p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &msg.Queue,
			Partition: kafka.PartitionAny,
		},
		Value: msg.Body,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("发送 Kafka 消息失败 topic=%s: %w", msg.Queue, err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("发送 Kafka 消息失败 topic=%s: 未知的投递结果 %v", msg.Queue, e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("发送 Kafka 消息失败 topic=%s: %w", msg.Queue, m.TopicPartition.Error)
		}
		return nil
	}
}
