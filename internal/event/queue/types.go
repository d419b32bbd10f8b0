package queue

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message 投递到队列的消息
type Message struct {
	// Queue SQS 为队列 URL，Kafka 和内存队列为 topic
	Queue        string
	Body         []byte
	DelaySeconds int32
}

//go:generate mockgen -source=./types.go -destination=./mocks/producer.mock.go -package=queuemocks Producer
type Producer interface {
	Send(ctx context.Context, msg Message) error
}

// SendJSON 序列化后投递
func SendJSON(ctx context.Context, p Producer, queue string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("序列化队列消息失败 %w", err)
	}
	return p.Send(ctx, Message{Queue: queue, Body: body})
}
