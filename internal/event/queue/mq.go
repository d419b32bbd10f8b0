package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecodeclub/mq-api"
)

var _ Producer = (*MQProducer)(nil)

// MQProducer 基于 mq-api 的实现，本地运行和测试时使用内存队列
type MQProducer struct {
	q         mq.MQ
	mu        sync.Mutex
	producers map[string]mq.Producer
}

func NewMQProducer(q mq.MQ) *MQProducer {
	return &MQProducer{
		q:         q,
		producers: make(map[string]mq.Producer),
	}
}

func (p *MQProducer) producer(topic string) (mq.Producer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pr, ok := p.producers[topic]; ok {
		return pr, nil
	}
	pr, err := p.q.Producer(topic)
	if err != nil {
		return nil, err
	}
	p.producers[topic] = pr
	return pr, nil
}

func (p *MQProducer) Send(ctx context.Context, msg Message) error {
	pr, err := p.producer(msg.Queue)
	if err != nil {
		return fmt.Errorf("创建生产者失败 topic=%s: %w", msg.Queue, err)
	}
	_, err = pr.Produce(ctx, &mq.Message{
		Topic: msg.Queue,
		Value: msg.Body,
	})
	if err != nil {
		return fmt.Errorf("发送消息失败 topic=%s: %w", msg.Queue, err)
	}
	return nil
}
