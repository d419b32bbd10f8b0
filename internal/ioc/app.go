package ioc

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/event"
	eventkafka "gitee.com/flycash/ride-notification/internal/event/kafka"
	"gitee.com/flycash/ride-notification/internal/event/memory"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/server/egin"
)

// Consumer 长期运行的队列消费者
type Consumer interface {
	Start(ctx context.Context)
}

// App 长期运行的进程
type App struct {
	Web       *egin.Component
	Consumers []Consumer
}

func (a *App) StartConsumers(ctx context.Context) {
	for _, c := range a.Consumers {
		c.Start(ctx)
	}
}

// InitConsumers 只有 kafka 和内存队列需要自己消费，SQS 由函数触发
func InitConsumers(cfg QueueConfig, router *event.Router) []Consumer {
	switch cfg.Type {
	case QueueTypeKafka:
		var consumer *kafka.Consumer
		connect(cfg.Retry, func() error {
			var err error
			consumer, err = kafka.NewConsumer(&kafka.ConfigMap{
				"bootstrap.servers":  cfg.Kafka.Addr,
				"group.id":           cfg.Kafka.GroupID,
				"auto.offset.reset":  "earliest",
				"enable.auto.commit": "false",
			})
			return err
		})
		c, err := eventkafka.NewConsumer(consumer, router.Queues(), router)
		if err != nil {
			panic(err)
		}
		return []Consumer{c}
	case QueueTypeMemory:
		queues := router.Queues()
		consumers := make([]Consumer, 0, len(queues))
		for _, topic := range queues {
			c, err := memory.NewConsumer(InitMQ(cfg), topic, cfg.Kafka.GroupID, router)
			if err != nil {
				panic(err)
			}
			consumers = append(consumers, c)
		}
		return consumers
	default:
		return nil
	}
}
