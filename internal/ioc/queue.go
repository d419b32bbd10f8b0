package ioc

import (
	"context"
	"fmt"
	"sync"

	"gitee.com/flycash/ride-notification/internal/event/queue"
	"gitee.com/flycash/ride-notification/internal/pkg/retry"
	"gitee.com/flycash/ride-notification/internal/service/fanout"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const (
	QueueTypeSQS    = "sqs"
	QueueTypeKafka  = "kafka"
	QueueTypeMemory = "memory"
)

// QueueNames 消费时按队列名路由，SQS 取 ARN 的最后一段
type QueueNames struct {
	Mail                 string `yaml:"mail"`
	SMS                  string `yaml:"sms"`
	Push                 string `yaml:"push"`
	RideRating           string `yaml:"rideRating"`
	BoardingPassExpiring string `yaml:"boardingPassExpiring"`
	BoardingPassIssued   string `yaml:"boardingPassIssued"`
}

func (n QueueNames) All() []string {
	return []string{n.Mail, n.SMS, n.Push, n.RideRating, n.BoardingPassExpiring, n.BoardingPassIssued}
}

type QueueConfig struct {
	Type  string     `yaml:"type"`
	Names QueueNames `yaml:"names"`
	// Targets 投递地址，只对 SQS 生效，填队列 URL，为空时使用队列名
	Targets fanout.Queues `yaml:"targets"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Retry   retry.Config  `yaml:"retry"`
}

type KafkaConfig struct {
	Addr    string `yaml:"addr"`
	GroupID string `yaml:"groupId"`
}

func InitQueueConfig() QueueConfig {
	var cfg QueueConfig
	err := econf.UnmarshalKey("queue", &cfg)
	if err != nil {
		panic(err)
	}
	return withQueueDefaults(cfg)
}

func withQueueDefaults(cfg QueueConfig) QueueConfig {
	if cfg.Type == "" {
		cfg.Type = QueueTypeSQS
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "ride-notification"
	}
	names := fanout.Queues{Mail: cfg.Names.Mail, SMS: cfg.Names.SMS, Push: cfg.Names.Push}
	if cfg.Type != QueueTypeSQS {
		// kafka 与 memory 的消费方按队列名订阅，只能投递到同名 topic
		if cfg.Targets != (fanout.Queues{}) && cfg.Targets != names {
			elog.DefaultLogger.Warn("非 SQS 队列忽略 queue.targets",
				elog.String("type", cfg.Type),
				elog.Any("targets", cfg.Targets))
		}
		cfg.Targets = names
		return cfg
	}
	if cfg.Targets.Mail == "" {
		cfg.Targets.Mail = names.Mail
	}
	if cfg.Targets.SMS == "" {
		cfg.Targets.SMS = names.SMS
	}
	if cfg.Targets.Push == "" {
		cfg.Targets.Push = names.Push
	}
	return cfg
}

func InitQueueNames(cfg QueueConfig) QueueNames {
	return cfg.Names
}

func InitQueueTargets(cfg QueueConfig) fanout.Queues {
	return cfg.Targets
}

func InitProducer(cfg QueueConfig, awsCfg aws.Config) queue.Producer {
	switch cfg.Type {
	case QueueTypeSQS:
		return queue.NewSQSProducer(sqs.NewFromConfig(awsCfg))
	case QueueTypeKafka:
		var producer *kafka.Producer
		connect(cfg.Retry, func() error {
			var err error
			producer, err = kafka.NewProducer(&kafka.ConfigMap{
				"bootstrap.servers": cfg.Kafka.Addr,
			})
			return err
		})
		return queue.NewKafkaProducer(producer)
	case QueueTypeMemory:
		return queue.NewMQProducer(InitMQ(cfg))
	default:
		panic(fmt.Sprintf("未知的队列类型 %s", cfg.Type))
	}
}

var (
	mqInitOnce sync.Once
	q          mq.MQ
)

// InitMQ 进程内队列，生产和消费必须是同一个实例
func InitMQ(cfg QueueConfig) mq.MQ {
	mqInitOnce.Do(func() {
		qq := memory.NewMQ()
		for _, name := range cfg.Names.All() {
			if name == "" {
				continue
			}
			if err := qq.CreateTopic(context.Background(), name, 1); err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}

// connect 启动时连接基础设施，没有配置重试时只尝试一次
func connect(cfg retry.Config, fn func() error) {
	if cfg.Type == "" {
		if err := fn(); err != nil {
			panic(err)
		}
		return
	}
	strategy, err := retry.NewRetry(cfg)
	if err != nil {
		panic(err)
	}
	if err = retry.Do(strategy, fn); err != nil {
		panic(err)
	}
}
