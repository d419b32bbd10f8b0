package ioc

import (
	"testing"

	"gitee.com/flycash/ride-notification/internal/service/fanout"
	"github.com/stretchr/testify/assert"
)

func TestWithQueueDefaults(t *testing.T) {
	t.Parallel()

	names := QueueNames{Mail: "mail-notification", SMS: "sms-notification", Push: "push-notification"}
	urls := fanout.Queues{
		Mail: "http://localhost:4566/000000000000/mail-notification",
		SMS:  "http://localhost:4566/000000000000/sms-notification",
		Push: "http://localhost:4566/000000000000/push-notification",
	}
	byName := fanout.Queues{Mail: "mail-notification", SMS: "sms-notification", Push: "push-notification"}

	testCases := []struct {
		name      string
		queue     QueueConfig
		wantType  string
		wantQueue fanout.Queues
	}{
		{
			name:      "memory忽略SQS地址",
			queue:     QueueConfig{Type: QueueTypeMemory, Names: names, Targets: urls},
			wantType:  QueueTypeMemory,
			wantQueue: byName,
		},
		{
			name:      "kafka忽略SQS地址",
			queue:     QueueConfig{Type: QueueTypeKafka, Names: names, Targets: urls},
			wantType:  QueueTypeKafka,
			wantQueue: byName,
		},
		{
			name:      "sqs使用队列地址",
			queue:     QueueConfig{Type: QueueTypeSQS, Names: names, Targets: urls},
			wantType:  QueueTypeSQS,
			wantQueue: urls,
		},
		{
			name:      "默认sqs且没有地址时使用队列名",
			queue:     QueueConfig{Names: names},
			wantType:  QueueTypeSQS,
			wantQueue: byName,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := withQueueDefaults(tc.queue)
			assert.Equal(t, tc.wantType, cfg.Type)
			assert.Equal(t, tc.wantQueue, cfg.Targets)
			assert.Equal(t, "ride-notification", cfg.Kafka.GroupID)
		})
	}
}
