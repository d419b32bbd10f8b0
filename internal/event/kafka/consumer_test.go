package kafka

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/ride-notification/internal/event"
	kafkamocks "gitee.com/flycash/ride-notification/internal/event/kafka/mocks"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConsumer_Consume(t *testing.T) {
	t.Parallel()

	topic := "push"
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: 1, Offset: 42},
		Value:          []byte(`{"userId":"u1"}`),
	}

	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) KafkaConsumer
		wantRecords []event.Record
		wantErr     bool
	}{
		{
			name: "处理并提交",
			mock: func(ctrl *gomock.Controller) KafkaConsumer {
				c := kafkamocks.NewMockKafkaConsumer(ctrl)
				c.EXPECT().ReadMessage(defaultReadTimeout).Return(msg, nil)
				c.EXPECT().CommitMessage(msg).Return(nil, nil)
				return c
			},
			wantRecords: []event.Record{{ID: "push-1-42", Queue: "push", Body: []byte(`{"userId":"u1"}`)}},
		},
		{
			name: "读取超时",
			mock: func(ctrl *gomock.Controller) KafkaConsumer {
				c := kafkamocks.NewMockKafkaConsumer(ctrl)
				c.EXPECT().ReadMessage(defaultReadTimeout).Return(nil, kafka.NewError(kafka.ErrTimedOut, "timeout", false))
				return c
			},
		},
		{
			name: "读取失败",
			mock: func(ctrl *gomock.Controller) KafkaConsumer {
				c := kafkamocks.NewMockKafkaConsumer(ctrl)
				c.EXPECT().ReadMessage(defaultReadTimeout).Return(nil, errors.New("broker down"))
				return c
			},
			wantErr: true,
		},
		{
			name: "提交失败",
			mock: func(ctrl *gomock.Controller) KafkaConsumer {
				c := kafkamocks.NewMockKafkaConsumer(ctrl)
				c.EXPECT().ReadMessage(defaultReadTimeout).Return(msg, nil)
				c.EXPECT().CommitMessage(msg).Return(nil, errors.New("rebalance"))
				return c
			},
			wantRecords: []event.Record{{ID: "push-1-42", Queue: "push", Body: []byte(`{"userId":"u1"}`)}},
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			var got []event.Record
			c := newConsumer(tc.mock(ctrl), event.HandlerFunc(func(_ context.Context, record event.Record) {
				got = append(got, record)
			}))

			err := c.Consume(t.Context())
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantRecords, got)
		})
	}
}
