package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/ride-notification/internal/event"
	"gitee.com/flycash/ride-notification/internal/event/queue"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_Consume(t *testing.T) {
	t.Parallel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(t.Context(), "mail", 1))

	var (
		mu  sync.Mutex
		got []event.Record
	)
	received := make(chan struct{}, 2)
	c, err := NewConsumer(q, "mail", "test", event.HandlerFunc(func(_ context.Context, record event.Record) {
		mu.Lock()
		got = append(got, record)
		mu.Unlock()
		received <- struct{}{}
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- c.Consume(ctx)
	}()

	producer := queue.NewMQProducer(q)
	require.NoError(t, producer.Send(t.Context(), queue.Message{Queue: "mail", Body: []byte(`{"n":1}`)}))
	require.NoError(t, producer.Send(t.Context(), queue.Message{Queue: "mail", Body: []byte(`{"n":2}`)}))

	for range 2 {
		select {
		case <-received:
		case <-time.After(3 * time.Second):
			t.Fatal("等待消息超时")
		}
	}
	cancel()
	assert.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, "mail", got[0].Queue)
	assert.Equal(t, []byte(`{"n":1}`), got[0].Body)
	assert.Equal(t, []byte(`{"n":2}`), got[1].Body)
}
