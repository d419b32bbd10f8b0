package tracing

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	inner := dispatcher.Func[domain.MailMessage](func(_ context.Context, msg domain.MailMessage) domain.DispatchResult {
		return domain.DispatchResult{
			Channel: domain.ChannelEmail,
			UserID:  msg.UserID,
			Status:  domain.DispatchStatusFailed,
			Err:     errors.New("throttled"),
		}
	})
	d := NewDispatcher[domain.MailMessage](domain.ChannelEmail, inner)
	d.tracer = tp.Tracer("test")

	res := d.Dispatch(t.Context(), domain.MailMessage{UserID: "u1"})
	assert.Equal(t, domain.DispatchStatusFailed, res.Status)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Dispatcher.Dispatch", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
