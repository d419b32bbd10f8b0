package metrics

import (
	"context"
	"testing"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	inner := dispatcher.Func[domain.SMSMessage](func(_ context.Context, msg domain.SMSMessage) domain.DispatchResult {
		return domain.DispatchResult{Channel: domain.ChannelSMS, UserID: msg.UserID, Status: domain.DispatchStatusSuppressed}
	})
	d := NewDispatcher[domain.SMSMessage](domain.ChannelSMS, inner)
	// 重复创建不会重复注册
	_ = NewDispatcher[domain.SMSMessage](domain.ChannelSMS, inner)

	before := testutil.ToFloat64(dispatchStatusCounter.WithLabelValues("SMS", "SUPPRESSED"))
	res := d.Dispatch(t.Context(), domain.SMSMessage{UserID: "u1"})
	assert.Equal(t, domain.DispatchStatusSuppressed, res.Status)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, before+1, testutil.ToFloat64(dispatchStatusCounter.WithLabelValues("SMS", "SUPPRESSED")))
}
