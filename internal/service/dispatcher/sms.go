package dispatcher

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"gitee.com/flycash/ride-notification/internal/service/provider/sms/client"
	"github.com/gotomicro/ego/core/elog"
)

var _ SMSDispatcher = (*SMS)(nil)

type SMS struct {
	client client.Client
	gate   *preference.Gate
	logger *elog.Component
}

func NewSMS(c client.Client, gate *preference.Gate) *SMS {
	return &SMS{
		client: c,
		gate:   gate,
		logger: elog.DefaultLogger,
	}
}

func (d *SMS) Dispatch(ctx context.Context, msg domain.SMSMessage) domain.DispatchResult {
	res := domain.DispatchResult{Channel: domain.ChannelSMS, UserID: msg.UserID}
	if ves := msg.Validate(); len(ves) > 0 {
		d.logger.Warn("短信参数校验失败",
			elog.String("userID", msg.UserID),
			elog.Any("errors", ves))
		res.Status, res.Err = domain.DispatchStatusInvalid, ves
		return res
	}
	if !d.gate.Allow(ctx, msg.UserID, domain.ChannelSMS) {
		res.Status = domain.DispatchStatusSuppressed
		return res
	}
	resp, err := d.client.Send(ctx, client.SendReq{
		PhoneNumber: msg.PhoneNumber,
		SignName:    msg.Sender,
		Message:     msg.Message,
	})
	if err != nil {
		d.logger.Error("发送短信失败",
			elog.String("userID", msg.UserID),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	d.logger.Info("发送短信成功",
		elog.String("userID", msg.UserID),
		elog.String("messageID", resp.MessageID))
	res.Status, res.SuccessCount = domain.DispatchStatusSent, 1
	return res
}
