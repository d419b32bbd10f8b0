package dispatcher

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"gitee.com/flycash/ride-notification/internal/service/provider/mail"
	"github.com/gotomicro/ego/core/elog"
)

var _ MailDispatcher = (*Mail)(nil)

type Mail struct {
	client mail.Client
	gate   *preference.Gate
	logger *elog.Component
}

func NewMail(client mail.Client, gate *preference.Gate) *Mail {
	return &Mail{
		client: client,
		gate:   gate,
		logger: elog.DefaultLogger,
	}
}

func (d *Mail) Dispatch(ctx context.Context, msg domain.MailMessage) domain.DispatchResult {
	res := domain.DispatchResult{Channel: domain.ChannelEmail, UserID: msg.UserID}
	if ves := msg.Validate(); len(ves) > 0 {
		d.logger.Warn("邮件参数校验失败",
			elog.String("userID", msg.UserID),
			elog.Any("errors", ves))
		res.Status, res.Err = domain.DispatchStatusInvalid, ves
		return res
	}
	if !d.gate.Allow(ctx, msg.UserID, domain.ChannelEmail) {
		res.Status = domain.DispatchStatusSuppressed
		return res
	}
	id, err := d.client.SendTemplated(ctx, msg)
	if err != nil {
		d.logger.Error("发送邮件失败",
			elog.String("userID", msg.UserID),
			elog.String("template", msg.Template),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	d.logger.Info("发送邮件成功",
		elog.String("userID", msg.UserID),
		elog.String("template", msg.Template),
		elog.String("messageID", id))
	res.Status, res.SuccessCount = domain.DispatchStatusSent, 1
	return res
}
