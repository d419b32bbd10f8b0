package fanout

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/event/queue"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"github.com/gotomicro/ego/core/elog"
)

// Submitter 把外部渠道的消息交给终端投递
// 可以经过队列交给独立部署的投递函数，也可以在进程内直接投递
type Submitter interface {
	SubmitMail(ctx context.Context, msg domain.MailMessage) domain.DispatchResult
	SubmitSMS(ctx context.Context, msg domain.SMSMessage) domain.DispatchResult
	SubmitPush(ctx context.Context, msg domain.PushMessage) domain.DispatchResult
}

// Queues 各渠道投递队列
type Queues struct {
	Mail string `yaml:"mail"`
	SMS  string `yaml:"sms"`
	Push string `yaml:"push"`
}

var _ Submitter = (*QueueSubmitter)(nil)

// QueueSubmitter 投递到队列即视为成功
type QueueSubmitter struct {
	producer queue.Producer
	queues   Queues
	logger   *elog.Component
}

func NewQueueSubmitter(producer queue.Producer, queues Queues) *QueueSubmitter {
	return &QueueSubmitter{
		producer: producer,
		queues:   queues,
		logger:   elog.DefaultLogger,
	}
}

func (s *QueueSubmitter) SubmitMail(ctx context.Context, msg domain.MailMessage) domain.DispatchResult {
	return s.submit(ctx, domain.ChannelEmail, msg.UserID, s.queues.Mail, msg)
}

func (s *QueueSubmitter) SubmitSMS(ctx context.Context, msg domain.SMSMessage) domain.DispatchResult {
	return s.submit(ctx, domain.ChannelSMS, msg.UserID, s.queues.SMS, msg)
}

func (s *QueueSubmitter) SubmitPush(ctx context.Context, msg domain.PushMessage) domain.DispatchResult {
	return s.submit(ctx, domain.ChannelPush, msg.UserID, s.queues.Push, msg)
}

func (s *QueueSubmitter) submit(ctx context.Context, ch domain.Channel, userID, q string, msg any) domain.DispatchResult {
	res := domain.DispatchResult{Channel: ch, UserID: userID}
	if err := queue.SendJSON(ctx, s.producer, q, msg); err != nil {
		s.logger.Error("投递队列失败",
			elog.String("channel", ch.String()),
			elog.String("userID", userID),
			elog.String("queue", q),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	res.Status, res.SuccessCount = domain.DispatchStatusSent, 1
	return res
}

var _ Submitter = (*DirectSubmitter)(nil)

// DirectSubmitter 进程内直接调用各渠道的 Dispatcher
type DirectSubmitter struct {
	mail dispatcher.MailDispatcher
	sms  dispatcher.SMSDispatcher
	push dispatcher.PushDispatcher
}

func NewDirectSubmitter(
	mail dispatcher.MailDispatcher,
	sms dispatcher.SMSDispatcher,
	push dispatcher.PushDispatcher,
) *DirectSubmitter {
	return &DirectSubmitter{mail: mail, sms: sms, push: push}
}

func (s *DirectSubmitter) SubmitMail(ctx context.Context, msg domain.MailMessage) domain.DispatchResult {
	return s.mail.Dispatch(ctx, msg)
}

func (s *DirectSubmitter) SubmitSMS(ctx context.Context, msg domain.SMSMessage) domain.DispatchResult {
	return s.sms.Dispatch(ctx, msg)
}

func (s *DirectSubmitter) SubmitPush(ctx context.Context, msg domain.PushMessage) domain.DispatchResult {
	return s.push.Dispatch(ctx, msg)
}
