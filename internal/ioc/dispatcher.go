package ioc

import (
	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository"
	"gitee.com/flycash/ride-notification/internal/service/badge"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher/metrics"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher/tracing"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"gitee.com/flycash/ride-notification/internal/service/provider/mail"
	"gitee.com/flycash/ride-notification/internal/service/provider/push"
	"gitee.com/flycash/ride-notification/internal/service/provider/sms/client"
)

// 终端投递外面依次包上指标和链路追踪

func InitMailDispatcher(c mail.Client, gate *preference.Gate) dispatcher.MailDispatcher {
	return observe(domain.ChannelEmail, dispatcher.Dispatcher[domain.MailMessage](dispatcher.NewMail(c, gate)))
}

func InitSMSDispatcher(c client.Client, gate *preference.Gate) dispatcher.SMSDispatcher {
	return observe(domain.ChannelSMS, dispatcher.Dispatcher[domain.SMSMessage](dispatcher.NewSMS(c, gate)))
}

func InitPushDispatcher(
	factory push.ClientFactory,
	registrations repository.PushRegistrationRepository,
	badges badge.Service,
	gate *preference.Gate,
) dispatcher.PushDispatcher {
	d := dispatcher.NewPush(factory, registrations, badges, gate)
	return observe(domain.ChannelPush, dispatcher.Dispatcher[domain.PushMessage](d))
}

func observe[M any](ch domain.Channel, d dispatcher.Dispatcher[M]) dispatcher.Dispatcher[M] {
	return metrics.NewDispatcher[M](ch, tracing.NewDispatcher[M](ch, d))
}
