package ioc

import (
	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/event"
	"gitee.com/flycash/ride-notification/internal/event/handler"
	"gitee.com/flycash/ride-notification/internal/event/lambda"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"gitee.com/flycash/ride-notification/internal/service/fanout"
)

// 每个函数只注册自己消费的队列

func InitMailFunction(names QueueNames, d dispatcher.MailDispatcher) *lambda.SQSHandler {
	return lambda.NewSQSHandler(event.NewRouter().
		Register(names.Mail, handler.NewDispatch[domain.MailMessage]("mail", d)))
}

func InitSMSFunction(names QueueNames, d dispatcher.SMSDispatcher) *lambda.SQSHandler {
	return lambda.NewSQSHandler(event.NewRouter().
		Register(names.SMS, handler.NewDispatch[domain.SMSMessage]("sms", d)))
}

func InitPushFunction(names QueueNames, d dispatcher.PushDispatcher) *lambda.SQSHandler {
	return lambda.NewSQSHandler(event.NewRouter().
		Register(names.Push, handler.NewDispatch[domain.PushMessage]("push", d)))
}

func InitRatingFunction(names QueueNames, svc *fanout.RatingService) *lambda.SQSHandler {
	return lambda.NewSQSHandler(event.NewRouter().
		Register(names.RideRating, handler.NewRideRating(svc)))
}

func InitPassFunction(names QueueNames, svc *fanout.PassService) *lambda.SQSHandler {
	return lambda.NewSQSHandler(event.NewRouter().
		Register(names.BoardingPassExpiring, handler.NewPassExpiring(svc)).
		Register(names.BoardingPassIssued, handler.NewPassIssued(svc)))
}

// InitWorkerRouter worker 消费全部队列
func InitWorkerRouter(
	names QueueNames,
	mail dispatcher.MailDispatcher,
	sms dispatcher.SMSDispatcher,
	push dispatcher.PushDispatcher,
	rating *fanout.RatingService,
	pass *fanout.PassService,
) *event.Router {
	return event.NewRouter().
		Register(names.Mail, handler.NewDispatch[domain.MailMessage]("mail", mail)).
		Register(names.SMS, handler.NewDispatch[domain.SMSMessage]("sms", sms)).
		Register(names.Push, handler.NewDispatch[domain.PushMessage]("push", push)).
		Register(names.RideRating, handler.NewRideRating(rating)).
		Register(names.BoardingPassExpiring, handler.NewPassExpiring(pass)).
		Register(names.BoardingPassIssued, handler.NewPassIssued(pass))
}
