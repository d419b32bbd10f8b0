//go:build wireinject

package ioc

import (
	"gitee.com/flycash/ride-notification/internal/event/lambda"
	"gitee.com/flycash/ride-notification/internal/ioc"
	"gitee.com/flycash/ride-notification/internal/repository"
	"gitee.com/flycash/ride-notification/internal/repository/dao"
	"gitee.com/flycash/ride-notification/internal/service/badge"
	"gitee.com/flycash/ride-notification/internal/service/fanout"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"gitee.com/flycash/ride-notification/internal/web/action"
	"github.com/google/wire"
	"github.com/gotomicro/ego/server/egin"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitGraphQLClient,
		ioc.InitAWSConfig,
		ioc.InitQueueConfig,
		ioc.InitQueueNames,
		ioc.InitQueueTargets,
	)
	preferenceSet = wire.NewSet(
		dao.NewPreferenceDAO,
		repository.NewPreferenceRepository,
		preference.NewResolver,
		ioc.InitPreferenceGate,
	)
	notificationSet = wire.NewSet(
		dao.NewNotificationDAO,
		repository.NewNotificationRepository,
	)
	mailSet = wire.NewSet(
		ioc.InitMailClient,
		ioc.InitMailDispatcher,
	)
	smsSet = wire.NewSet(
		ioc.InitSMSClient,
		ioc.InitSMSDispatcher,
	)
	pushSet = wire.NewSet(
		ioc.InitPushClientFactory,
		dao.NewPushRegistrationDAO,
		repository.NewPushRegistrationRepository,
		badge.NewService,
		ioc.InitPushDispatcher,
	)
	orchestratorSet = wire.NewSet(
		ioc.InitProducer,
		ioc.InitIdempotencyService,
		fanout.NewOrchestrator,
	)
	eventSvcSet = wire.NewSet(
		dao.NewRideDAO,
		repository.NewRideRepository,
		fanout.NewRatingService,
		dao.NewUserDAO,
		repository.NewUserRepository,
		ioc.InitPassConfig,
		fanout.NewPassService,
	)
)

func InitMailFunction() *lambda.SQSHandler {
	wire.Build(BaseSet, preferenceSet, mailSet, ioc.InitMailFunction)
	return new(lambda.SQSHandler)
}

func InitSMSFunction() *lambda.SQSHandler {
	wire.Build(BaseSet, preferenceSet, smsSet, ioc.InitSMSFunction)
	return new(lambda.SQSHandler)
}

func InitPushFunction() *lambda.SQSHandler {
	wire.Build(BaseSet, preferenceSet, notificationSet, pushSet, ioc.InitPushFunction)
	return new(lambda.SQSHandler)
}

func InitRatingFunction() *lambda.SQSHandler {
	wire.Build(
		BaseSet,
		preferenceSet,
		notificationSet,
		orchestratorSet,
		ioc.InitQueueSubmitter,
		dao.NewRideDAO,
		repository.NewRideRepository,
		fanout.NewRatingService,
		ioc.InitRatingFunction,
	)
	return new(lambda.SQSHandler)
}

func InitPassFunction() *lambda.SQSHandler {
	wire.Build(
		BaseSet,
		preferenceSet,
		notificationSet,
		orchestratorSet,
		ioc.InitQueueSubmitter,
		dao.NewUserDAO,
		repository.NewUserRepository,
		ioc.InitPassConfig,
		fanout.NewPassService,
		ioc.InitPassFunction,
	)
	return new(lambda.SQSHandler)
}

func InitWebServer() *egin.Component {
	wire.Build(
		BaseSet,
		preferenceSet,
		notificationSet,
		pushSet,
		action.NewHandler,
		ioc.InitWebServer,
	)
	return new(egin.Component)
}

// InitApp worker 同时提供动作回调并消费全部队列
func InitApp() *ioc.App {
	wire.Build(
		BaseSet,
		preferenceSet,
		notificationSet,
		mailSet,
		smsSet,
		pushSet,
		orchestratorSet,
		ioc.InitSubmitter,
		eventSvcSet,
		ioc.InitWorkerRouter,
		ioc.InitConsumers,
		action.NewHandler,
		ioc.InitWebServer,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
