package ioc

import (
	"fmt"

	"gitee.com/flycash/ride-notification/internal/event/queue"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"gitee.com/flycash/ride-notification/internal/service/fanout"
	"github.com/gotomicro/ego/core/econf"
)

// InitPassConfig 乘车卡邮件和短信的发送方
func InitPassConfig() fanout.PassConfig {
	var cfg fanout.PassConfig
	err := econf.UnmarshalKey("pass", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitQueueSubmitter 事件函数把渠道消息投递到队列，由渠道函数完成投递
func InitQueueSubmitter(producer queue.Producer, targets fanout.Queues) fanout.Submitter {
	return fanout.NewQueueSubmitter(producer, targets)
}

// InitSubmitter worker 可以按 fanout.mode 选择进程内直接投递
func InitSubmitter(
	producer queue.Producer,
	targets fanout.Queues,
	mail dispatcher.MailDispatcher,
	sms dispatcher.SMSDispatcher,
	push dispatcher.PushDispatcher,
) fanout.Submitter {
	mode := econf.GetString("fanout.mode")
	switch mode {
	case "", "queue":
		return fanout.NewQueueSubmitter(producer, targets)
	case "direct":
		return fanout.NewDirectSubmitter(mail, sms, push)
	default:
		panic(fmt.Sprintf("未知的扇出方式 %s", mode))
	}
}
