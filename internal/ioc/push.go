package ioc

import (
	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/provider/push"
	"github.com/gotomicro/ego/core/econf"
)

// InitPushClientFactory push.apps 下按应用配置 firebase 项目，键为 rider、driver
func InitPushClientFactory() push.ClientFactory {
	var apps map[string]push.AppConfig
	err := econf.UnmarshalKey("push.apps", &apps)
	if err != nil {
		panic(err)
	}
	res := make(map[domain.Platform]push.AppConfig, len(apps))
	for platform, cfg := range apps {
		res[domain.Platform(platform)] = cfg
	}
	return push.NewFCMFactory(res)
}
