package ioc

import (
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"github.com/gotomicro/ego/core/econf"
)

// InitPreferenceGate 查询偏好失败时的处理方式，默认照常投递
func InitPreferenceGate(resolver preference.Resolver) *preference.Gate {
	policy := preference.Policy(econf.GetString("preference.policy"))
	return preference.NewGate(resolver, policy)
}
