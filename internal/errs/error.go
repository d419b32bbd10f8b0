package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter         = errors.New("参数错误")
	ErrDataAPI                  = errors.New("数据接口调用失败")
	ErrUserNotFound             = errors.New("用户不存在")
	ErrRideNotFound             = errors.New("行程不存在")
	ErrPreferenceLookup         = errors.New("查询通知偏好失败")
	ErrSendNotificationFailed   = errors.New("发送通知失败")
	ErrCreateNotificationFailed = errors.New("创建站内信失败")
	ErrDuplicateEvent           = errors.New("重复的事件")
	ErrUnknownProvider          = errors.New("未知的供应商")
)
