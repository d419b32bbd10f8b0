package domain

// Channel 通知渠道
type Channel string

const (
	ChannelEmail Channel = "EMAIL"  // 邮件
	ChannelSMS   Channel = "SMS"    // 短信
	ChannelPush  Channel = "PUSH"   // 推送
	ChannelInApp Channel = "IN_APP" // 站内信
)

func (c Channel) String() string {
	return string(c)
}

// PreferenceKey 渠道在偏好参数中对应的键
func (c Channel) PreferenceKey() string {
	switch c {
	case ChannelEmail:
		return "email"
	case ChannelSMS:
		return "sms"
	case ChannelPush:
		return "push"
	default:
		return ""
	}
}

// IsExternal 是否为外部投递渠道，站内信不受偏好控制
func (c Channel) IsExternal() bool {
	return c == ChannelEmail || c == ChannelSMS || c == ChannelPush
}

// Platform 推送终端所属的应用
type Platform string

const (
	PlatformRider  Platform = "rider"  // 乘客端
	PlatformDriver Platform = "driver" // 司机端
)

func (p Platform) String() string {
	return string(p)
}
