package domain

// MailMessage 模板邮件，字段名沿用队列消息体中的写法
type MailMessage struct {
	Sender               string         `json:"Sender" validate:"required"`
	Source               string         `json:"Source" validate:"required"`
	Template             string         `json:"Template" validate:"required"`
	ConfigurationSetName string         `json:"ConfigurationSetName,omitempty"`
	ToAddresses          []string       `json:"ToAddresses" validate:"required,min=1,dive,email"`
	CcAddresses          []string       `json:"CcAddresses,omitempty" validate:"omitempty,dive,email"`
	BccAddresses         []string       `json:"BccAddresses,omitempty" validate:"omitempty,dive,email"`
	TemplateData         map[string]any `json:"TemplateData" validate:"required"`
	UserID               string         `json:"UserId,omitempty"`
}

func (m MailMessage) Validate() ValidationErrors {
	return validateStruct(m)
}

// SMSMessage 短信
type SMSMessage struct {
	Sender      string `json:"Sender" validate:"required"`
	Message     string `json:"Message" validate:"required"`
	PhoneNumber string `json:"PhoneNumber" validate:"required"`
	UserID      string `json:"UserId,omitempty"`
}

func (m SMSMessage) Validate() ValidationErrors {
	return validateStruct(m)
}

// FilterAll 表示不按人群过滤
const FilterAll = "all"

// PushNotification 推送标题与正文
type PushNotification struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// AndroidConfig Android 端覆盖配置
type AndroidConfig struct {
	Priority     string               `json:"priority,omitempty"`
	CollapseKey  string               `json:"collapseKey,omitempty"`
	TTLSeconds   int64                `json:"ttl,omitempty"`
	Notification *AndroidNotification `json:"notification,omitempty"`
}

type AndroidNotification struct {
	ChannelID   string `json:"channelId,omitempty"`
	Sound       string `json:"sound,omitempty"`
	ClickAction string `json:"clickAction,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// WebpushConfig Web 推送覆盖配置
type WebpushConfig struct {
	Headers map[string]string `json:"headers,omitempty"`
	Link    string            `json:"link,omitempty"`
	Icon    string            `json:"icon,omitempty"`
}

// PushMessage 推送
type PushMessage struct {
	UserID       string           `json:"userId" validate:"required"`
	Platform     Platform         `json:"platform" validate:"required"`
	Notification PushNotification `json:"notification"`
	Data         map[string]any   `json:"data" validate:"required"`
	Android      *AndroidConfig   `json:"android,omitempty"`
	Webpush      *WebpushConfig   `json:"webpush,omitempty"`
	// Filter 不为空且不是 all 时按人群广播，不再查找用户的设备
	Filter string `json:"filter,omitempty"`
}

func (m PushMessage) Validate() ValidationErrors {
	return validateStruct(m)
}

// IsBroadcast 是否走人群广播
func (m PushMessage) IsBroadcast() bool {
	return m.Filter != "" && m.Filter != FilterAll
}
